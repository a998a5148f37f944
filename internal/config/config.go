package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeServe = "serve"
	ModeArena = "arena"
)

type Config struct {
	Mode     string `yaml:"mode" env:"MODE" env-default:"serve"`
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
	Engine   Engine `yaml:"engine"`
	Arena    Arena  `yaml:"arena"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Engine struct {
	// 0 seeds the move noise from the OS
	NoiseSeed uint64 `yaml:"noise-seed" env:"ENGINE_NOISE_SEED" env-default:"0"`
}

type Arena struct {
	XLevel   string `yaml:"x-level" env:"ARENA_X_LEVEL" env-default:"hard"`
	OLevel   string `yaml:"o-level" env:"ARENA_O_LEVEL" env-default:"medium"`
	Games    int    `yaml:"games" env:"ARENA_GAMES" env-default:"10"`
	Parallel int    `yaml:"parallel" env:"ARENA_PARALLEL" env-default:"4"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
