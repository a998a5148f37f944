package ai

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
)

type Level int

const (
	LevelEasy Level = iota
	LevelMedium
	LevelHard
)

func (that Level) String() string {
	switch that {
	case LevelEasy:
		return "easy"
	case LevelMedium:
		return "medium"
	case LevelHard:
		return "hard"
	default:
		return fmt.Sprintf("level(%d)", int(that))
	}
}

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return LevelEasy, nil
	case "medium":
		return LevelMedium, nil
	case "hard":
		return LevelHard, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownLevel, s)
	}
}

func (that Level) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*that = level

	return nil
}

// Profile is the search setup of one level.
type Profile struct {
	Depth     int
	Heuristic Heuristic
}

// DefaultProfiles maps each level to its search depth and heuristic.
func DefaultProfiles() map[Level]Profile {
	return map[Level]Profile{
		LevelEasy:   {Depth: 5, Heuristic: CornerHeuristic},
		LevelMedium: {Depth: 6, Heuristic: CenterHeuristic},
		LevelHard:   {Depth: 6, Heuristic: EverywhereHeuristic},
	}
}
