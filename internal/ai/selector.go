package ai

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

const (
	scoreScale = 11
	noiseRange = 2
)

// Selector picks machine moves.
type Selector struct {
	logger   *slog.Logger
	profiles map[Level]Profile
	noise    Noise
}

func NewSelector(logger *slog.Logger, profiles map[Level]Profile, noise Noise) *Selector {
	if noise == nil {
		noise = ZeroNoise{}
	}

	return &Selector{
		logger:   logger.With("component", "selector"),
		profiles: profiles,
		noise:    noise,
	}
}

// ChooseMove searches every child of node and returns the best one as the new
// game state. Ties go to the earliest child.
func (that *Selector) ChooseMove(node *entity.Game, level Level) (*entity.Game, error) {
	if node.IsOver() {
		return nil, apperror.ErrGameFinished
	}

	profile, ok := that.profiles[level]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownLevel, level)
	}

	children := GenerateChildren(node)
	mustHaveChildren(node, children)

	best, bestScore := 0, math.MinInt
	for i := range children {
		score := AlphaBeta(&children[i], profile.Depth, math.MinInt, math.MaxInt, node.Player, profile.Heuristic)
		score = score*scoreScale + that.noise.Noise(noiseRange)

		if score > bestScore {
			best, bestScore = i, score
		}
	}

	that.logger.Debug("move chosen",
		"level", level.String(),
		"player", node.Player.String(),
		"children", len(children),
		"score", bestScore,
		"position", children[best].Notation(),
	)

	chosen := children[best]

	return &chosen, nil
}

// Chooser is implemented by Selector.
type Chooser interface {
	ChooseMove(node *entity.Game, level Level) (*entity.Game, error)
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(node *entity.Game, level Level) (*entity.Game, error)

func (that ChooserFunc) ChooseMove(node *entity.Game, level Level) (*entity.Game, error) {
	return that(node, level)
}
