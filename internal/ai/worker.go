package ai

import (
	"fmt"
	"sync/atomic"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// Result is the outcome of a background search.
type Result struct {
	Game *entity.Game
	Err  error
}

// Worker runs one search at a time off the caller's goroutine. A search
// cannot be cancelled; a caller that lost interest drops the channel.
type Worker struct {
	chooser  Chooser
	inFlight atomic.Bool
}

func NewWorker(chooser Chooser) *Worker {
	return &Worker{chooser: chooser}
}

// Submit starts a search on a private copy of node. The returned channel
// receives exactly one Result. Submitting while a search runs yields
// ErrSearchInFlight.
func (that *Worker) Submit(node entity.Game, level Level) <-chan Result {
	results := make(chan Result, 1)

	if !that.inFlight.CompareAndSwap(false, true) {
		results <- Result{Err: apperror.ErrSearchInFlight}
		return results
	}

	go func() {
		var result Result

		defer func() {
			if recovered := recover(); recovered != nil {
				result = Result{Err: fmt.Errorf("%w: %v", apperror.ErrSearchPanicked, recovered)}
			}

			that.inFlight.Store(false)
			results <- result
		}()

		result.Game, result.Err = that.chooser.ChooseMove(&node, level)
	}()

	return results
}

// Busy - reports whether a search is running.
func (that *Worker) Busy() bool {
	return that.inFlight.Load()
}
