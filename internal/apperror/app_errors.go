package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrInvalidMove     = errors.New("move is not playable")
	ErrInvalidNotation = errors.New("invalid position notation")
	ErrUnknownLevel    = errors.New("unknown ai level")
	ErrSearchInFlight  = errors.New("a search is already running")
	ErrResultNotFound  = errors.New("arena result not found")
	ErrSearchPanicked  = errors.New("search panicked")
)
