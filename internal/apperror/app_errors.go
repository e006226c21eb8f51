package apperror

import "errors"

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrMatchAlreadyOver  = errors.New("match is already over")
	ErrNoMovesAvailable  = errors.New("no moves available")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrSameMarks         = errors.New("marks must be distinct and non-empty")
	ErrUnknownStrategy   = errors.New("unknown strategy")
	ErrUnknownFirstMover = errors.New("unknown first mover")
)
