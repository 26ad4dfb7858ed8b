package analysis

import "errors"

var (
	// ErrInvalidBoardState is returned when the board, player count or
	// remaining deck cannot describe a legal game state.
	ErrInvalidBoardState = errors.New("analysis: invalid board state")

	// ErrEnumerationExhausted is returned when there are no outcomes to
	// evaluate, which means a caller precondition was violated upstream.
	ErrEnumerationExhausted = errors.New("analysis: no outcomes to evaluate")
)
