package chess

import "errors"

var (
	// ErrKingNotFound is wrapped by the value InCheck panics with when
	// the queried side has no king on the board.
	ErrKingNotFound = errors.New("chess: king not found")
	// ErrInvalidSquare is returned for malformed square names.
	ErrInvalidSquare = errors.New("chess: invalid square")
	// ErrInvalidFEN is returned for malformed FEN strings.
	ErrInvalidFEN = errors.New("chess: invalid FEN")
	// ErrIllegalMove is returned by Replay for a move that is not
	// legal for the side to move.
	ErrIllegalMove = errors.New("chess: illegal move")
)
