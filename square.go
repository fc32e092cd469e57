package chess

import "fmt"

const boardSize = 8

// Square is a zero-based (file, rank) coordinate. File 0 is the
// a-file and rank 0 is White's back rank. A Square may hold
// coordinates outside the board; such squares are never legal
// move endpoints.
type Square struct {
	File int
	Rank int
}

// NoSquare is the sentinel for an absent square, such as an unset
// en passant target.
var NoSquare = Square{File: -1, Rank: -1}

// NewSquare returns the square at the given file and rank.
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// InBounds reports whether both coordinates lie in [0,8).
func (sq Square) InBounds() bool {
	return sq.File >= 0 && sq.File < boardSize && sq.Rank >= 0 && sq.Rank < boardSize
}

// String returns the algebraic name of the square ("e4"), or "-"
// for squares off the board.
func (sq Square) String() string {
	if !sq.InBounds() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File), byte('1' + sq.Rank)})
}

// offset returns the square df files and dr ranks away.
func (sq Square) offset(df, dr int) Square {
	return Square{File: sq.File + df, Rank: sq.Rank + dr}
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	sq := Square{File: int(s[0]) - 'a', Rank: int(s[1]) - '1'}
	if !sq.InBounds() {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return sq, nil
}
