package chess

import "fmt"

// InCheck reports whether c's king is attacked by any opposing piece.
//
// A position without a king of color c violates the package's
// invariants, and InCheck panics with an error wrapping ErrKingNotFound.
func (pos *Position) InCheck(c Color) bool {
	king, ok := pos.kingSquare(c)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrKingNotFound, c))
	}
	return pos.attacked(king, c.Other())
}

// attacked reports whether any piece of color by attacks sq.
func (pos *Position) attacked(sq Square, by Color) bool {
	for rank := 0; rank < boardSize; rank++ {
		for file := 0; file < boardSize; file++ {
			p := pos.board[rank][file]
			if p == NoPiece || p.Color() != by {
				continue
			}
			if pos.Attacks(Square{File: file, Rank: rank}, sq) {
				return true
			}
		}
	}
	return false
}
