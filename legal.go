package chess

// IsLegal reports whether mover may move the piece on from to to: the
// piece must belong to mover, the move must be pseudo-legal and it must
// not leave mover's king in check. Out of range squares, an empty
// source and self-captures are simply not legal.
//
// IsLegal does not check that it is mover's turn; callers that track
// turn order pass pos.Turn().
func (pos *Position) IsLegal(from, to Square, mover Color) bool {
	p := pos.Piece(from)
	if p == NoPiece || p.Color() != mover {
		return false
	}
	if !pos.PseudoLegal(from, to) {
		return false
	}
	if p.Type() == King {
		// PseudoLegal already simulated the king move.
		return true
	}
	return !pos.Apply(from, to).InCheck(mover)
}
