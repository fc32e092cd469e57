package chess

import "golang.org/x/exp/constraints"

// PseudoLegal reports whether the piece on from may move to to by its
// movement rules and the current occupancy, without regard to whether
// the move exposes its own king. The one exception is the king itself:
// a king move, castling included, must not leave that king in check.
func (pos *Position) PseudoLegal(from, to Square) bool {
	return pos.reachable(from, to, true)
}

// Attacks reports whether the piece on from could capture on to by
// geometry alone. Unlike PseudoLegal it never simulates a move, so a
// king attacks every adjacent square regardless of what defends it.
func (pos *Position) Attacks(from, to Square) bool {
	return pos.reachable(from, to, false)
}

// reachable is the shared geometry test. guardKing enables the king's
// self-check clause and castling; it must be false whenever the caller
// is the check detector, otherwise the two would recurse without end.
func (pos *Position) reachable(from, to Square, guardKing bool) bool {
	if !from.InBounds() || !to.InBounds() || from == to {
		return false
	}
	p := pos.Piece(from)
	if p == NoPiece {
		return false
	}
	target := pos.Piece(to)
	if target != NoPiece && target.Color() == p.Color() {
		return false
	}

	df := to.File - from.File
	dr := to.Rank - from.Rank

	switch p.Type() {
	case Pawn:
		return pos.pawnReachable(p.Color(), from, to, target)
	case Rook:
		return straight(df, dr) && pos.pathClear(from, to)
	case Bishop:
		return diagonal(df, dr) && pos.pathClear(from, to)
	case Queen:
		return (straight(df, dr) || diagonal(df, dr)) && pos.pathClear(from, to)
	case Knight:
		adf, adr := abs(df), abs(dr)
		return (adf == 1 && adr == 2) || (adf == 2 && adr == 1)
	case King:
		if abs(df) <= 1 && abs(dr) <= 1 {
			return !guardKing || !pos.Apply(from, to).InCheck(p.Color())
		}
		return guardKing && pos.canCastle(p.Color(), from, to)
	}
	return false
}

// pawnReachable applies the pawn rules. An occupied destination can
// only be taken diagonally; an empty one is reached by a straight
// advance or by an en passant capture.
func (pos *Position) pawnReachable(c Color, from, to Square, target Piece) bool {
	df := to.File - from.File
	dr := to.Rank - from.Rank
	fwd := c.forward()

	if target != NoPiece {
		return abs(df) == 1 && dr == fwd
	}
	switch {
	case df == 0 && dr == fwd:
		return true
	case df == 0 && dr == 2*fwd:
		return from.Rank == c.pawnRank() && pos.Piece(from.offset(0, fwd)) == NoPiece
	case abs(df) == 1 && dr == fwd:
		return to == pos.enPassant && pos.Piece(Square{File: to.File, Rank: from.Rank}) == NewPiece(Pawn, c.Other())
	}
	return false
}

// canCastle checks a two-file king move from its home square. The
// king may not castle out of, through or into check.
func (pos *Position) canCastle(c Color, from, to Square) bool {
	if from != kingHome(c) || to.Rank != from.Rank || abs(to.File-from.File) != 2 {
		return false
	}
	side := KingSide
	if to.File < from.File {
		side = QueenSide
	}
	if !pos.castleRights.CanCastle(c, side) {
		return false
	}
	rook := rookHome(c, side)
	if pos.Piece(rook) != NewPiece(Rook, c) || !pos.pathClear(from, rook) {
		return false
	}
	if pos.InCheck(c) {
		return false
	}
	step := sign(to.File - from.File)
	transit := from.offset(step, 0)
	if pos.simulate(from, transit).InCheck(c) {
		return false
	}
	return !pos.Apply(from, to).InCheck(c)
}

// simulate relocates the piece on from to to without any of the side
// effects Update applies.
func (pos *Position) simulate(from, to Square) *Position {
	next := pos.copy()
	next.set(to, next.Piece(from))
	next.set(from, NoPiece)
	return next
}

// pathClear reports whether every square strictly between from and to
// is empty. The squares must share a file, rank or diagonal.
func (pos *Position) pathClear(from, to Square) bool {
	sf := sign(to.File - from.File)
	sr := sign(to.Rank - from.Rank)
	for sq := from.offset(sf, sr); sq != to; sq = sq.offset(sf, sr) {
		if pos.Piece(sq) != NoPiece {
			return false
		}
	}
	return true
}

func straight(df, dr int) bool {
	return (df == 0) != (dr == 0)
}

func diagonal(df, dr int) bool {
	return df != 0 && abs(df) == abs(dr)
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
