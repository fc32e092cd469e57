package chess

import "fmt"

// A Move relocates the piece on From to To. Promo names the piece a
// pawn becomes on the last rank; it is ignored for every other move.
type Move struct {
	From  Square
	To    Square
	Promo PieceType
}

// String returns the move in coordinate notation, such as "e2e4" or
// "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	switch m.Promo {
	case Queen, Rook, Bishop, Knight:
		s += NewPiece(m.Promo, Black).String()
	}
	return s
}

// ParseMove parses coordinate notation: two square names followed by
// an optional promotion letter.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("chess: bad coordinate move %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("chess: bad coordinate move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("chess: bad coordinate move %q: %w", s, err)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch t := pieceTypeFromByte(s[4]); t {
		case Queen, Rook, Bishop, Knight:
			m.Promo = t
		default:
			return Move{}, fmt.Errorf("chess: bad promotion piece %q", s[4:])
		}
	}
	return m, nil
}

// Apply returns the position after moving the piece on from to to,
// promoting to a queen where applicable. See Update.
func (pos *Position) Apply(from, to Square) *Position {
	return pos.Update(Move{From: from, To: to})
}

// Update returns a new position with m applied. The receiver is left
// untouched. No legality checking is performed: whatever stood on
// m.From, possibly nothing, replaces whatever stood on m.To. A move
// with an endpoint off the board yields an unchanged copy.
//
// Besides relocating the piece, Update carries out the side effects of
// the move: the rook jump of a castle, removal of a pawn captured en
// passant, promotion, and the bookkeeping of castling rights, the en
// passant target, the clocks and the side to move.
func (pos *Position) Update(m Move) *Position {
	next := pos.copy()
	if !m.From.InBounds() || !m.To.InBounds() {
		return next
	}

	p := pos.Piece(m.From)
	captured := NoPiece
	if m.To != m.From {
		captured = pos.Piece(m.To)
	}
	df := m.To.File - m.From.File

	next.set(m.From, NoPiece)
	next.set(m.To, p)

	switch p.Type() {
	case Pawn:
		if df != 0 && captured == NoPiece && m.To == pos.enPassant {
			next.set(Square{File: m.To.File, Rank: m.From.Rank}, NoPiece)
			captured = NewPiece(Pawn, p.Color().Other())
		}
		if m.To.Rank == p.Color().Other().backRank() {
			next.set(m.To, NewPiece(promotion(m.Promo), p.Color()))
		}
	case King:
		if m.From == kingHome(p.Color()) && m.To.Rank == m.From.Rank && abs(df) == 2 {
			side := KingSide
			if df < 0 {
				side = QueenSide
			}
			rook := rookHome(p.Color(), side)
			next.set(m.From.offset(sign(df), 0), next.Piece(rook))
			next.set(rook, NoPiece)
		}
		next.castleRights &^= castleRight(p.Color(), KingSide) | castleRight(p.Color(), QueenSide)
	}
	next.castleRights &^= cornerRight(m.From) | cornerRight(m.To)

	next.enPassant = NoSquare
	if p.Type() == Pawn && abs(m.To.Rank-m.From.Rank) == 2 {
		next.enPassant = m.From.offset(0, p.Color().forward())
	}

	if p.Type() == Pawn || captured != NoPiece {
		next.halfMoveClock = 0
	} else {
		next.halfMoveClock++
	}

	mover := p.Color()
	if mover == NoColor {
		mover = pos.turn
	}
	if mover == Black {
		next.moveCount++
	}
	next.turn = mover.Other()
	return next
}

// promotion resolves the piece a pawn promotes to.
func promotion(t PieceType) PieceType {
	switch t {
	case Rook, Bishop, Knight:
		return t
	}
	return Queen
}
