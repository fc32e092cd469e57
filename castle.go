package chess

import "strings"

// CastleRights holds the four independent castling flags.
type CastleRights uint8

const (
	WhiteKingSide CastleRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	// NoCastleRights has every flag cleared.
	NoCastleRights CastleRights = 0
	// AllCastleRights has every flag set.
	AllCastleRights = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// Side is the wing a king castles towards.
type Side uint8

const (
	KingSide Side = iota
	QueenSide
)

// castleRight returns the flag for c castling towards s.
func castleRight(c Color, s Side) CastleRights {
	switch {
	case c == White && s == KingSide:
		return WhiteKingSide
	case c == White && s == QueenSide:
		return WhiteQueenSide
	case c == Black && s == KingSide:
		return BlackKingSide
	case c == Black && s == QueenSide:
		return BlackQueenSide
	}
	return NoCastleRights
}

// CanCastle reports whether the flag for c castling towards s is set.
// It says nothing about whether castling is currently legal.
func (cr CastleRights) CanCastle(c Color, s Side) bool {
	return cr&castleRight(c, s) != 0
}

// String returns the FEN castling field ("KQkq", or "-" when empty).
func (cr CastleRights) String() string {
	var sb strings.Builder
	if cr&WhiteKingSide != 0 {
		sb.WriteByte('K')
	}
	if cr&WhiteQueenSide != 0 {
		sb.WriteByte('Q')
	}
	if cr&BlackKingSide != 0 {
		sb.WriteByte('k')
	}
	if cr&BlackQueenSide != 0 {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// rookHome returns the corner square of the rook c castles with on s.
func rookHome(c Color, s Side) Square {
	if s == KingSide {
		return Square{File: 7, Rank: c.backRank()}
	}
	return Square{File: 0, Rank: c.backRank()}
}

// kingHome returns the starting square of c's king.
func kingHome(c Color) Square {
	return Square{File: 4, Rank: c.backRank()}
}

// cornerRight maps a rook corner to the flag that depends on it.
func cornerRight(sq Square) CastleRights {
	for _, c := range [2]Color{White, Black} {
		for _, s := range [2]Side{KingSide, QueenSide} {
			if rookHome(c, s) == sq {
				return castleRight(c, s)
			}
		}
	}
	return NoCastleRights
}
