package chess

import "strings"

// Color represents the side a piece belongs to.
type Color int8

const (
	// NoColor represents no side.
	NoColor Color = iota
	// White is the side that moves first.
	White
	// Black is the side that moves second.
	Black
)

// Other returns the opposing color, or NoColor for NoColor.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// String implements the fmt.Stringer interface.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "NoColor"
}

// forward is the rank step a pawn of this color advances by.
func (c Color) forward() int {
	if c == Black {
		return -1
	}
	return 1
}

// pawnRank is the rank pawns of this color start on.
func (c Color) pawnRank() int {
	if c == Black {
		return 6
	}
	return 1
}

// backRank is the rank the king and rooks of this color start on.
func (c Color) backRank() int {
	if c == Black {
		return 7
	}
	return 0
}

// PieceType is the kind of a piece independent of its color.
type PieceType int8

const (
	// NoPieceType represents no piece kind.
	NoPieceType PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// PieceTypes returns every piece kind.
func PieceTypes() [6]PieceType {
	return [6]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}
}

// String implements the fmt.Stringer interface with the
// uppercase algebraic letter of the kind.
func (p PieceType) String() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return ""
}

func pieceTypeFromByte(b byte) PieceType {
	switch b {
	case 'k', 'K':
		return King
	case 'q', 'Q':
		return Queen
	case 'r', 'R':
		return Rook
	case 'b', 'B':
		return Bishop
	case 'n', 'N':
		return Knight
	case 'p', 'P':
		return Pawn
	}
	return NoPieceType
}

// Piece is an occupant of a square: a kind together with a side.
type Piece int8

// NoPiece is the value of an empty square.
const NoPiece Piece = 0

const (
	WhiteKing   = Piece(int8(White)<<3 | int8(King))
	WhiteQueen  = Piece(int8(White)<<3 | int8(Queen))
	WhiteRook   = Piece(int8(White)<<3 | int8(Rook))
	WhiteBishop = Piece(int8(White)<<3 | int8(Bishop))
	WhiteKnight = Piece(int8(White)<<3 | int8(Knight))
	WhitePawn   = Piece(int8(White)<<3 | int8(Pawn))
	BlackKing   = Piece(int8(Black)<<3 | int8(King))
	BlackQueen  = Piece(int8(Black)<<3 | int8(Queen))
	BlackRook   = Piece(int8(Black)<<3 | int8(Rook))
	BlackBishop = Piece(int8(Black)<<3 | int8(Bishop))
	BlackKnight = Piece(int8(Black)<<3 | int8(Knight))
	BlackPawn   = Piece(int8(Black)<<3 | int8(Pawn))
)

// NewPiece returns the piece of the given kind and color.
// It returns NoPiece if either argument is the empty value.
func NewPiece(t PieceType, c Color) Piece {
	if t == NoPieceType || c == NoColor {
		return NoPiece
	}
	return Piece(int8(c)<<3 | int8(t))
}

// Type returns the kind of the piece.
func (p Piece) Type() PieceType {
	return PieceType(int8(p) & 7)
}

// Color returns the side of the piece.
func (p Piece) Color() Color {
	return Color(int8(p) >> 3)
}

// String returns the FEN letter of the piece: uppercase for
// White, lowercase for Black.
func (p Piece) String() string {
	if p == NoPiece {
		return ""
	}
	s := p.Type().String()
	if p.Color() == Black {
		return strings.ToLower(s)
	}
	return s
}

var glyphs = map[Piece]string{
	WhiteKing:   "♔",
	WhiteQueen:  "♕",
	WhiteRook:   "♖",
	WhiteBishop: "♗",
	WhiteKnight: "♘",
	WhitePawn:   "♙",
	BlackKing:   "♚",
	BlackQueen:  "♛",
	BlackRook:   "♜",
	BlackBishop: "♝",
	BlackKnight: "♞",
	BlackPawn:   "♟",
}

// Glyph returns the Unicode chess symbol for the piece, or "-"
// for NoPiece.
func (p Piece) Glyph() string {
	if g, ok := glyphs[p]; ok {
		return g
	}
	return "-"
}

func pieceFromByte(b byte) Piece {
	t := pieceTypeFromByte(b)
	if t == NoPieceType {
		return NoPiece
	}
	if b >= 'a' && b <= 'z' {
		return NewPiece(t, Black)
	}
	return NewPiece(t, White)
}
