/*
Package chess decides whether a move is legal under the standard rules of
chess. It models a board position, evaluates per-piece movement geometry,
detects check and applies moves with copy-on-write semantics, so that any
number of read-only queries can run concurrently against one Position.

Example usage:

	// Start from the initial layout
	pos := chess.StartingPosition()

	e2, _ := chess.ParseSquare("e2")
	e4, _ := chess.ParseSquare("e4")

	// Ask whether White may play e2-e4, then play it
	if pos.IsLegal(e2, e4, chess.White) {
		pos = pos.Apply(e2, e4)
	}

	// Set up any position from FEN
	fen, err := chess.FEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		log.Fatal(err)
	}
	pos = chess.NewPosition(fen)
	fmt.Println(pos.InCheck(chess.Black))
*/
package chess

// startFEN is the standard initial layout.
const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// A Position is a complete board state: the occupant of every square,
// the en passant target, the castling rights, the side to move and the
// move clocks. Positions are never mutated after construction; Update
// and Apply return new values.
type Position struct {
	board         [boardSize][boardSize]Piece // [rank][file]
	turn          Color
	castleRights  CastleRights
	enPassant     Square
	halfMoveClock int
	moveCount     int
}

// StartingPosition returns the standard initial layout with full
// castling rights and no en passant target.
func StartingPosition() *Position {
	pos, err := decodeFEN(startFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// NewPosition returns the starting position with the given options
// applied in order.
//
// Example:
//
//	// Standard layout
//	pos := NewPosition()
//
//	// Position from FEN
//	fen, _ := FEN("8/8/8/8/8/8/8/K6k w - - 0 1")
//	pos := NewPosition(fen)
func NewPosition(options ...func(*Position)) *Position {
	pos := StartingPosition()
	for _, f := range options {
		if f != nil {
			f(pos)
		}
	}
	return pos
}

// FEN takes a string and returns a function that replaces a position's
// state with the FEN data. The returned function is designed to be used
// in the NewPosition constructor. An error is returned if there is a
// problem parsing the FEN data.
func FEN(fen string) (func(*Position), error) {
	decoded, err := decodeFEN(fen)
	if err != nil {
		return nil, err
	}
	return func(pos *Position) {
		*pos = *decoded
	}, nil
}

// Piece returns the occupant of sq, or NoPiece when the square is
// empty or off the board.
func (pos *Position) Piece(sq Square) Piece {
	if !sq.InBounds() {
		return NoPiece
	}
	return pos.board[sq.Rank][sq.File]
}

// Turn returns the side to move.
func (pos *Position) Turn() Color {
	return pos.turn
}

// CastleRights returns the castling flags.
func (pos *Position) CastleRights() CastleRights {
	return pos.castleRights
}

// EnPassantSquare returns the square a pawn may capture onto en passant,
// or NoSquare.
func (pos *Position) EnPassantSquare() Square {
	return pos.enPassant
}

// HalfMoveClock returns the number of half moves since the last pawn
// move or capture.
func (pos *Position) HalfMoveClock() int {
	return pos.halfMoveClock
}

// MoveCount returns the full move number.
func (pos *Position) MoveCount() int {
	return pos.moveCount
}

// copy returns an independent snapshot of the position.
func (pos *Position) copy() *Position {
	cp := *pos
	return &cp
}

// set places p on sq. It is only used while building a position that
// no caller has observed yet.
func (pos *Position) set(sq Square, p Piece) {
	pos.board[sq.Rank][sq.File] = p
}

// kingSquare returns the square of c's king.
func (pos *Position) kingSquare(c Color) (Square, bool) {
	king := NewPiece(King, c)
	for rank := 0; rank < boardSize; rank++ {
		for file := 0; file < boardSize; file++ {
			if pos.board[rank][file] == king {
				return Square{File: file, Rank: rank}, true
			}
		}
	}
	return NoSquare, false
}
