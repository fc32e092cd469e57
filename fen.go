package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// decodeFEN parses Forsyth-Edwards Notation. The half move clock and
// move number fields are optional and default to 0 and 1.
func decodeFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fmt.Errorf("%w: expected 4 to 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	pos := &Position{enPassant: NoSquare, moveCount: 1}
	if err := decodeBoard(pos, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		pos.turn = White
	case "b":
		pos.turn = Black
	default:
		return nil, fmt.Errorf("%w: bad side to move %q", ErrInvalidFEN, fields[1])
	}

	rights, err := decodeCastleRights(fields[2])
	if err != nil {
		return nil, err
	}
	pos.castleRights = rights

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: bad en passant square: %w", ErrInvalidFEN, err)
		}
		if sq.Rank != 2 && sq.Rank != 5 {
			return nil, fmt.Errorf("%w: en passant square %s not on rank 3 or 6", ErrInvalidFEN, sq)
		}
		pos.enPassant = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad half move clock %q", ErrInvalidFEN, fields[4])
		}
		pos.halfMoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: bad move number %q", ErrInvalidFEN, fields[5])
		}
		pos.moveCount = n
	}
	return pos, nil
}

func decodeBoard(pos *Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != boardSize {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := boardSize - 1 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				if file > boardSize {
					return fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank+1)
				}
				continue
			}
			p := pieceFromByte(ch)
			if p == NoPiece {
				return fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			if file >= boardSize {
				return fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank+1)
			}
			pos.set(Square{File: file, Rank: rank}, p)
			file++
		}
		if file != boardSize {
			return fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank+1, file)
		}
	}
	return nil
}

func decodeCastleRights(field string) (CastleRights, error) {
	if field == "-" {
		return NoCastleRights, nil
	}
	var cr CastleRights
	for _, r := range field {
		switch r {
		case 'K':
			cr |= WhiteKingSide
		case 'Q':
			cr |= WhiteQueenSide
		case 'k':
			cr |= BlackKingSide
		case 'q':
			cr |= BlackQueenSide
		default:
			return NoCastleRights, fmt.Errorf("%w: bad castling flag %q", ErrInvalidFEN, r)
		}
	}
	return cr, nil
}

// String implements the fmt.Stringer interface and returns the
// position's FEN.
func (pos *Position) String() string {
	var sb strings.Builder
	for rank := boardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < boardSize; file++ {
			p := pos.board[rank][file]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	turn := "w"
	if pos.turn == Black {
		turn = "b"
	}
	fmt.Fprintf(&sb, " %s %s %s %d %d", turn, pos.castleRights, pos.enPassant, pos.halfMoveClock, pos.moveCount)
	return sb.String()
}
