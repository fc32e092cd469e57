package chess

import (
	"fmt"
	"strings"
)

// Replay plays a whitespace separated list of coordinate moves
// ("e2e4 e7e5 g1f3") from pos, each by the side to move, and returns
// the resulting position. Move numbers ("1.") and a trailing result
// token are skipped. Every move is validated with IsLegal; the first
// illegal or malformed token aborts the replay.
//
// Example:
//
//	pos, err := Replay(StartingPosition(), "1. e2e4 e7e5 2. g1f3")
func Replay(pos *Position, moves string) (*Position, error) {
	for i, tok := range splitMoveTokens(moves) {
		if isResultToken(tok) {
			continue
		}
		m, err := ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate move token at %d: %w", i, err)
		}
		if !pos.IsLegal(m.From, m.To, pos.Turn()) {
			return nil, fmt.Errorf("%w %q at %d for %s", ErrIllegalMove, tok, i, pos.Turn())
		}
		pos = pos.Update(m)
	}
	return pos, nil
}

// splitMoveTokens splits a move list on whitespace and drops move
// number tokens such as "12." and "12...".
func splitMoveTokens(s string) []string {
	var toks []string
	for _, f := range strings.Fields(s) {
		if i := strings.LastIndexByte(f, '.'); i >= 0 {
			if isDigits(strings.TrimRight(f, ".")) {
				continue
			}
			f = f[i+1:]
			if f == "" {
				continue
			}
		}
		toks = append(toks, f)
	}
	return toks
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isResultToken(s string) bool {
	switch s {
	case "*", "1-0", "0-1", "1/2-1/2":
		return true
	}
	return false
}
