package main

import (
	"errors"
	"testing"

	chess "github.com/mway1/chessrules"
)

func TestCheckKings(t *testing.T) {
	tests := []struct {
		fen     string
		missing bool
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", false},
		{"4k3/8/8/8/8/8/8/R7 w - - 0 1", true},
		{"8/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"8/8/8/8/8/8/8/8 w - - 0 1", true},
	}
	for _, tt := range tests {
		fen, err := chess.FEN(tt.fen)
		if err != nil {
			t.Fatal(err)
		}
		err = checkKings(chess.NewPosition(fen))
		if got := errors.Is(err, chess.ErrKingNotFound); got != tt.missing {
			t.Fatalf("%s: expected missing king %t but got %v", tt.fen, tt.missing, err)
		}
	}
}
