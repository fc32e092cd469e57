package chess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraw(t *testing.T) {
	want := "8 ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜\n" +
		"7 ♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟\n" +
		"6 - - - - - - - -\n" +
		"5 - - - - - - - -\n" +
		"4 - - - - - - - -\n" +
		"3 - - - - - - - -\n" +
		"2 ♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙\n" +
		"1 ♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖\n" +
		"  a b c d e f g h\n"
	assert.Equal(t, want, StartingPosition().Draw())
}

func TestDrawFromBlack(t *testing.T) {
	lines := strings.Split(StartingPosition().Draw(FromBlack()), "\n")
	assert.Equal(t, "1 ♖ ♘ ♗ ♔ ♕ ♗ ♘ ♖", lines[0])
	assert.Equal(t, "8 ♜ ♞ ♝ ♚ ♛ ♝ ♞ ♜", lines[7])
	assert.Equal(t, "  h g f e d c b a", lines[8])
}

func TestDrawHighlight(t *testing.T) {
	lines := strings.Split(StartingPosition().Draw(Highlight(sq("e2"), sq("e4"))), "\n")
	assert.Equal(t, "4 - - - - -* - - -", lines[4])
	assert.Equal(t, "2 ♙ ♙ ♙ ♙ ♙* ♙ ♙ ♙", lines[6])
}

func TestDrawANSI(t *testing.T) {
	out := StartingPosition().Draw(ANSI(), Highlight(sq("e4")))
	assert.Contains(t, out, ansiLightSq)
	assert.Contains(t, out, ansiDarkSq)
	assert.Equal(t, 1, strings.Count(out, ansiHighlight))
	assert.Equal(t, 64, strings.Count(out, ansiReset))
	assert.True(t, strings.HasSuffix(out, "  a b c d e f g h\n"))
}
