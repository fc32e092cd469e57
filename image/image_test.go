package image

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	chess "github.com/mway1/chessrules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, chess.StartingPosition()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Equal(t, 64, strings.Count(out, "<rect"))
	assert.Equal(t, 32, strings.Count(out, "<text"))
	assert.Equal(t, 32, strings.Count(out, "fill:#f0d9b5"))
	assert.Equal(t, 32, strings.Count(out, "fill:#b58863"))
	assert.Contains(t, out, "♔")
	assert.Contains(t, out, "♞")
}

func TestSVGMarkSquares(t *testing.T) {
	e2, err := chess.ParseSquare("e2")
	require.NoError(t, err)
	e4, err := chess.ParseSquare("e4")
	require.NoError(t, err)

	var buf bytes.Buffer
	yellow := color.RGBA{R: 255, G: 255, A: 255}
	require.NoError(t, SVG(&buf, chess.StartingPosition(), MarkSquares(yellow, e2, e4)))
	assert.Equal(t, 2, strings.Count(buf.String(), "fill:#ffff00"))
}

func TestSVGPerspective(t *testing.T) {
	e := newEncoder([]Option{Perspective(chess.Black)})
	x, y := e.origin(chess.NewSquare(0, 0))
	assert.Equal(t, 7*sqSize, x)
	assert.Equal(t, 0, y)

	e = newEncoder(nil)
	x, y = e.origin(chess.NewSquare(0, 0))
	assert.Equal(t, 0, x)
	assert.Equal(t, 7*sqSize, y)
}

func TestSquareColors(t *testing.T) {
	e := newEncoder([]Option{SquareColors(color.White, color.Black)})
	assert.Equal(t, "#000000", hex(e.squareColor(chess.NewSquare(0, 0))), "a1 is dark")
	assert.Equal(t, "#ffffff", hex(e.squareColor(chess.NewSquare(7, 0))), "h1 is light")
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, chess.StartingPosition(), 240))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 240, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())

	// The middle of e4 is an empty light square.
	r, g, b, _ := img.At(4*30+15, 4*30+15).RGBA()
	assert.InDelta(t, 240, r>>8, 2)
	assert.InDelta(t, 217, g>>8, 2)
	assert.InDelta(t, 181, b>>8, 2)
}

func TestPNGTooSmall(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PNG(&buf, chess.StartingPosition(), 4))
	assert.Zero(t, buf.Len())
}
