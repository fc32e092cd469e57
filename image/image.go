// Package image renders chess positions as SVG documents and PNG images.
//
// Example usage:
//
//	f, _ := os.Create("board.svg")
//	defer f.Close()
//	pos := chess.StartingPosition()
//	yellow := color.RGBA{255, 255, 0, 1}
//	e4, _ := chess.ParseSquare("e4")
//	if err := image.SVG(f, pos, image.MarkSquares(yellow, e4)); err != nil {
//		log.Fatal(err)
//	}
package image

import (
	"bytes"
	"fmt"
	goimage "image"
	"image/color"
	"image/png"
	"io"

	svg "github.com/ajstarks/svgo"
	chess "github.com/mway1/chessrules"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	sqSize    = 45
	boardSize = 8 * sqSize
)

var (
	defaultLight = color.RGBA{R: 240, G: 217, B: 181, A: 255}
	defaultDark  = color.RGBA{R: 181, G: 136, B: 99, A: 255}
)

// An Option configures the encoder.
type Option func(*encoder)

// SquareColors sets the colors of the light and dark squares.
func SquareColors(light, dark color.Color) Option {
	return func(e *encoder) {
		e.light = light
		e.dark = dark
	}
}

// MarkSquares fills the given squares with c instead of their
// regular color.
func MarkSquares(c color.Color, squares ...chess.Square) Option {
	return func(e *encoder) {
		for _, sq := range squares {
			e.marks[sq] = c
		}
	}
}

// Perspective draws the board from c's side. The default is White.
func Perspective(c chess.Color) Option {
	return func(e *encoder) {
		e.perspective = c
	}
}

type encoder struct {
	light       color.Color
	dark        color.Color
	perspective chess.Color
	marks       map[chess.Square]color.Color
}

func newEncoder(opts []Option) *encoder {
	e := &encoder{
		light:       defaultLight,
		dark:        defaultDark,
		perspective: chess.White,
		marks:       map[chess.Square]color.Color{},
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// SVG writes an SVG document of pos to w.
func SVG(w io.Writer, pos *chess.Position, opts ...Option) error {
	e := newEncoder(opts)
	var buf bytes.Buffer
	e.encode(&buf, pos, true)
	_, err := buf.WriteTo(w)
	return err
}

// encode writes the board. Pieces are emitted as text glyphs only when
// withPieces is set, since the rasteriser ignores text elements.
func (e *encoder) encode(w io.Writer, pos *chess.Position, withPieces bool) {
	canvas := svg.New(w)
	canvas.Startview(boardSize, boardSize, 0, 0, boardSize, boardSize)
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := chess.NewSquare(file, rank)
			x, y := e.origin(sq)
			canvas.Rect(x, y, sqSize, sqSize, "fill:"+hex(e.squareColor(sq)))
			if !withPieces {
				continue
			}
			p := pos.Piece(sq)
			if p == chess.NoPiece {
				continue
			}
			canvas.Text(x+sqSize/2, y+sqSize*3/4, p.Glyph(),
				fmt.Sprintf("font-size:%dpx;text-anchor:middle;fill:black", sqSize*3/4))
		}
	}
	canvas.End()
}

// PNG writes a size by size PNG image of pos to w. Squares are
// rasterised from the SVG rendering; pieces are drawn as their FEN
// letters.
func PNG(w io.Writer, pos *chess.Position, size int, opts ...Option) error {
	if size < 8 {
		return fmt.Errorf("image: size %d too small", size)
	}
	e := newEncoder(opts)

	var buf bytes.Buffer
	e.encode(&buf, pos, false)
	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return fmt.Errorf("image: parse board svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := goimage.NewRGBA(goimage.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	if err := e.drawPieces(rgba, pos, size); err != nil {
		return err
	}
	return png.Encode(w, rgba)
}

func (e *encoder) drawPieces(dst *goimage.RGBA, pos *chess.Position, size int) error {
	sq := size / 8
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("image: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(sq) * 0.6,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("image: load face: %w", err)
	}
	defer face.Close()

	d := &font.Drawer{Dst: dst, Face: face}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			s := chess.NewSquare(file, rank)
			p := pos.Piece(s)
			if p == chess.NoPiece {
				continue
			}
			x, y := e.origin(s)
			x, y = x*size/boardSize, y*size/boardSize
			letter := p.Type().String()
			adv := d.MeasureString(letter)
			dot := fixed.Point26_6{
				X: fixed.I(x) + (fixed.I(sq)-adv)/2,
				Y: fixed.I(y + sq*3/4),
			}

			fg, shadow := color.Color(color.White), color.Color(color.Black)
			if p.Color() == chess.Black {
				fg, shadow = shadow, fg
			}
			d.Src = goimage.NewUniform(shadow)
			d.Dot = dot.Add(fixed.P(1, 1))
			d.DrawString(letter)
			d.Src = goimage.NewUniform(fg)
			d.Dot = dot
			d.DrawString(letter)
		}
	}
	return nil
}

// origin returns the top-left corner of sq in SVG units.
func (e *encoder) origin(sq chess.Square) (int, int) {
	col, row := sq.File, 7-sq.Rank
	if e.perspective == chess.Black {
		col, row = 7-sq.File, sq.Rank
	}
	return col * sqSize, row * sqSize
}

func (e *encoder) squareColor(sq chess.Square) color.Color {
	if c, ok := e.marks[sq]; ok {
		return c
	}
	if (sq.File+sq.Rank)%2 == 1 {
		return e.light
	}
	return e.dark
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
