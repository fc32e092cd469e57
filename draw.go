package chess

import "strings"

const (
	ansiReset     = "\x1b[0m"
	ansiLightSq   = "\x1b[48;5;180m"
	ansiDarkSq    = "\x1b[48;5;94m"
	ansiWhitePc   = "\x1b[97m"
	ansiBlackPc   = "\x1b[30m"
	ansiHighlight = "\x1b[48;5;143m"
)

type drawConfig struct {
	ansi        bool
	perspective Color
	highlight   map[Square]bool
}

// A DrawOption configures Draw.
type DrawOption func(*drawConfig)

// ANSI colours the squares and pieces with terminal escape codes.
func ANSI() DrawOption {
	return func(c *drawConfig) { c.ansi = true }
}

// FromBlack draws the board with Black's back rank at the bottom.
func FromBlack() DrawOption {
	return func(c *drawConfig) { c.perspective = Black }
}

// Highlight marks the given squares. Without ANSI the mark is a
// trailing '*' in place of the separating space.
func Highlight(squares ...Square) DrawOption {
	return func(c *drawConfig) {
		for _, sq := range squares {
			c.highlight[sq] = true
		}
	}
}

// Draw returns a diagram of the board using Unicode piece glyphs, with
// rank numbers on the left and file letters underneath.
func (pos *Position) Draw(opts ...DrawOption) string {
	cfg := &drawConfig{perspective: White, highlight: map[Square]bool{}}
	for _, o := range opts {
		o(cfg)
	}

	ranks := []int{7, 6, 5, 4, 3, 2, 1, 0}
	files := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if cfg.perspective == Black {
		ranks, files = files, ranks
	}

	var sb strings.Builder
	for _, rank := range ranks {
		sb.WriteByte(byte('1' + rank))
		for _, file := range files {
			sq := Square{File: file, Rank: rank}
			sb.WriteByte(' ')
			sb.WriteString(cfg.cell(sq, pos.Piece(sq)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for _, file := range files {
		sb.WriteByte(' ')
		sb.WriteByte(byte('a' + file))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (c *drawConfig) cell(sq Square, p Piece) string {
	glyph := p.Glyph()
	if !c.ansi {
		if c.highlight[sq] {
			return glyph + "*"
		}
		return glyph
	}

	bg := ansiDarkSq
	if (sq.File+sq.Rank)%2 == 1 {
		bg = ansiLightSq
	}
	if c.highlight[sq] {
		bg = ansiHighlight
	}
	fg := ansiWhitePc
	if p.Color() == Black {
		fg = ansiBlackPc
	}
	return bg + fg + glyph + ansiReset
}
