// Command chesslegal answers move legality queries for a position given
// in FEN, and can render the position as text, SVG or PNG.
//
//	chesslegal -fen "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1" -move e1g1 -draw
//	chesslegal -moves "e2e4 e7e5" -svg board.svg
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	chess "github.com/mway1/chessrules"
	"github.com/mway1/chessrules/image"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("chesslegal: ")

	fen := flag.String("fen", "", "FEN of the position (defaults to the initial position)")
	moves := flag.String("moves", "", "coordinate moves to replay before the query, e.g. \"e2e4 e7e5\"")
	query := flag.String("move", "", "coordinate move to test for the side to move, e.g. e2e4")
	draw := flag.Bool("draw", false, "print a text diagram of the position")
	ansi := flag.Bool("ansi", false, "colour the text diagram with ANSI escapes")
	svgPath := flag.String("svg", "", "write an SVG rendering to this file")
	pngPath := flag.String("png", "", "write a PNG rendering to this file")
	size := flag.Int("size", 360, "PNG size in pixels")
	flag.Parse()

	pos := chess.StartingPosition()
	if *fen != "" {
		opt, err := chess.FEN(*fen)
		if err != nil {
			log.Fatal(err)
		}
		pos = chess.NewPosition(opt)
	}

	if *moves != "" || *query != "" {
		if err := checkKings(pos); err != nil {
			log.Fatal(err)
		}
	}

	pos, err := chess.Replay(pos, *moves)
	if err != nil {
		log.Fatal(err)
	}

	var marks []chess.Square
	illegal := false
	if *query != "" {
		m, err := chess.ParseMove(*query)
		if err != nil {
			log.Fatal(err)
		}
		marks = []chess.Square{m.From, m.To}
		mover := pos.Turn()
		if !pos.IsLegal(m.From, m.To, mover) {
			fmt.Printf("%s: illegal for %s\n", m, mover)
			illegal = true
		} else {
			next := pos.Update(m)
			fmt.Printf("%s: legal for %s\n", m, mover)
			fmt.Printf("fen: %s\n", next)
			if err := checkKings(next); err != nil {
				log.Fatal(err)
			}
			if next.InCheck(mover.Other()) {
				fmt.Printf("%s is in check\n", mover.Other())
			}
		}
	}

	if *draw {
		var opts []chess.DrawOption
		if *ansi {
			opts = append(opts, chess.ANSI())
		}
		if len(marks) > 0 {
			opts = append(opts, chess.Highlight(marks...))
		}
		fmt.Print(pos.Draw(opts...))
	}

	highlight := image.MarkSquares(color.RGBA{R: 205, G: 210, B: 106, A: 255}, marks...)
	if *svgPath != "" {
		if err := writeFile(*svgPath, func(w io.Writer) error {
			return image.SVG(w, pos, highlight)
		}); err != nil {
			log.Fatal(err)
		}
	}
	if *pngPath != "" {
		if err := writeFile(*pngPath, func(w io.Writer) error {
			return image.PNG(w, pos, *size, highlight)
		}); err != nil {
			log.Fatal(err)
		}
	}
	if illegal {
		os.Exit(1)
	}
}

// checkKings reports a missing king as an error. Legality queries
// panic on a position without one.
func checkKings(pos *chess.Position) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.Is(e, chess.ErrKingNotFound) {
				panic(r)
			}
			err = e
		}
	}()
	pos.InCheck(chess.White)
	pos.InCheck(chess.Black)
	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}
