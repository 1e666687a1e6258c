package game

import (
	"errors"
	"fmt"
	"iter"
)

// Cell represents the content of a board cell: Empty or a ball of one color.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

const (
	// Size is the side of the square grid that holds the hexagon.
	Size = 9
	// StartingBalls is the number of balls each side starts with.
	StartingBalls = 14
)

// ErrOutOfBounds is returned when writing a position outside the hexagon.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Opposite returns the other color. Empty stays Empty.
func (c Cell) Opposite() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

func (c Cell) MarshalText() ([]byte, error) {
	if c > White {
		return nil, fmt.Errorf("invalid cell %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "empty":
		*c = Empty
	case "black":
		*c = Black
	case "white":
		*c = White
	default:
		return fmt.Errorf("unknown cell %q", text)
	}
	return nil
}

// InBounds reports whether p is one of the 61 cells of the hexagon.
func InBounds(p Pos) bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size &&
		p.X-p.Y < 5 && p.Y-p.X < 5
}

// Board is the 9×9 grid carrying the hexagon. Cells outside InBounds are
// never written.
type Board [Size][Size]Cell

// NewBoard returns the default start position:
//
//	              0 1 2 3 4 5 6 7 8
//	           # - - - - - - - - - x
//	        0 / b b b b b . . . .
//	       1 / b b b b b b . . .
//	      2 / * * b b b * * . .
//	     3 / * * * * * * * * .
//	    4 / * * * * * * * * *
//	   5 / . * * * * * * * *
//	  6 / . . * * w w w * *
//	 7 / . . . w w w w w w
//	8 / . . . . w w w w w
//	 y
func NewBoard() Board {
	var b Board
	for x := 0; x < 5; x++ {
		b[0][x] = Black
	}
	for x := 0; x < 6; x++ {
		b[1][x] = Black
	}
	for x := 2; x < 5; x++ {
		b[2][x] = Black
	}

	for x := 4; x < 9; x++ {
		b[8][x] = White
	}
	for x := 3; x < 9; x++ {
		b[7][x] = White
	}
	for x := 4; x < 7; x++ {
		b[6][x] = White
	}
	return b
}

// Get returns the cell at p. ok is false when p is off the board.
func (b *Board) Get(p Pos) (c Cell, ok bool) {
	if !InBounds(p) {
		return Empty, false
	}
	return b[p.Y][p.X], true
}

// Set updates the cell at p. Returns an error if p is out of bounds.
func (b *Board) Set(p Pos, c Cell) error {
	if !InBounds(p) {
		return fmt.Errorf("set %v: %w", p, ErrOutOfBounds)
	}
	b[p.Y][p.X] = c
	return nil
}

// occupied reports whether p is on the board and holds a ball.
func (b *Board) occupied(p Pos) bool {
	c, ok := b.Get(p)
	return ok && c != Empty
}

// at and put skip the bounds check; the mutator only touches cells the
// checker already visited.
func (b *Board) at(p Pos) Cell     { return b[p.Y][p.X] }
func (b *Board) put(p Pos, c Cell) { b[p.Y][p.X] = c }

// All yields every addressable cell in row-major order.
func (b *Board) All() iter.Seq2[Pos, Cell] {
	return func(yield func(Pos, Cell) bool) {
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				p := Pos{x, y}
				if !InBounds(p) {
					continue
				}
				if !yield(p, b[y][x]) {
					return
				}
			}
		}
	}
}

// Count returns the number of balls of color c on the board.
func (b *Board) Count(c Cell) int {
	n := 0
	for _, cell := range b.All() {
		if cell == c {
			n++
		}
	}
	return n
}

// rowSpan returns the first and last addressable x of row y.
func rowSpan(y int) (lo, hi int) {
	return max(0, y-4), min(Size-1, y+4)
}
