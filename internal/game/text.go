package game

import (
	"fmt"
	"strings"
)

// glyph maps a cell to its one-character form used by the text board and
// the JSON grid rows.
func (c Cell) glyph() byte {
	switch c {
	case Black:
		return 'b'
	case White:
		return 'w'
	}
	return '.'
}

func cellFromGlyph(g byte) (Cell, bool) {
	switch g {
	case 'b':
		return Black, true
	case 'w':
		return White, true
	case '.':
		return Empty, true
	}
	return Empty, false
}

// String draws the hexagon, one row per line, neighbours along Z offset
// diagonally:
//
//	    b b b b b
//	   b b b b b b
//	  . . b b b . .
//	...
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		lo, hi := rowSpan(y)
		sb.WriteString(strings.Repeat(" ", abs(4-y)))
		for x := lo; x <= hi; x++ {
			if x > lo {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b[y][x].glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// row returns the compact form of row y: one glyph per addressable cell.
func (b *Board) row(y int) string {
	lo, hi := rowSpan(y)
	buf := make([]byte, 0, hi-lo+1)
	for x := lo; x <= hi; x++ {
		buf = append(buf, b[y][x].glyph())
	}
	return string(buf)
}

// setRow fills row y from its compact form.
func (b *Board) setRow(y int, s string) error {
	lo, hi := rowSpan(y)
	if len(s) != hi-lo+1 {
		return fmt.Errorf("row %d: want %d cells, got %d", y, hi-lo+1, len(s))
	}
	for i := 0; i < len(s); i++ {
		c, ok := cellFromGlyph(s[i])
		if !ok {
			return fmt.Errorf("row %d: unknown cell %q", y, s[i])
		}
		b[y][lo+i] = c
	}
	return nil
}

// ParseBoard reads the format written by Board.String. Whitespace inside and
// around rows is ignored, blank lines are skipped.
func ParseBoard(s string) (Board, error) {
	var b Board
	y := 0
	for _, line := range strings.Split(s, "\n") {
		compact := strings.Join(strings.Fields(line), "")
		if compact == "" {
			continue
		}
		if y >= Size {
			return Board{}, fmt.Errorf("parse board: more than %d rows", Size)
		}
		if err := b.setRow(y, compact); err != nil {
			return Board{}, fmt.Errorf("parse board: %w", err)
		}
		y++
	}
	if y != Size {
		return Board{}, fmt.Errorf("parse board: want %d rows, got %d", Size, y)
	}
	return b, nil
}
