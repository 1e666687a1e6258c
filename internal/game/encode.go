package game

import (
	"encoding/json"
	"fmt"
)

// Move kinds as written in encoded games.
const (
	kindMoved      = "moved"
	kindPushedAway = "pushed_away"
	kindPushedOff  = "pushed_off"
)

type moveJSON struct {
	Kind  string `json:"kind"`
	Dir   *Dir   `json:"dir,omitempty"`
	First [2]int `json:"first"`
	Last  [2]int `json:"last"`
}

type gameJSON struct {
	Board  [Size]string `json:"board"`
	Moves  []moveJSON   `json:"moves"`
	Cursor int          `json:"cursor"`
	Turn   Cell         `json:"turn"`
}

func encodeMove(m Move) (moveJSON, error) {
	switch m := m.(type) {
	case Moved:
		d := m.Dir
		return moveJSON{Kind: kindMoved, Dir: &d, First: [2]int{m.First.X, m.First.Y}, Last: [2]int{m.Last.X, m.Last.Y}}, nil
	case PushedAway:
		return moveJSON{Kind: kindPushedAway, First: [2]int{m.First.X, m.First.Y}, Last: [2]int{m.Last.X, m.Last.Y}}, nil
	case PushedOff:
		return moveJSON{Kind: kindPushedOff, First: [2]int{m.First.X, m.First.Y}, Last: [2]int{m.Last.X, m.Last.Y}}, nil
	}
	return moveJSON{}, fmt.Errorf("unknown move %T", m)
}

func decodeMove(j moveJSON) (Move, error) {
	first := Pos{j.First[0], j.First[1]}
	last := Pos{j.Last[0], j.Last[1]}
	if !InBounds(first) || !InBounds(last) {
		return nil, fmt.Errorf("%s %v..%v: %w", j.Kind, first, last, ErrOutOfBounds)
	}
	if !last.Sub(first).IsAxisMultiple() {
		return nil, fmt.Errorf("%s %v..%v: not on an axis", j.Kind, first, last)
	}
	var m Move
	switch j.Kind {
	case kindMoved:
		if j.Dir == nil {
			return nil, fmt.Errorf("moved %v..%v: missing direction", first, last)
		}
		m = Moved{Dir: *j.Dir, First: first, Last: last}
	case kindPushedAway:
		m = PushedAway{First: first, Last: last}
	case kindPushedOff:
		m = PushedOff{First: first, Last: last}
	default:
		return nil, fmt.Errorf("unknown move kind %q", j.Kind)
	}
	if err := checkShape(m); err != nil {
		return nil, fmt.Errorf("%s %v..%v: %w", j.Kind, first, last, err)
	}
	return m, nil
}

// checkShape rejects moves whose cells apply or unapply would write outside
// the board. It checks geometry only, not the balls on it.
func checkShape(m Move) error {
	switch m := m.(type) {
	case Moved:
		num, norm := span(m.First, m.Last)
		if num > 2 {
			return fmt.Errorf("selection of %d balls", num+1)
		}
		for i := 0; i <= num; i++ {
			if dst := m.First.Add(norm.Mul(i)).Add(m.Dir.Vec()); !InBounds(dst) {
				return fmt.Errorf("destination %v: %w", dst, ErrOutOfBounds)
			}
		}
	case PushedAway:
		num, norm := span(m.First, m.Last)
		if num < 1 || num > 4 {
			return fmt.Errorf("push spans %d cells", num+1)
		}
		if dst := m.Last.Add(norm); !InBounds(dst) {
			return fmt.Errorf("destination %v: %w", dst, ErrOutOfBounds)
		}
	case PushedOff:
		num, norm := span(m.First, m.Last)
		if num < 1 || num > 4 {
			return fmt.Errorf("push spans %d cells", num+1)
		}
		// 被推的球必须在边上
		if dst := m.Last.Add(norm); InBounds(dst) {
			return fmt.Errorf("%v is not on the edge", m.Last)
		}
	}
	return nil
}

// MarshalJSON encodes the board, the full history, the cursor and the side
// to move.
func (g *Game) MarshalJSON() ([]byte, error) {
	out := gameJSON{
		Moves:  make([]moveJSON, 0, len(g.Moves)),
		Cursor: g.Cursor,
		Turn:   g.Turn,
	}
	for y := 0; y < Size; y++ {
		out.Board[y] = g.Board.row(y)
	}
	for i, m := range g.Moves {
		j, err := encodeMove(m)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		out.Moves = append(out.Moves, j)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a game written by MarshalJSON. g is left untouched
// on error.
func (g *Game) UnmarshalJSON(data []byte) error {
	var in gameJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	var b Board
	for y, row := range in.Board {
		if err := b.setRow(y, row); err != nil {
			return fmt.Errorf("decode board: %w", err)
		}
	}
	moves := make([]Move, 0, len(in.Moves))
	for i, j := range in.Moves {
		m, err := decodeMove(j)
		if err != nil {
			return fmt.Errorf("decode move %d: %w", i, err)
		}
		moves = append(moves, m)
	}
	if in.Cursor < 0 || in.Cursor > len(moves) {
		return fmt.Errorf("decode: cursor %d outside [0, %d]", in.Cursor, len(moves))
	}
	if in.Turn != Black && in.Turn != White {
		return fmt.Errorf("decode: invalid turn %v", in.Turn)
	}

	*g = Game{Board: b, Moves: moves, Cursor: in.Cursor, Turn: in.Turn}
	return nil
}
