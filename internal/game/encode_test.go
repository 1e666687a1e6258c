package game

import (
	"encoding/json"
	"math/rand"
	"slices"
	"strings"
	"testing"
)

func TestGameJSONRoundTrip(t *testing.T) {
	g := setup(t, Black, ps(4, 5, 4, 6, 4, 7, 2, 4, 3, 4), ps(4, 8, 4, 4, 6, 2))
	g.Submit(mustMove(t, g, Pos{4, 5}, Pos{4, 7}, PosY)) // pushed off
	g.Submit(mustMove(t, g, Pos{6, 2}, Pos{6, 2}, NegX)) // moved
	g.Submit(mustMove(t, g, Pos{2, 4}, Pos{3, 4}, PosX)) // pushed away
	g.Undo()

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"turn":"black"`) {
		t.Errorf("unexpected encoding %s", data)
	}

	var back Game
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Board != g.Board || back.Cursor != g.Cursor || back.Turn != g.Turn {
		t.Fatalf("round trip mismatch: cursor %d/%d turn %v/%v\n%s", back.Cursor, g.Cursor, back.Turn, g.Turn, back.Board)
	}
	if !slices.Equal(back.Moves, g.Moves) {
		t.Fatalf("moves mismatch: %v vs %v", back.Moves, g.Moves)
	}

	// the decoded history must still be usable
	back.Redo()
	g.Redo()
	if back.Board != g.Board {
		t.Fatalf("redo after decode differs")
	}
	for back.CanUndo() {
		back.Undo()
	}
	want := setup(t, Black, ps(4, 5, 4, 6, 4, 7, 2, 4, 3, 4), ps(4, 8, 4, 4, 6, 2))
	if back.Board != want.Board {
		t.Fatalf("undo all after decode:\n%s", back.Board)
	}
}

func TestGameJSONFreshGame(t *testing.T) {
	data, err := json.Marshal(NewGame())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back Game
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Board != NewBoard() || back.Turn != White || len(back.Moves) != 0 {
		t.Fatalf("fresh game did not round trip")
	}
}

func TestGameJSONRejectsInvalid(t *testing.T) {
	valid, err := json.Marshal(NewGame())
	if err != nil {
		t.Fatal(err)
	}
	var base map[string]any
	if err := json.Unmarshal(valid, &base); err != nil {
		t.Fatal(err)
	}

	mutate := func(f func(m map[string]any)) []byte {
		m := make(map[string]any, len(base))
		for k, v := range base {
			m[k] = v
		}
		f(m)
		out, err := json.Marshal(m)
		if err != nil {
			t.Fatal(err)
		}
		return out
	}
	rows := func(first string) []any {
		r := base["board"].([]any)
		out := slices.Clone(r)
		out[0] = first
		return out
	}

	cases := map[string][]byte{
		"short row":     mutate(func(m map[string]any) { m["board"] = rows("bbbb") }),
		"bad glyph":     mutate(func(m map[string]any) { m["board"] = rows("bbbbx") }),
		"cursor range":  mutate(func(m map[string]any) { m["cursor"] = 1 }),
		"negative":      mutate(func(m map[string]any) { m["cursor"] = -1 }),
		"empty turn":    mutate(func(m map[string]any) { m["turn"] = "empty" }),
		"unknown turn":  mutate(func(m map[string]any) { m["turn"] = "red" }),
		"unknown kind":  mutate(func(m map[string]any) { m["moves"] = []any{map[string]any{"kind": "jump", "first": []int{0, 0}, "last": []int{0, 0}}} }),
		"missing dir":   mutate(func(m map[string]any) { m["moves"] = []any{map[string]any{"kind": "moved", "first": []int{0, 0}, "last": []int{0, 0}}} }),
		"bad dir":       mutate(func(m map[string]any) { m["moves"] = []any{map[string]any{"kind": "moved", "dir": "+q", "first": []int{0, 0}, "last": []int{0, 0}}} }),
		"off board":     mutate(func(m map[string]any) { m["moves"] = []any{map[string]any{"kind": "pushed_off", "first": []int{5, 0}, "last": []int{5, 1}}} }),
		"not on axis":   mutate(func(m map[string]any) { m["moves"] = []any{map[string]any{"kind": "pushed_away", "first": []int{0, 0}, "last": []int{2, 1}}} }),
		"moved off":     mutate(func(m map[string]any) { m["moves"] = []any{map[string]any{"kind": "moved", "dir": "+x", "first": []int{8, 4}, "last": []int{8, 4}}} }),
		"broadside off": mutate(func(m map[string]any) { m["moves"] = []any{map[string]any{"kind": "moved", "dir": "+y", "first": []int{3, 7}, "last": []int{5, 7}}} }),
		"moved four":    mutate(func(m map[string]any) { m["moves"] = []any{map[string]any{"kind": "moved", "dir": "+x", "first": []int{0, 4}, "last": []int{3, 4}}} }),
		"away off":      mutate(func(m map[string]any) { m["moves"] = []any{map[string]any{"kind": "pushed_away", "first": []int{4, 5}, "last": []int{4, 8}}} }),
		"away one cell": mutate(func(m map[string]any) { m["moves"] = []any{map[string]any{"kind": "pushed_away", "first": []int{4, 4}, "last": []int{4, 4}}} }),
		"off too long":  mutate(func(m map[string]any) { m["moves"] = []any{map[string]any{"kind": "pushed_off", "first": []int{4, 0}, "last": []int{4, 8}}} }),
		"off not edge":  mutate(func(m map[string]any) { m["moves"] = []any{map[string]any{"kind": "pushed_off", "first": []int{4, 2}, "last": []int{4, 4}}} }),
		"not an object": []byte(`[1,2,3]`),
	}
	for name, data := range cases {
		g := NewGame()
		g.Turn = Black
		if err := json.Unmarshal(data, g); err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if g.Turn != Black || g.Board != NewBoard() {
			t.Errorf("%s: failed decode modified the game", name)
		}
	}
}

func TestGameJSONPlayedGames(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for range 5 {
		g := NewGame()
		for range 200 {
			moves := g.LegalMoves()
			if len(moves) == 0 {
				break
			}
			g.Submit(moves[r.Intn(len(moves))])
		}
		data, err := json.Marshal(g)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		var back Game
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("played game rejected: %v", err)
		}
		for back.CanUndo() {
			back.Undo()
		}
		if back.Board != NewBoard() {
			t.Fatalf("undo all after decode:\n%s", back.Board)
		}
	}
}
