package main

import (
	"bytes"
	"strings"
	"testing"

	"abalone_go/internal/game"
)

func TestReplayPrintsEveryPly(t *testing.T) {
	g := game.NewGame()
	for range 3 {
		g.Submit(g.LegalMoves()[0])
	}
	final := g.Board

	var buf bytes.Buffer
	if err := replay(&buf, g, -1, 0); err != nil {
		t.Fatalf("replay: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"ply 0  start", "ply 1 ", "ply 2 ", "ply 3 "} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if g.Board != final || g.Cursor != 3 {
		t.Fatalf("replay should end at the final position")
	}
}

func TestReplayStopsAtPly(t *testing.T) {
	g := game.NewGame()
	for range 4 {
		g.Submit(g.LegalMoves()[0])
	}

	var buf bytes.Buffer
	if err := replay(&buf, g, 2, 0); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if g.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2", g.Cursor)
	}
	if strings.Contains(buf.String(), "ply 3 ") {
		t.Fatalf("replayed past the requested ply")
	}
}
