package game

import (
	"math/rand"
	"testing"
)

func TestLegalMovesStartPosition(t *testing.T) {
	g := NewGame()
	moves := g.LegalMoves()
	if len(moves) == 0 {
		t.Fatal("expected legal moves from the start position")
	}
	seen := make(map[Move]bool)
	for _, m := range moves {
		if seen[m] {
			t.Errorf("duplicate move %v", m)
		}
		seen[m] = true
		if c, _ := g.Get(m.Anchor()); c != g.Turn {
			t.Errorf("%v anchored on %v, turn is %v", m, c, g.Turn)
		}
		if _, ok := m.(Moved); !ok {
			t.Errorf("no contact in the start position, got %v", m)
		}
	}
}

func TestApplyUnapplyEveryLegalMove(t *testing.T) {
	g := NewGame()
	for _, m := range g.LegalMoves() {
		b := g.Board
		b.apply(m)
		if b == g.Board {
			t.Errorf("%v did not change the board", m)
		}
		if b.Count(White) != StartingBalls || b.Count(Black) != StartingBalls {
			t.Errorf("%v changed the ball count", m)
		}
		b.unapply(m)
		if b != g.Board {
			t.Errorf("unapply(%v) did not restore the board:\n%s", m, b)
		}
	}
}

// TestRandomPlayouts 随机对局，检查每一步 Submit/Undo/Redo 都可逆。
func TestRandomPlayouts(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	kinds := map[string]int{}
	for game := 0; game < 20; game++ {
		g := NewGame()
		for ply := 0; ply < 150; ply++ {
			moves := g.LegalMoves()
			if len(moves) == 0 {
				break
			}
			m := moves[r.Intn(len(moves))]
			switch m.(type) {
			case Moved:
				kinds["moved"]++
			case PushedAway:
				kinds["away"]++
			case PushedOff:
				kinds["off"]++
			}

			board, turn := g.Board, g.Turn
			g.Submit(m)
			after := g.Board
			g.Undo()
			if g.Board != board || g.Turn != turn {
				t.Fatalf("game %d ply %d: undo of %v did not restore\n%s", game, ply, m, g.Board)
			}
			g.Redo()
			if g.Board != after || g.Turn != turn.Opposite() {
				t.Fatalf("game %d ply %d: redo of %v differs", game, ply, m)
			}
			if _, over := g.Winner(); over {
				break
			}
		}

		for g.CanUndo() {
			g.Undo()
		}
		if g.Board != NewBoard() || g.Turn != White {
			t.Fatalf("game %d: undoing everything did not reach the start position", game)
		}
	}
	if kinds["moved"] == 0 || kinds["away"] == 0 {
		t.Logf("move kinds seen: %v", kinds)
	}
}
