package game

import (
	"iter"
	"slices"
)

// BallsToWin is the number of opposing balls a side must push off to win.
const BallsToWin = 6

// Game holds the whole session: board, linear move history with a cursor
// and the side to move. A Game is not safe for concurrent use.
type Game struct {
	Board  Board
	Moves  []Move // 已提交的走子；Cursor 之后的部分可 Redo
	Cursor int    // 0 ≤ Cursor ≤ len(Moves)
	Turn   Cell   // Black or White
}

// NewGame returns a game in the start position with White to move.
func NewGame() *Game {
	return &Game{
		Board: NewBoard(),
		Turn:  White,
	}
}

// Get returns the cell at p; ok is false when p is off the board.
func (g *Game) Get(p Pos) (Cell, bool) { return g.Board.Get(p) }

// All yields every addressable cell in row-major order.
func (g *Game) All() iter.Seq2[Pos, Cell] { return g.Board.All() }

// Submit applies a move returned by CheckMove, drops any redo history and
// passes the turn.
func (g *Game) Submit(m Move) {
	g.Board.apply(m)
	g.Turn = g.Turn.Opposite()
	g.Moves = append(g.Moves[:g.Cursor], m)
	g.Cursor++
}

func (g *Game) CanUndo() bool { return g.Cursor > 0 }

func (g *Game) CanRedo() bool { return g.Cursor < len(g.Moves) }

// Undo reverts the last applied move. No-op at the start of the history.
func (g *Game) Undo() {
	if !g.CanUndo() {
		return
	}
	g.Turn = g.Turn.Opposite()
	g.Cursor--
	g.Board.unapply(g.Moves[g.Cursor])
}

// Redo re-applies the next undone move. No-op at the end of the history.
func (g *Game) Redo() {
	if !g.CanRedo() {
		return
	}
	g.Turn = g.Turn.Opposite()
	m := g.Moves[g.Cursor]
	g.Cursor++
	g.Board.apply(m)
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	return &Game{
		Board:  g.Board,
		Moves:  slices.Clone(g.Moves),
		Cursor: g.Cursor,
		Turn:   g.Turn,
	}
}

// Score returns how many opposing balls each side has pushed off.
func (g *Game) Score() (black, white int) {
	black = StartingBalls - g.Board.Count(White)
	white = StartingBalls - g.Board.Count(Black)
	return black, white
}

// Winner returns the side that has pushed off BallsToWin opposing balls.
func (g *Game) Winner() (Cell, bool) {
	black, white := g.Score()
	switch {
	case black >= BallsToWin:
		return Black, true
	case white >= BallsToWin:
		return White, true
	}
	return Empty, false
}
