package game

import "fmt"

// Move is a validated move produced by CheckMove. It carries exactly what is
// needed to apply and to undo it. Implementations: Moved, PushedAway,
// PushedOff.
type Move interface {
	// Anchor returns the first own ball that was pushed.
	Anchor() Pos
	isMove()
}

// Moved shifts the own balls First..Last one step along Dir without
// resistance. For a broadside move First..Last is the whole selection.
type Moved struct {
	Dir         Dir
	First, Last Pos
}

// PushedAway pushes an opposing line that stays on the board. Last is the
// last opposing ball before the free cell.
type PushedAway struct {
	First, Last Pos
}

// PushedOff pushes the opposing ball at Last off the board.
type PushedOff struct {
	First, Last Pos
}

func (m Moved) Anchor() Pos      { return m.First }
func (m PushedAway) Anchor() Pos { return m.First }
func (m PushedOff) Anchor() Pos  { return m.First }

func (Moved) isMove()      {}
func (PushedAway) isMove() {}
func (PushedOff) isMove()  {}

func (m Moved) String() string {
	return fmt.Sprintf("moved %v %v..%v", m.Dir, m.First, m.Last)
}

func (m PushedAway) String() string {
	return fmt.Sprintf("pushed away %v..%v", m.First, m.Last)
}

func (m PushedOff) String() string {
	return fmt.Sprintf("pushed off %v..%v", m.First, m.Last)
}

// spanAxes are the selection vectors LegalMoves tries from each ball. Only
// positive axes are needed, CheckMove flips selections pointing backwards.
var spanAxes = [...]Vec{unitX, unitY, unitZ}

// LegalMoves lists every distinct legal move for the side to move, in board
// order. Different selections often describe the same move (selecting the
// rear ball of a line pushes the whole line), those are reported once.
func (g *Game) LegalMoves() []Move {
	seen := make(map[Move]struct{})
	var moves []Move
	add := func(m Move) {
		if _, ok := seen[m]; ok {
			return
		}
		seen[m] = struct{}{}
		moves = append(moves, m)
	}

	for p, c := range g.Board.All() {
		if c != g.Turn {
			continue
		}
		// 单子：方向即选区方向
		for _, d := range Directions {
			if m, err := g.CheckMove(p, p, d); err == nil {
				add(m)
			}
		}
		// 两子、三子
		for _, axis := range spanAxes {
			for k := 1; k <= 2; k++ {
				last := p.Add(axis.Mul(k))
				if !g.Board.occupied(last) {
					break
				}
				for _, d := range Directions {
					if m, err := g.CheckMove(p, last, d); err == nil {
						add(m)
					}
				}
			}
		}
	}
	return moves
}
