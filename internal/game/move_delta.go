package game

import "fmt"

// span returns the number of steps from first to last and the unit step.
func span(first, last Pos) (int, Vec) {
	v := last.Sub(first)
	return v.Mag(), v.Norm()
}

// apply performs a move produced by CheckMove. Cells are shifted from the
// far end backwards so nothing is overwritten before it is read.
func (b *Board) apply(m Move) {
	switch m := m.(type) {
	case PushedOff:
		num, norm := span(m.First, m.Last)
		// Last 上的对方棋子被推出，直接被覆盖
		for i := num - 1; i >= 0; i-- {
			p := m.First.Add(norm.Mul(i))
			b.put(p.Add(norm), b.at(p))
		}
		b.put(m.First, Empty)
	case PushedAway:
		num, norm := span(m.First, m.Last)
		for i := num; i >= 0; i-- {
			p := m.First.Add(norm.Mul(i))
			b.put(p.Add(norm), b.at(p))
		}
		b.put(m.First, Empty)
	case Moved:
		num, norm := span(m.First, m.Last)
		step := m.Dir.Vec()
		for i := num; i >= 0; i-- {
			p := m.First.Add(norm.Mul(i))
			b.put(p.Add(step), b.at(p))
			b.put(p, Empty)
		}
	default:
		panic(fmt.Sprintf("game: unknown move %T", m))
	}
}

// unapply is the exact inverse of apply.
func (b *Board) unapply(m Move) {
	switch m := m.(type) {
	case PushedOff:
		num, norm := span(m.First, m.Last)
		for i := 0; i < num; i++ {
			old := m.First.Add(norm.Mul(i))
			b.put(old, b.at(old.Add(norm)))
		}
		// 被推出的那颗一定是对方颜色
		b.put(m.Last, b.at(m.First).Opposite())
	case PushedAway:
		num, norm := span(m.First, m.Last)
		for i := 0; i <= num; i++ {
			old := m.First.Add(norm.Mul(i))
			b.put(old, b.at(old.Add(norm)))
		}
		b.put(m.Last.Add(norm), Empty)
	case Moved:
		num, norm := span(m.First, m.Last)
		step := m.Dir.Vec()
		for i := 0; i <= num; i++ {
			old := m.First.Add(norm.Mul(i))
			p := old.Add(step)
			b.put(old, b.at(p))
			b.put(p, Empty)
		}
	default:
		panic(fmt.Sprintf("game: unknown move %T", m))
	}
}
