package game

// CheckSelection reports whether the balls first..last can move in at least
// one direction. It returns nil on success and a SelectionError otherwise.
func (g *Game) CheckSelection(first, last Pos) error {
	for _, d := range Directions {
		_, err := g.CheckMove(first, last, d)
		if err == nil {
			return nil
		}
		// 结构性错误与方向无关，直接返回
		if se, ok := err.(SelectionError); ok {
			return se
		}
	}
	return NoPossibleMoveError{}
}

// CheckMove validates pushing the selection first..last in direction dir for
// the side to move. The returned error is either a SelectionError or a
// MoveError.
func (g *Game) CheckMove(first, last Pos, dir Dir) (Move, error) {
	b := &g.Board
	if c, ok := b.Get(first); ok && c != Empty && c != g.Turn {
		return nil, WrongTurnError{At: first}
	}

	vec := last.Sub(first)
	norm := dir.Vec()
	if vec != (Vec{}) {
		norm = vec.Norm()
		if !vec.IsAxisMultiple() {
			return nil, InvalidSetError{}
		}
		// 反向选择：交换首尾，统一成“向前推”
		if norm.Neg() == dir.Vec() {
			first, last = last, first
			vec, norm = vec.Neg(), norm.Neg()
		}
	}

	mag := vec.Mag()
	if mag >= 3 {
		return nil, TooManyError{}
	}

	color, ok := b.Get(first)
	if !ok || color == Empty {
		missing := newPosList(3)
		missing.push(first)
		for i := 1; i <= mag; i++ {
			p := first.Add(norm.Mul(i))
			if !b.occupied(p) {
				missing.push(p)
			}
		}
		return nil, NotABallError{Positions: missing}
	}
	// the swapped anchor must belong to the side to move as well
	if color != g.Turn {
		return nil, WrongTurnError{At: first}
	}

	if norm == dir.Vec() {
		return b.checkInline(first, mag, color, dir)
	}
	return b.checkBroadside(first, last, norm, mag, color, dir)
}

// checkInline walks from first along dir: own balls add force, the first
// opposing ball beyond the selection starts the opposing line.
func (b *Board) checkInline(first Pos, mag int, color Cell, dir Dir) (Move, error) {
	step := dir.Vec()

	force := 1
	var opposing Pos
walk:
	for {
		p := first.Add(step.Mul(force))
		c, ok := b.Get(p)
		switch {
		case !ok:
			last := first.Add(step.Mul(force - 1))
			return nil, PushedOffError{Positions: posListOf(3, last)}
		case c == Empty:
			last := first.Add(step.Mul(force - 1))
			return Moved{Dir: dir, First: first, Last: last}, nil
		case c != color:
			if force < mag {
				mixed := newPosList(2)
				mixed.push(p)
				for i := force + 1; i <= mag; i++ {
					mixed.push(first.Add(step.Mul(i)))
				}
				return nil, MixedSetError{Positions: mixed}
			}
			opposing = p
			break walk
		default:
			if force >= 3 {
				return nil, TooManyInferredError{First: first, Last: p}
			}
			force++
		}
	}

	if force <= 1 {
		return nil, TooManyOpposingError{First: opposing, Last: opposing}
	}

	// 对方棋串
	for n := 1; ; n++ {
		p := opposing.Add(step.Mul(n))
		c, ok := b.Get(p)
		switch {
		case !ok:
			return PushedOff{First: first, Last: opposing.Add(step.Mul(n - 1))}, nil
		case c == Empty:
			return PushedAway{First: first, Last: opposing.Add(step.Mul(n - 1))}, nil
		case c == color:
			return nil, BlockedByOwnError{At: p}
		case n >= force-1:
			return nil, TooManyOpposingError{First: opposing, Last: p}
		}
	}
}

// checkBroadside validates a sideways move of the whole selection. All
// offending cells are collected before failing.
func (b *Board) checkBroadside(first, last Pos, norm Vec, mag int, color Cell, dir Dir) (Move, error) {
	mixed := newPosList(2)
	for i := 1; i <= mag; i++ {
		p := first.Add(norm.Mul(i))
		c, ok := b.Get(p)
		if !ok || c == Empty {
			missing := newPosList(3)
			for j := i; j <= mag; j++ {
				q := first.Add(norm.Mul(j))
				if !b.occupied(q) {
					missing.push(q)
				}
			}
			return nil, NotABallError{Positions: missing}
		}
		if c != color {
			mixed.push(p)
		}
	}
	if mixed.Len() > 0 {
		return nil, MixedSetError{Positions: mixed}
	}

	notFree := newPosList(3)
	pushedOff := newPosList(3)
	for i := 0; i <= mag; i++ {
		cur := first.Add(norm.Mul(i))
		dst := cur.Add(dir.Vec())
		c, ok := b.Get(dst)
		switch {
		case !ok:
			pushedOff.push(cur)
		case c != Empty:
			notFree.push(dst)
		}
	}
	if notFree.Len() > 0 {
		return nil, NotFreeError{Positions: notFree}
	}
	if pushedOff.Len() > 0 {
		return nil, PushedOffError{Positions: pushedOff}
	}

	return Moved{Dir: dir, First: first, Last: last}, nil
}
