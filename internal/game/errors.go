package game

import (
	"fmt"
	"iter"
	"strings"
)

// PosList is a small inline list of positions carried by error values.
// Its capacity is fixed when created (at most 3); exceeding it means the
// checker broke its own geometry and panics.
type PosList struct {
	buf   [3]Pos
	n     uint8
	limit uint8
}

func newPosList(limit int) PosList {
	if limit < 0 || limit > 3 {
		panic(fmt.Sprintf("game: invalid position list capacity %d", limit))
	}
	return PosList{limit: uint8(limit)}
}

func posListOf(limit int, ps ...Pos) PosList {
	l := newPosList(limit)
	for _, p := range ps {
		l.push(p)
	}
	return l
}

func (l *PosList) push(p Pos) {
	if l.n >= l.limit {
		panic(fmt.Sprintf("game: position list overflow (cap %d) pushing %v", l.limit, p))
	}
	l.buf[l.n] = p
	l.n++
}

func (l PosList) Len() int     { return int(l.n) }
func (l PosList) Cap() int     { return int(l.limit) }
func (l PosList) At(i int) Pos { return l.buf[:l.n][i] }

// Slice returns a copy of the positions.
func (l PosList) Slice() []Pos {
	out := make([]Pos, l.n)
	copy(out, l.buf[:l.n])
	return out
}

func (l PosList) All() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for _, p := range l.buf[:l.n] {
			if !yield(p) {
				return
			}
		}
	}
}

func (l PosList) String() string {
	parts := make([]string, 0, l.n)
	for p := range l.All() {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " ")
}

// SelectionError is a failure that holds for every direction: the selection
// itself is unusable. The set of implementations is closed.
type SelectionError interface {
	error
	selectionError()
}

// MoveError is a failure specific to the attempted direction.
// The set of implementations is closed.
type MoveError interface {
	error
	moveError()
}

// IsStructural reports whether err is a SelectionError.
func IsStructural(err error) bool {
	_, ok := err.(SelectionError)
	return ok
}

// WrongTurnError: the ball at At belongs to the side not on move.
type WrongTurnError struct{ At Pos }

// InvalidSetError: last - first is not a multiple of a unit vector.
type InvalidSetError struct{}

// MixedSetError lists the opposing balls found inside the selection.
type MixedSetError struct{ Positions PosList }

// NotABallError lists the selected positions that hold no ball.
type NotABallError struct{ Positions PosList }

// TooManyError: the selection spans more than three cells.
type TooManyError struct{}

// NoPossibleMoveError: no direction yields a legal move.
type NoPossibleMoveError struct{}

func (e WrongTurnError) Error() string { return fmt.Sprintf("wrong turn at %v", e.At) }
func (InvalidSetError) Error() string  { return "invalid set" }
func (e MixedSetError) Error() string  { return "mixed set: " + e.Positions.String() }
func (e NotABallError) Error() string  { return "not a ball: " + e.Positions.String() }
func (TooManyError) Error() string     { return "too many balls selected" }
func (NoPossibleMoveError) Error() string {
	return "no possible move"
}

func (WrongTurnError) selectionError()      {}
func (InvalidSetError) selectionError()     {}
func (MixedSetError) selectionError()       {}
func (NotABallError) selectionError()       {}
func (TooManyError) selectionError()        {}
func (NoPossibleMoveError) selectionError() {}

// PushedOffError: the move would push the listed own balls off the board.
type PushedOffError struct{ Positions PosList }

// BlockedByOwnError: an own ball sits behind the opposing line.
type BlockedByOwnError struct{ At Pos }

// TooManyInferredError: a fourth own ball (Last) is in line behind First.
type TooManyInferredError struct{ First, Last Pos }

// TooManyOpposingError: the opposing line First..Last is at least as strong.
type TooManyOpposingError struct{ First, Last Pos }

// NotFreeError lists occupied destinations of a broadside move.
type NotFreeError struct{ Positions PosList }

func (e PushedOffError) Error() string    { return "pushed off: " + e.Positions.String() }
func (e BlockedByOwnError) Error() string { return fmt.Sprintf("blocked by own ball at %v", e.At) }
func (e TooManyInferredError) Error() string {
	return fmt.Sprintf("too many own balls in the push direction %v %v", e.First, e.Last)
}
func (e TooManyOpposingError) Error() string {
	return fmt.Sprintf("too many opposing balls %v %v", e.First, e.Last)
}
func (e NotFreeError) Error() string { return "blocked by: " + e.Positions.String() }

func (PushedOffError) moveError()       {}
func (BlockedByOwnError) moveError()    {}
func (TooManyInferredError) moveError() {}
func (TooManyOpposingError) moveError() {}
func (NotFreeError) moveError()         {}
