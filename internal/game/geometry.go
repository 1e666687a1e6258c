package game

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pos is a cell coordinate in the following system, where * marks the
// addressable cells:
//
//	              0 1 2 3 4 5 6 7 8
//	           #------------------ x
//	        0 / * * * * * . . . .
//	       1 / * * * * * * . . .
//	      2 / * * * * * * * . .
//	     3 / * * * * * * * * .
//	    4 / * * * * * * * * *
//	   5 / . * * * * * * * *
//	  6 / . . * * * * * * *
//	 7 / . . . * * * * * *
//	8 / . . . . * * * * *
//	 y
type Pos struct {
	X, Y int
}

// Vec is a displacement between two positions.
type Vec struct {
	X, Y int
}

var (
	unitX = Vec{1, 0}
	unitY = Vec{0, 1}
	unitZ = Vec{1, 1} // Z 轴 = X + Y
)

func (p Pos) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Add returns p moved by v.
func (p Pos) Add(v Vec) Pos { return Pos{p.X + v.X, p.Y + v.Y} }

// Sub returns the displacement from q to p.
func (p Pos) Sub(q Pos) Vec { return Vec{p.X - q.X, p.Y - q.Y} }

func (v Vec) Neg() Vec { return Vec{-v.X, -v.Y} }

func (v Vec) Mul(k int) Vec { return Vec{v.X * k, v.Y * k} }

// Mag is the hex distance covered by v. Steps along Z move both components
// but still count as one.
func (v Vec) Mag() int {
	if sign(v.X) == sign(v.Y) || v.X == 0 || v.Y == 0 {
		return max(abs(v.X), abs(v.Y))
	}
	return abs(v.X) + abs(v.Y)
}

// Norm returns the component-wise sign of v.
func (v Vec) Norm() Vec { return Vec{sign(v.X), sign(v.Y)} }

// IsAxisMultiple reports whether v lies on the X, Y or Z axis.
func (v Vec) IsAxisMultiple() bool {
	return v.X == 0 || v.Y == 0 || v.X == v.Y
}

// IsParallel reports whether v and w are parallel. The zero vector is only
// parallel to itself.
func (v Vec) IsParallel(w Vec) bool {
	if v == (Vec{}) || w == (Vec{}) {
		return v == w
	}
	return v.X*w.Y == v.Y*w.X
}

// Dir maps a unit vector to its direction.
func (v Vec) Dir() (Dir, bool) {
	for _, d := range Directions {
		if d.Vec() == v {
			return d, true
		}
	}
	return 0, false
}

// Dir is one of the six push directions.
type Dir uint8

const (
	PosX Dir = iota
	PosY
	PosZ
	NegX
	NegY
	NegZ
)

// Directions in the order CheckSelection tries them.
var Directions = [6]Dir{PosX, PosY, PosZ, NegX, NegY, NegZ}

var dirNames = [6]string{"+x", "+y", "+z", "-x", "-y", "-z"}

// Vec returns the unit displacement of d.
func (d Dir) Vec() Vec {
	switch d {
	case PosX:
		return unitX
	case PosY:
		return unitY
	case PosZ:
		return unitZ
	case NegX:
		return unitX.Neg()
	case NegY:
		return unitY.Neg()
	case NegZ:
		return unitZ.Neg()
	}
	return Vec{}
}

func (d Dir) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return fmt.Sprintf("Dir(%d)", uint8(d))
}

// MarshalText encodes d as "+x", "-z", ...
func (d Dir) MarshalText() ([]byte, error) {
	if int(d) >= len(dirNames) {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(dirNames[d]), nil
}

func (d *Dir) UnmarshalText(text []byte) error {
	for i, name := range dirNames {
		if name == string(text) {
			*d = Dir(i)
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", text)
}

func sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
