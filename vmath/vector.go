package vmath

import "fmt"

// Vec2 is an integer grid vector, used both for cell positions (X = column, Y = row)
// and for unit-step velocities
type Vec2 struct {
	X, Y int
}

// V is a shorthand constructor
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Add returns the component-wise sum
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// FlipX returns the vector with the horizontal component negated
func (v Vec2) FlipX() Vec2 {
	return Vec2{X: -v.X, Y: v.Y}
}

// FlipY returns the vector with the vertical component negated
func (v Vec2) FlipY() Vec2 {
	return Vec2{X: v.X, Y: -v.Y}
}

// IsUnitStep reports whether both components are -1 or +1
func (v Vec2) IsUnitStep() bool {
	return (v.X == 1 || v.X == -1) && (v.Y == 1 || v.Y == -1)
}

// Sign returns -1 for negative values and +1 otherwise
func Sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

// Clamp restricts n to [lo, hi]; hi wins when the range is empty
func Clamp(n, lo, hi int) int {
	if n < lo {
		n = lo
	}
	if n > hi {
		n = hi
	}
	return n
}
