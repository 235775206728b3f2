// Package core provides fundamental types shared by the simulation and the
// terminal platform. It has no external dependencies so game logic stays
// pure and testable.
package core

// Vec2 is a 2D vector with float components. Entity anchors and ball
// directions are expressed in grid cells.
type Vec2 struct {
	X, Y float64
}

// V creates a new vector.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Trunc truncates both components toward zero, yielding the grid position
// that contains the vector.
func (v Vec2) Trunc() Pos {
	return Pos{X: int(v.X), Y: int(v.Y)}
}

// Pos is an integer grid coordinate.
type Pos struct {
	X, Y int
}

// Add returns c + o.
func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}
