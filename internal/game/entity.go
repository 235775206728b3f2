package game

import (
	"math/rand"

	"github.com/vovakirdan/console-pong/internal/core"
	"github.com/vovakirdan/console-pong/internal/shape"
)

// World is what an entity may observe during its tick.
type World struct {
	Grid  Grid
	Input InputProvider
	Rand  *rand.Rand
}

// Entity is a positioned, shaped object with its own per-tick behavior.
type Entity interface {
	// Position returns the anchor position.
	Position() core.Vec2
	// GridPosition returns the anchor truncated to a grid cell.
	GridPosition() core.Pos
	// Shape returns the shared image of the entity.
	Shape() *shape.Shape
	// Tick advances the entity by one simulation step.
	Tick(w *World)
	// Destroy detaches the entity from the simulation. Later ticks are no-ops.
	Destroy()
}

// body holds the state common to every entity.
type body struct {
	pos       core.Vec2
	shape     *shape.Shape
	destroyed bool
}

func (b *body) Position() core.Vec2 {
	return b.pos
}

func (b *body) GridPosition() core.Pos {
	return b.pos.Trunc()
}

func (b *body) Shape() *shape.Shape {
	return b.shape
}

func (b *body) Destroy() {
	b.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (b *body) Destroyed() bool {
	return b.destroyed
}

// cellOf returns the absolute grid cell of a shape point for an entity.
func cellOf(e Entity, p shape.Point) core.Pos {
	return e.GridPosition().Add(p.Offset.Trunc())
}
