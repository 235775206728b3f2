package game

import (
	"math/rand"

	"github.com/vovakirdan/console-pong/internal/core"
	"github.com/vovakirdan/console-pong/internal/shape"
)

// MinDeflection is the smallest vertical speed the ball leaves a paddle with.
const MinDeflection = 0.4

// serveSpeeds is the set the initial horizontal direction is drawn from.
var serveSpeeds = []float64{-1, 1}

// Ball travels by its direction every tick.
type Ball struct {
	body
	dir core.Vec2
}

// NewBall creates a ball at pos heading in a random direction.
func NewBall(pos core.Vec2, s *shape.Shape, rng *rand.Rand) *Ball {
	return &Ball{
		body: body{pos: pos, shape: s},
		dir:  RandomDirection(rng),
	}
}

// RandomDirection returns a serve direction: horizontal speed from a fixed
// non-zero set, vertical speed uniform in [-1, 1].
func RandomDirection(rng *rand.Rand) core.Vec2 {
	x := serveSpeeds[rng.Intn(len(serveSpeeds))]
	y := rng.Float64()*2 - 1
	return core.V(x, y)
}

// Direction returns the current velocity per tick.
func (b *Ball) Direction() core.Vec2 {
	return b.dir
}

// InvertHorizontal flips the sign of the horizontal component.
func (b *Ball) InvertHorizontal() {
	b.dir.X = -b.dir.X
}

// InvertVertical flips the sign of the vertical component.
func (b *Ball) InvertVertical() {
	b.dir.Y = -b.dir.Y
}

// Deflect sends the ball back horizontally and picks a new vertical
// component outside (-MinDeflection, MinDeflection).
func (b *Ball) Deflect(rng *rand.Rand) {
	x := -b.dir.X
	y := 0.0
	for y >= -MinDeflection && y <= MinDeflection {
		y = rng.Float64()*2 - 1
	}
	b.dir = core.V(x, y)
}

// Tick moves the ball. Overshooting a boundary is left to the collision
// pass of the next tick.
func (b *Ball) Tick(*World) {
	if b.destroyed {
		return
	}
	b.pos = b.pos.Add(b.dir)
}

// recenter puts the ball back on the given column, keeping its row.
func (b *Ball) recenter(x int) {
	b.pos.X = float64(x)
}
