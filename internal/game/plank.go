package game

import (
	"github.com/vovakirdan/console-pong/internal/core"
	"github.com/vovakirdan/console-pong/internal/shape"
)

// Plank is a paddle steered by two keys.
type Plank struct {
	body
	up   core.Key
	down core.Key
	maxY int
}

// NewPlank creates a paddle at pos that may travel between 0 and maxY.
func NewPlank(pos core.Vec2, s *shape.Shape, maxY int, up, down core.Key) *Plank {
	return &Plank{
		body: body{pos: pos, shape: s},
		up:   up,
		down: down,
		maxY: maxY,
	}
}

// Keys returns the up and down key codes.
func (p *Plank) Keys() (up, down core.Key) {
	return p.up, p.down
}

// CanMove reports whether the paddle may step up and down. Every point of
// the image counts, holes included.
func (p *Plank) CanMove() (canUp, canDown bool) {
	canUp, canDown = true, true
	for _, pt := range p.shape.Points() {
		y := p.pos.Y + pt.Offset.Y
		if y <= 0 {
			canUp = false
		}
		if y >= float64(p.maxY) {
			canDown = false
		}
	}
	return canUp, canDown
}

// Tick polls the keys and moves one row. Up wins when both are held.
func (p *Plank) Tick(w *World) {
	if p.destroyed || w == nil || w.Input == nil {
		return
	}

	canUp, canDown := p.CanMove()
	switch {
	case w.Input.IsKeyDown(p.up) && canUp:
		p.pos = p.pos.Add(core.V(0, -1))
	case w.Input.IsKeyDown(p.down) && canDown:
		p.pos = p.pos.Add(core.V(0, 1))
	}
}
