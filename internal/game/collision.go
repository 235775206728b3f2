package game

import "github.com/vovakirdan/console-pong/internal/core"

// checkBallCollisions runs one ordered pass over the ball's solid points.
// Every response writes straight into the ball's direction, so when several
// fire in the same tick the last write for an axis wins.
func (p *Processor) checkBallCollisions() {
	b := p.ball
	s := b.Shape()

	for i := 0; i < s.Len(); i++ {
		pt := s.At(i)
		if !pt.Solid() {
			continue
		}

		if c := cellOf(b, pt); c.X <= 0 || c.X >= p.grid.Width {
			p.goal()
			b.InvertHorizontal()
		}

		// re-read: a goal moves the ball
		c := cellOf(b, pt)
		if c.Y <= 0 || c.Y >= p.grid.Height {
			b.InvertVertical()
		}

		for _, e := range p.entities {
			if e == Entity(b) {
				continue
			}
			p.checkOverlap(c, e)
		}
	}
}

// checkOverlap deflects the ball once for every solid point of e that
// occupies the ball cell c.
func (p *Processor) checkOverlap(c core.Pos, e Entity) {
	s := e.Shape()
	for i := 0; i < s.Len(); i++ {
		pt := s.At(i)
		if !pt.Solid() {
			continue
		}
		if cellOf(e, pt) == c {
			p.ball.Deflect(p.rng)
		}
	}
}

// goal credits the player on the far side of the ball's half, sounds the
// cue and brings the ball back to the center column.
func (p *Processor) goal() {
	scorer := "right"
	if p.ball.Position().X > float64(p.grid.CenterX()) {
		p.score.Left++
		scorer = "left"
	} else {
		p.score.Right++
	}

	p.beeper.Beep()
	p.log.Info("goal", "scorer", scorer, "left", p.score.Left, "right", p.score.Right, "tick", p.ticks)

	p.ball.recenter(p.grid.CenterX())
}
