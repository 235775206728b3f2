package game

import (
	"github.com/vovakirdan/console-pong/internal/core"
	"github.com/vovakirdan/console-pong/internal/shape"
)

// Renderer is the drawing surface the processor paints every tick.
// Writes outside the surface must be ignored, never fail.
type Renderer interface {
	DrawChar(x, y int, r rune)
	DrawString(x, y int, text string)
	DrawColoredString(x, y int, text string, c core.Color)
	Clear()
}

// InputProvider reports the instantaneous state of a key.
type InputProvider interface {
	IsKeyDown(k core.Key) bool
}

// Beeper emits the audible goal cue.
type Beeper interface {
	Beep()
}

// ShapeSource supplies the images of the ball and the paddles.
type ShapeSource interface {
	Ball() (*shape.Shape, error)
	Plank() (*shape.Shape, error)
}

// NoInput is an InputProvider with every key released.
type NoInput struct{}

// IsKeyDown always returns false.
func (NoInput) IsKeyDown(core.Key) bool { return false }

type silentBeeper struct{}

func (silentBeeper) Beep() {}
