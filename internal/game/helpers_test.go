package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/console-pong/internal/core"
	"github.com/vovakirdan/console-pong/internal/shape"
)

// keys is an InputProvider with a fixed set of held keys.
type keys map[core.Key]bool

func (k keys) IsKeyDown(key core.Key) bool { return k[key] }

type countingBeeper struct{ n int }

func (b *countingBeeper) Beep() { b.n++ }

type stubShapes struct {
	ball  *shape.Shape
	plank *shape.Shape
	err   error
}

func (s stubShapes) Ball() (*shape.Shape, error)  { return s.ball, s.err }
func (s stubShapes) Plank() (*shape.Shape, error) { return s.plank, s.err }

// dot is a single solid point at the anchor.
func dot(glyph rune) *shape.Shape {
	return shape.New("dot", []shape.Point{{Offset: core.V(0, 0), Glyph: glyph}})
}

// bar is a vertical paddle image of the given height, centered on the anchor.
func bar(height int) *shape.Shape {
	pts := make([]shape.Point, height)
	for i := range pts {
		pts[i] = shape.Point{Offset: core.V(0, float64(i-height/2)), Glyph: '#'}
	}
	return shape.New("bar", pts)
}

type fixture struct {
	proc   *Processor
	screen *core.Screen
	beeper *countingBeeper
	input  keys
}

func newFixture(t *testing.T, src ShapeSource, seed int64) *fixture {
	t.Helper()

	if src == nil {
		src = shape.NewLoader("")
	}
	w, h := Surface()
	f := &fixture{
		screen: core.NewScreen(w, h),
		beeper: &countingBeeper{},
		input:  keys{},
	}
	f.proc = NewProcessor(Options{
		Shapes:   src,
		Renderer: f.screen,
		Input:    f.input,
		Beeper:   f.beeper,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	if err := f.proc.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return f
}

// place puts the ball at pos heading in dir.
func (f *fixture) place(pos, dir core.Vec2) {
	f.proc.ball.pos = pos
	f.proc.ball.dir = dir
}
