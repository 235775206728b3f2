package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/console-pong/internal/core"
)

func TestRandomDirection(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sawLeft, sawRight := false, false

	for i := 0; i < 500; i++ {
		d := RandomDirection(rng)
		if d.X != -1 && d.X != 1 {
			t.Fatalf("RandomDirection().X = %f, expected -1 or 1", d.X)
		}
		if d.Y < -1 || d.Y > 1 {
			t.Fatalf("RandomDirection().Y = %f, expected within [-1, 1]", d.Y)
		}
		if d == (core.Vec2{}) {
			t.Fatal("RandomDirection() returned the zero vector")
		}
		sawLeft = sawLeft || d.X < 0
		sawRight = sawRight || d.X > 0
	}

	if !sawLeft || !sawRight {
		t.Error("RandomDirection() should serve in both directions")
	}
}

func TestBallDeflect(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := NewBall(core.V(10, 10), dot('O'), rng)
		before := b.Direction()

		b.Deflect(rng)
		after := b.Direction()

		if after.X*before.X >= 0 {
			t.Fatalf("seed %d: X sign = %f, expected negation of %f", seed, after.X, before.X)
		}
		if math.Abs(after.X) != math.Abs(before.X) {
			t.Fatalf("seed %d: |X| changed from %f to %f", seed, before.X, after.X)
		}
		if math.Abs(after.Y) < MinDeflection || math.Abs(after.Y) > 1 {
			t.Fatalf("seed %d: Y = %f, expected within [-1, -0.4] or [0.4, 1]", seed, after.Y)
		}
	}
}

func TestBallInvert(t *testing.T) {
	b := NewBall(core.V(0, 0), dot('O'), rand.New(rand.NewSource(1)))
	b.dir = core.V(0.5, -0.75)

	b.InvertVertical()
	if b.Direction() != core.V(0.5, 0.75) {
		t.Errorf("InvertVertical() = %v, expected (0.5, 0.75)", b.Direction())
	}

	b.InvertHorizontal()
	if b.Direction() != core.V(-0.5, 0.75) {
		t.Errorf("InvertHorizontal() = %v, expected (-0.5, 0.75)", b.Direction())
	}
}

func TestBallTick(t *testing.T) {
	b := NewBall(core.V(10, 10), dot('O'), rand.New(rand.NewSource(1)))
	b.dir = core.V(-1, 0.25)

	b.Tick(nil)
	if b.Position() != core.V(9, 10.25) {
		t.Errorf("Position() = %v, expected (9, 10.25)", b.Position())
	}

	b.Destroy()
	b.Tick(nil)
	if b.Position() != core.V(9, 10.25) {
		t.Errorf("destroyed ball moved to %v", b.Position())
	}
	if !b.Destroyed() {
		t.Error("Destroyed() should be true after Destroy")
	}
}
