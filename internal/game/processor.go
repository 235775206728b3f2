// Package game implements the Pong simulation: entities, pixel-level
// collisions, scoring and the per-tick render contract.
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/console-pong/internal/core"
)

// Playfield and layout constants.
const (
	Title        = "Console Pong"
	GridWidth    = 100
	GridHeight   = 35
	BorderGlyph  = '#'
	PlankInset   = 5 // distance of each paddle from its edge
	CenterGlyph  = '|'
	ScoreOffsetX = 5 // distance of each score from the center line
	ScoreRow     = 1
	ScoreColor   = core.ColorBlue
	LeftUpKey    = core.KeyW
	LeftDownKey  = core.KeyS
	RightUpKey   = core.KeyUp
	RightDownKey = core.KeyDown
)

// ErrAlreadyStarted is returned when Start is called twice.
var ErrAlreadyStarted = errors.New("game: processor already started")

// Score holds the goals of both players.
type Score struct {
	Left  int
	Right int
}

// String formats the score as "left:right".
func (s Score) String() string {
	return strconv.Itoa(s.Left) + ":" + strconv.Itoa(s.Right)
}

// Options configures a Processor. Zero values select harmless defaults:
// an off-screen buffer, no keys held, no sound, a time-seeded RNG and a
// discarding logger. Shapes is required.
type Options struct {
	Shapes   ShapeSource
	Renderer Renderer
	Input    InputProvider
	Beeper   Beeper
	Rand     *rand.Rand
	Logger   *log.Logger
}

// Processor owns the grid, the entities and the score, and advances them
// one tick at a time. It is not safe for concurrent use.
type Processor struct {
	shapes   ShapeSource
	renderer Renderer
	beeper   Beeper
	rng      *rand.Rand
	log      *log.Logger

	grid     Grid
	ball     *Ball
	left     *Plank
	right    *Plank
	entities []Entity
	world    World
	score    Score
	ticks    uint64

	started bool
	stopped bool
}

// NewProcessor creates an idle processor. Call Start before Update.
func NewProcessor(opts Options) *Processor {
	p := &Processor{
		shapes:   opts.Shapes,
		renderer: opts.Renderer,
		beeper:   opts.Beeper,
		rng:      opts.Rand,
		log:      opts.Logger,
	}

	if p.renderer == nil {
		p.renderer = core.NewScreen(GridWidth+1, GridHeight+1)
	}
	if p.beeper == nil {
		p.beeper = silentBeeper{}
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if p.log == nil {
		p.log = log.New(io.Discard)
	}

	input := opts.Input
	if input == nil {
		input = NoInput{}
	}
	p.world = World{Input: input, Rand: p.rng}

	return p
}

// Start builds the playfield, loads the shapes and spawns the ball and both
// paddles. A shape that cannot be loaded is returned as an error.
func (p *Processor) Start() error {
	if p.started {
		return ErrAlreadyStarted
	}
	if p.shapes == nil {
		return errors.New("game: no shape source")
	}

	grid, err := NewGrid(GridWidth, GridHeight, BorderGlyph)
	if err != nil {
		return err
	}

	ballShape, err := p.shapes.Ball()
	if err != nil {
		return fmt.Errorf("game: load ball: %w", err)
	}
	plankShape, err := p.shapes.Plank()
	if err != nil {
		return fmt.Errorf("game: load plank: %w", err)
	}

	p.grid = grid
	p.world.Grid = grid

	cy := float64(grid.CenterY())
	p.ball = NewBall(core.V(float64(grid.CenterX()), cy), ballShape, p.rng)
	p.left = NewPlank(core.V(PlankInset, cy), plankShape, grid.Height, LeftUpKey, LeftDownKey)
	p.right = NewPlank(core.V(float64(grid.Width-PlankInset), cy), plankShape, grid.Height, RightUpKey, RightDownKey)

	p.entities = []Entity{p.ball, p.left, p.right}
	p.started = true

	p.log.Debug("processor started",
		"grid", fmt.Sprintf("%dx%d", grid.Width, grid.Height),
		"ball", p.ball.Position(), "direction", p.ball.Direction())
	return nil
}

// Update runs exactly one tick: clear, collisions, center line, scores,
// then tick and draw every entity in turn.
func (p *Processor) Update() {
	if !p.started || p.stopped {
		return
	}

	p.renderer.Clear()
	p.checkBallCollisions()
	p.drawCenterLine()
	p.drawScores()

	for _, e := range p.entities {
		e.Tick(&p.world)
		p.drawEntity(e)
	}
	p.ticks++
}

// Draw repaints the current state without advancing it.
func (p *Processor) Draw() {
	if !p.started {
		return
	}

	p.renderer.Clear()
	p.drawCenterLine()
	p.drawScores()
	for _, e := range p.entities {
		p.drawEntity(e)
	}
}

// Shutdown destroys every entity. Further updates do nothing.
func (p *Processor) Shutdown() {
	if !p.started || p.stopped {
		return
	}
	for _, e := range p.entities {
		e.Destroy()
	}
	p.stopped = true
	p.log.Info("processor stopped", "score", p.score.String(), "ticks", p.ticks)
}

// Score returns the current score.
func (p *Processor) Score() Score {
	return p.score
}

// Surface returns the render surface size for the fixed playfield.
func Surface() (width, height int) {
	return GridWidth + 1, GridHeight + 1
}

// Grid returns the playfield.
func (p *Processor) Grid() Grid {
	return p.grid
}

// Ball returns the ball, nil before Start.
func (p *Processor) Ball() *Ball {
	return p.ball
}

// Planks returns the left and right paddles, nil before Start.
func (p *Processor) Planks() (left, right *Plank) {
	return p.left, p.right
}

// Entities returns the entities in update order.
func (p *Processor) Entities() []Entity {
	out := make([]Entity, len(p.entities))
	copy(out, p.entities)
	return out
}

// Ticks returns the number of completed updates.
func (p *Processor) Ticks() uint64 {
	return p.ticks
}

// Stopped reports whether Shutdown has run.
func (p *Processor) Stopped() bool {
	return p.stopped
}

// drawCenterLine dashes the middle column on every even row.
func (p *Processor) drawCenterLine() {
	x := p.grid.CenterX()
	for y := 0; y < p.grid.Height; y += 2 {
		p.renderer.DrawChar(x, y, CenterGlyph)
	}
}

func (p *Processor) drawScores() {
	x := p.grid.CenterX()
	p.renderer.DrawColoredString(x-ScoreOffsetX, ScoreRow, strconv.Itoa(p.score.Left), ScoreColor)
	p.renderer.DrawColoredString(x+ScoreOffsetX, ScoreRow, strconv.Itoa(p.score.Right), ScoreColor)
}

// drawEntity paints the solid points of the entity's image. Points off the
// surface are dropped by the renderer one at a time.
func (p *Processor) drawEntity(e Entity) {
	s := e.Shape()
	for i := 0; i < s.Len(); i++ {
		pt := s.At(i)
		if !pt.Solid() {
			continue
		}
		c := cellOf(e, pt)
		p.renderer.DrawChar(c.X, c.Y, pt.Glyph)
	}
}
