// Package shape loads the character images that give entities their
// visual and collision footprint.
package shape

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/console-pong/internal/core"
)

// Blank marks a hole in a shape: it is neither drawn nor collided with.
const Blank = ' '

// Shape load errors.
var (
	ErrEmptyShape     = errors.New("shape: empty image")
	ErrIrregularShape = errors.New("shape: rows differ in width")
	ErrShapeNotFound  = errors.New("shape: resource not found")
)

// Point is one character of a shape, positioned relative to the anchor of
// the entity that owns it.
type Point struct {
	Offset core.Vec2
	Glyph  rune
}

// Solid reports whether the point is drawn and takes part in collisions.
func (p Point) Solid() bool {
	return p.Glyph != Blank
}

// Shape is an immutable, ordered set of points. A single Shape is shared by
// every entity of the same kind.
type Shape struct {
	name   string
	points []Point
	width  int
	height int
}

// New builds a shape from an explicit point list.
func New(name string, points []Point) *Shape {
	s := &Shape{name: name, points: make([]Point, len(points))}
	copy(s.points, points)
	return s
}

// Name returns the resource name the shape was loaded from.
func (s *Shape) Name() string {
	return s.name
}

// Points returns a copy of the shape's points in draw order.
func (s *Shape) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Len returns the number of points, holes included.
func (s *Shape) Len() int {
	return len(s.points)
}

// At returns the i-th point.
func (s *Shape) At(i int) Point {
	return s.points[i]
}

// SolidCount returns the number of solid points.
func (s *Shape) SolidCount() int {
	n := 0
	for _, p := range s.points {
		if p.Solid() {
			n++
		}
	}
	return n
}

// Size returns the dimensions of the source image. Shapes built with New
// report zero.
func (s *Shape) Size() (width, height int) {
	return s.width, s.height
}

// Parse reads a rectangular character image, one row per line, and centers
// it so that cell (width/2, height/2) lands on offset (0, 0).
func Parse(name string, r io.Reader) (*Shape, error) {
	var rows [][]rune
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, []rune(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("shape %s: %w", name, err)
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("shape %s: %w", name, ErrEmptyShape)
	}

	width := len(rows[0])
	height := len(rows)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("shape %s: row %d has %d columns, expected %d: %w",
				name, i, len(row), width, ErrIrregularShape)
		}
	}

	centerX := width / 2
	centerY := height / 2

	points := make([]Point, 0, width*height)
	for i, row := range rows {
		for j, glyph := range row {
			points = append(points, Point{
				Offset: core.V(float64(j-centerX), float64(i-centerY)),
				Glyph:  glyph,
			})
		}
	}

	return &Shape{
		name:   name,
		points: points,
		width:  width,
		height: height,
	}, nil
}

// String renders the shape back into its image form.
func (s *Shape) String() string {
	if s.width == 0 || s.height == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow((s.width + 1) * s.height * utf8.UTFMax)
	for i, p := range s.points {
		if i > 0 && i%s.width == 0 {
			sb.WriteRune('\n')
		}
		sb.WriteRune(p.Glyph)
	}
	return sb.String()
}
