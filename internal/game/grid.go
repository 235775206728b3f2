package game

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned for grids with non-positive dimensions.
var ErrInvalidGrid = errors.New("game: grid dimensions must be positive")

// Grid describes the playfield. Positions inside [0, Width] x [0, Height]
// are on the field; anything beyond is off-screen.
type Grid struct {
	Width  int
	Height int
	Border rune
}

// NewGrid creates a grid, rejecting non-positive dimensions.
func NewGrid(width, height int, border rune) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, width, height)
	}
	return Grid{Width: width, Height: height, Border: border}, nil
}

// CenterX returns the horizontal center column (integer half width).
func (g Grid) CenterX() int {
	return g.Width / 2
}

// CenterY returns the vertical center row (integer half height).
func (g Grid) CenterY() int {
	return g.Height / 2
}
