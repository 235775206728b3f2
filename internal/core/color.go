package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Colors painted by the game. Scores are blue, everything else uses the
// terminal default.
const (
	ColorDefault Color = iota
	ColorBlue
)
