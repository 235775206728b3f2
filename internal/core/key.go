package core

// Key is an opaque platform key code. The simulation only compares codes,
// the platform layer decides how physical keys map onto them.
type Key int

// Virtual-key codes for the default paddle bindings.
const (
	KeyNone Key = 0
	KeyUp   Key = 38
	KeyDown Key = 40
	KeyS    Key = 83
	KeyW    Key = 87
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyS:
		return "S"
	case KeyW:
		return "W"
	case KeyNone:
		return "None"
	default:
		return "Unknown"
	}
}
