package shape

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Resource names of the built-in shapes.
const (
	BallName  = "Ball"
	PlankName = "Plank"
)

//go:embed assets/*.txt
var embedded embed.FS

// Loader resolves named shape resources. Resources are read from Dir when
// it is set, otherwise from the images compiled into the binary.
type Loader struct {
	fsys fs.FS
	src  string
}

// NewLoader creates a loader. An empty dir selects the embedded images.
func NewLoader(dir string) *Loader {
	if dir == "" {
		sub, _ := fs.Sub(embedded, "assets") //nolint:errcheck // static path
		return &Loader{fsys: sub, src: "embedded"}
	}
	return &Loader{fsys: os.DirFS(dir), src: dir}
}

// NewLoaderFS creates a loader over an arbitrary filesystem.
func NewLoaderFS(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, src: "fs"}
}

// Source describes where resources come from, for diagnostics.
func (l *Loader) Source() string {
	return l.src
}

// Load reads and parses the resource "<name>.txt".
func (l *Loader) Load(name string) (*Shape, error) {
	f, err := l.fsys.Open(name + ".txt")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("shape %s (%s): %w", name, l.src, ErrShapeNotFound)
		}
		return nil, fmt.Errorf("shape %s (%s): %w", name, l.src, err)
	}
	defer f.Close()

	return Parse(name, f)
}

// Ball loads the ball image.
func (l *Loader) Ball() (*Shape, error) {
	return l.Load(BallName)
}

// Plank loads the paddle image.
func (l *Loader) Plank() (*Shape, error) {
	return l.Load(PlankName)
}
