package world

import (
	"errors"
	"fmt"
)

// Tag is the raw one-character tile tag stored in a grid
type Tag byte

const (
	// TagEmpty marks traversable space
	TagEmpty Tag = '.'
	// TagStart marks the start tile in map files; it is stored as TagEmpty
	TagStart Tag = '+'
)

// ErrOutOfBounds is matched by every out-of-range grid access error
var ErrOutOfBounds = errors.New("grid index out of bounds")

// OutOfBoundsError reports the offending index and the grid size
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid index (%d, %d) outside %dx%d", e.X, e.Y, e.Width, e.Height)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// Grid is a fixed row-major tile array. It is never mutated after creation.
type Grid struct {
	width  int
	height int
	tags   []Tag
}

// NewGrid builds a grid from equally long rows of tags
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("grid has no tiles")
	}

	width := len(rows[0])
	tags := make([]Tag, 0, width*len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has inconsistent width: expected %d, got %d", i+1, width, len(row))
		}
		for j := 0; j < len(row); j++ {
			tags = append(tags, Tag(row[j]))
		}
	}

	return &Grid{width: width, height: len(rows), tags: tags}, nil
}

// MustNewGrid is NewGrid that panics on malformed rows
func MustNewGrid(rows ...string) *Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a tile
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Tag returns the tag at (x, y)
func (g *Grid) Tag(x, y int) (Tag, error) {
	if !g.InBounds(x, y) {
		return 0, &OutOfBoundsError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	return g.tags[x+y*g.width], nil
}

// IsSolid reports whether the tile at (x, y) blocks rays and movement
func (g *Grid) IsSolid(x, y int) (bool, error) {
	tag, err := g.Tag(x, y)
	if err != nil {
		return false, err
	}
	return tag != TagEmpty, nil
}
