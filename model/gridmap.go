package model

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMap   = errors.New("map has no cells")
	ErrRaggedMap  = errors.New("map rows have different lengths")
	ErrBadCell    = errors.New("invalid map cell")
	ErrSolidSpawn = errors.New("spawn position is inside a solid cell")
)

// Orientation is the wall orientation tag carried by a solid cell.
type Orientation byte

const (
	Vertical   Orientation = 'v'
	Horizontal Orientation = 'h'
	Corner     Orientation = 'c'
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Corner:
		return "corner"
	}
	return fmt.Sprintf("Orientation(%d)", byte(o))
}

// Cell describes one grid square.
type Cell struct {
	Solid       bool
	TextureID   int
	Orientation Orientation
}

// IVec2 is an integer grid index.
type IVec2 struct {
	X, Y int
}

// Grid is the read-only query surface used by the intersector and the camera.
type Grid interface {
	// IsSolid reports whether the cell is occupied. Out of bounds cells are solid.
	IsSolid(x, y int) bool
	// CellAt returns the descriptor of an in-bounds cell.
	CellAt(x, y int) Cell
	Width() int
	Height() int
}

// GridMap is an immutable row-major occupancy grid.
type GridMap struct {
	width  int
	height int
	cells  []Cell
}

// NewGridMap builds a map from rows of cells, rows[y][x].
func NewGridMap(rows [][]Cell) (*GridMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}

	width := len(rows[0])
	m := &GridMap{
		width:  width,
		height: len(rows),
		cells:  make([]Cell, 0, width*len(rows)),
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), width, ErrRaggedMap)
		}
		m.cells = append(m.cells, row...)
	}

	return m, nil
}

func (m *GridMap) Width() int  { return m.width }
func (m *GridMap) Height() int { return m.height }

// Contains reports whether (x, y) lies inside the grid.
func (m *GridMap) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

func (m *GridMap) IsSolid(x, y int) bool {
	if !m.Contains(x, y) {
		return true
	}
	return m.cells[y*m.width+x].Solid
}

// CellAt returns the zero Cell for out of bounds coordinates.
func (m *GridMap) CellAt(x, y int) Cell {
	if !m.Contains(x, y) {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}
