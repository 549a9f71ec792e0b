package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

var ErrZeroFacing = errors.New("camera facing direction is zero")

// DefaultRadius is the collision half-size of the camera body, in cells.
const DefaultRadius = 0.1

// Camera is a viewpoint on a grid. It queries the grid but does not own it.
type Camera struct {
	grid     Grid
	position geom.Vector2
	facing   geom.Vector2
	fov      float64
	radius   float64

	spawnPosition geom.Vector2
	spawnFacing   geom.Vector2
}

// NewCamera places a camera at position looking along facing with a field of
// view of fovDegrees. The spawn cell must be open.
func NewCamera(grid Grid, position, facing geom.Vector2, fovDegrees float64) (*Camera, error) {
	if grid.IsSolid(cellOf(position)) {
		return nil, fmt.Errorf("spawn (%.2f, %.2f): %w", position.X, position.Y, ErrSolidSpawn)
	}
	length := math.Hypot(facing.X, facing.Y)
	if length == 0 {
		return nil, ErrZeroFacing
	}
	facing = geom.Vector2{X: facing.X / length, Y: facing.Y / length}

	return &Camera{
		grid:          grid,
		position:      position,
		facing:        facing,
		fov:           geom.Radians(fovDegrees),
		radius:        DefaultRadius,
		spawnPosition: position,
		spawnFacing:   facing,
	}, nil
}

func (c *Camera) Position() geom.Vector2 { return c.position }
func (c *Camera) Facing() geom.Vector2   { return c.facing }

// FOV returns the field of view in radians.
func (c *Camera) FOV() float64 { return c.fov }

func (c *Camera) Radius() float64 { return c.radius }

// SetRadius sets the collision margin used by MoveX and MoveY.
func (c *Camera) SetRadius(radius float64) {
	c.radius = geom.Clamp(radius, 0, 0.49)
}

// Right is the camera-relative right axis.
func (c *Camera) Right() geom.Vector2 {
	return geom.Vector2{X: -c.facing.Y, Y: c.facing.X}
}

// AngleOffset returns the rotation applied to the facing vector for a column
// at fraction f of the screen width.
func (c *Camera) AngleOffset(f float64) float64 {
	return -c.fov/2 + f*c.fov
}

// Ray returns the ray for a column at fraction f in [0, 1] of the screen width.
func (c *Camera) Ray(f float64) Ray {
	return NewRay(c.position, rotate(c.facing, c.AngleOffset(f)))
}

// MoveX moves the camera delta cells along its right axis. The move is
// committed only if the camera body stays clear of solid cells.
func (c *Camera) MoveX(delta float64) bool {
	right := c.Right()
	return c.moveTo(geom.Vector2{
		X: c.position.X + right.X*delta,
		Y: c.position.Y + right.Y*delta,
	})
}

// MoveY moves the camera delta cells along its facing direction.
func (c *Camera) MoveY(delta float64) bool {
	return c.moveTo(geom.Vector2{
		X: c.position.X + c.facing.X*delta,
		Y: c.position.Y + c.facing.Y*delta,
	})
}

// Swivel turns the camera by angle radians. Positive angles turn right.
func (c *Camera) Swivel(angle float64) bool {
	f := rotate(c.facing, angle)
	length := math.Hypot(f.X, f.Y)
	c.facing = geom.Vector2{X: f.X / length, Y: f.Y / length}
	return true
}

// Reset returns the camera to where it was created.
func (c *Camera) Reset() {
	c.position = c.spawnPosition
	c.facing = c.spawnFacing
}

func (c *Camera) moveTo(dest geom.Vector2) bool {
	if dest == c.position || c.blocked(dest) {
		return false
	}
	c.position = dest
	return true
}

func (c *Camera) blocked(p geom.Vector2) bool {
	if c.grid.IsSolid(cellOf(p)) {
		return true
	}
	r := c.radius
	for _, corner := range [4][2]float64{{-r, -r}, {r, -r}, {-r, r}, {r, r}} {
		if c.grid.IsSolid(cellOf(geom.Vector2{X: p.X + corner[0], Y: p.Y + corner[1]})) {
			return true
		}
	}
	return false
}

func cellOf(p geom.Vector2) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

func rotate(v geom.Vector2, angle float64) geom.Vector2 {
	sin, cos := math.Sincos(angle)
	return geom.Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
