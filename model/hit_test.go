package model

import (
	"math"
	"math/rand"
	"testing"

	"github.com/harbdog/raycaster-go/geom"
)

const epsilon = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < epsilon }

// openGrid never reports a solid cell, so only the step cap can stop a ray.
type openGrid struct{}

func (openGrid) IsSolid(x, y int) bool { return false }
func (openGrid) CellAt(x, y int) Cell  { return Cell{} }
func (openGrid) Width() int            { return 8 }
func (openGrid) Height() int           { return 8 }

func TestCastAxisAligned(t *testing.T) {
	rows := make([][]Cell, 3)
	for y := range rows {
		rows[y] = make([]Cell, 6)
	}
	rows[0][3] = Cell{Solid: true, TextureID: 5, Orientation: Horizontal}
	m, err := NewGridMap(rows)
	if err != nil {
		t.Fatal(err)
	}

	hit := Cast(m, NewRay(geom.Vector2{X: 0.5, Y: 0.5}, geom.Vector2{X: 1, Y: 0}))
	if !hit.Hit {
		t.Fatal("Cast() missed")
	}
	if !approx(hit.Distance, 2.5) {
		t.Errorf("Distance = %v, want 2.5", hit.Distance)
	}
	if !approx(hit.WidthPercent, 0.5) {
		t.Errorf("WidthPercent = %v, want 0.5", hit.WidthPercent)
	}
	if hit.TextureID != 5 || hit.Orientation != Horizontal {
		t.Errorf("texture = %d %v, want 5 horizontal", hit.TextureID, hit.Orientation)
	}
	if hit.Cell != (IVec2{X: 3, Y: 0}) || hit.Side != AxisX {
		t.Errorf("cell = %v side %v, want {3 0} side x", hit.Cell, hit.Side)
	}
}

func TestCastDistanceIsEuclidean(t *testing.T) {
	m := borderMap(t, 5, 5, 1)

	tests := []struct {
		name   string
		origin geom.Vector2
		dir    geom.Vector2
		want   float64
	}{
		{"unit", geom.Vector2{X: 2.5, Y: 2.5}, geom.Vector2{X: 1, Y: 0}, 1.5},
		{"scaled", geom.Vector2{X: 2.5, Y: 2.5}, geom.Vector2{X: 3, Y: 0}, 1.5},
		{"diagonal", geom.Vector2{X: 2.5, Y: 2.5}, geom.Vector2{X: 1, Y: 1}, 1.5 * math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := Cast(m, NewRay(tt.origin, tt.dir))
			if !hit.Hit || !approx(hit.Distance, tt.want) {
				t.Errorf("Cast() = %v %v, want hit at %v", hit.Hit, hit.Distance, tt.want)
			}
		})
	}
}

func TestCastZeroComponent(t *testing.T) {
	m := borderMap(t, 5, 5, 2)

	hit := Cast(m, NewRay(geom.Vector2{X: 1.25, Y: 1.5}, geom.Vector2{X: 0, Y: 1}))
	if !hit.Hit {
		t.Fatal("Cast() missed")
	}
	if !approx(hit.Distance, 2.5) {
		t.Errorf("Distance = %v, want 2.5", hit.Distance)
	}
	if hit.Side != AxisY || hit.Cell != (IVec2{X: 1, Y: 4}) {
		t.Errorf("side %v cell %v, want y {1 4}", hit.Side, hit.Cell)
	}
	// approaching from +y mirrors the face coordinate
	if !approx(hit.WidthPercent, 0.75) {
		t.Errorf("WidthPercent = %v, want 0.75", hit.WidthPercent)
	}

	hit = Cast(m, NewRay(geom.Vector2{X: 2.25, Y: 2.25}, geom.Vector2{X: -1, Y: 0}))
	if !hit.Hit || !approx(hit.Distance, 1.25) {
		t.Errorf("Cast(-x) = %v %v, want hit at 1.25", hit.Hit, hit.Distance)
	}
	if !approx(hit.WidthPercent, 0.75) {
		t.Errorf("WidthPercent = %v, want 0.75", hit.WidthPercent)
	}
}

func TestCastDegenerate(t *testing.T) {
	m := borderMap(t, 5, 5, 1)
	hit := Cast(m, NewRay(geom.Vector2{X: 2.5, Y: 2.5}, geom.Vector2{}))
	if hit.Hit {
		t.Errorf("Cast(zero direction) = %+v, want no hit", hit)
	}
}

func TestCastStepCap(t *testing.T) {
	hit := Cast(openGrid{}, NewRay(geom.Vector2{X: 0.5, Y: 0.5}, geom.Vector2{X: 0.3, Y: 0.7}))
	if hit.Hit {
		t.Errorf("Cast() on an open grid = %+v, want no hit", hit)
	}
}

func TestCastRandomRaysTerminate(t *testing.T) {
	m := borderMap(t, 12, 9, 4)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		origin := geom.Vector2{X: 1 + rng.Float64()*10, Y: 1 + rng.Float64()*7}
		angle := rng.Float64() * 2 * math.Pi
		dir := geom.Vector2{X: math.Cos(angle), Y: math.Sin(angle)}
		if i%10 == 0 {
			dir.X = 0
		}

		hit := Cast(m, NewRay(origin, dir))
		if !hit.Hit {
			t.Fatalf("ray %d from %v along %v missed", i, origin, dir)
		}
		if hit.Distance < 0 {
			t.Errorf("ray %d: Distance = %v, want >= 0", i, hit.Distance)
		}
		if hit.WidthPercent < 0 || hit.WidthPercent >= 1 {
			t.Errorf("ray %d: WidthPercent = %v, want [0, 1)", i, hit.WidthPercent)
		}
		if hit.TextureID != 4 {
			t.Errorf("ray %d: TextureID = %d, want 4", i, hit.TextureID)
		}
		if !m.IsSolid(hit.Cell.X, hit.Cell.Y) {
			t.Errorf("ray %d: hit cell %v is open", i, hit.Cell)
		}
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(geom.Vector2{X: 1, Y: 2}, geom.Vector2{X: 0.5, Y: -1})
	got := r.At(2)
	if got.X != 2 || got.Y != 0 {
		t.Errorf("At(2) = %v, want {2 0}", got)
	}
}
