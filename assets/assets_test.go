package assets

import (
	"bytes"
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/e6quisitory/wolf3d-clone/config"
	"github.com/e6quisitory/wolf3d-clone/model"
)

func TestDefaultMap(t *testing.T) {
	grid, err := model.ParseMap(bytes.NewReader(DefaultMap))
	if err != nil {
		t.Fatalf("ParseMap() error = %v", err)
	}
	if grid.Width() != 16 || grid.Height() != 16 {
		t.Errorf("expected 16x16 map, got %dx%d", grid.Width(), grid.Height())
	}

	// the outer ring is closed
	for i := 0; i < 16; i++ {
		for _, c := range [][2]int{{i, 0}, {i, 15}, {0, i}, {15, i}} {
			if !grid.IsSolid(c[0], c[1]) {
				t.Errorf("expected border cell %v to be solid", c)
			}
		}
	}

	cfg := config.Default()
	cam, err := model.NewCamera(grid,
		geom.Vector2{X: cfg.Camera.X, Y: cfg.Camera.Y},
		geom.Vector2{X: cfg.Camera.FacingX, Y: cfg.Camera.FacingY},
		cfg.Camera.FOV)
	if err != nil {
		t.Fatalf("default spawn rejected: %v", err)
	}

	for _, f := range []float64{0, 0.5, 1} {
		hit := model.Cast(grid, cam.Ray(f))
		if !hit.Hit {
			t.Errorf("ray at %v escaped the map", f)
		}
	}
}
