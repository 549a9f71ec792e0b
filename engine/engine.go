package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/e6quisitory/wolf3d-clone/logger"
	"github.com/e6quisitory/wolf3d-clone/model"
)

// DefaultIdleSleep is how long Run waits when nothing needs redrawing.
const DefaultIdleSleep = 60 * time.Millisecond

// Presenter is a display backend. Poll returns the current input snapshot
// and whether the user asked to quit.
type Presenter interface {
	Poll() (in model.Input, quit bool)
	Present(frame *Image) error
}

// Resizer is implemented by presenters whose output size can change while
// running. Resized reports the new frame size once per change.
type Resizer interface {
	Resized() (width, height int, ok bool)
}

type Options struct {
	Width     int
	Height    int
	Controls  model.Controls
	IdleSleep time.Duration
}

// Engine owns one frame buffer and redraws it only when the view changes.
type Engine struct {
	grid      model.Grid
	camera    *model.Camera
	projector *Projector
	frame     *Image
	controls  model.Controls
	idleSleep time.Duration

	dirty  bool
	frames uint64
}

func New(grid model.Grid, camera *model.Camera, projector *Projector, opts Options) *Engine {
	if opts.IdleSleep <= 0 {
		opts.IdleSleep = DefaultIdleSleep
	}
	return &Engine{
		grid:      grid,
		camera:    camera,
		projector: projector,
		frame:     NewImage(opts.Width, opts.Height),
		controls:  opts.Controls,
		idleSleep: opts.IdleSleep,
		dirty:     true,
	}
}

func (e *Engine) Camera() *model.Camera    { return e.camera }
func (e *Engine) Grid() model.Grid         { return e.grid }
func (e *Engine) Projector() *Projector    { return e.projector }
func (e *Engine) Frame() *Image            { return e.frame }
func (e *Engine) Dirty() bool              { return e.dirty }
func (e *Engine) Frames() uint64           { return e.frames }
func (e *Engine) Controls() model.Controls { return e.controls }

// Invalidate forces the next Step to report a redraw.
func (e *Engine) Invalidate() { e.dirty = true }

// Resize replaces the frame buffer when the size changes.
func (e *Engine) Resize(width, height int) {
	if width == e.frame.Width() && height == e.frame.Height() {
		return
	}
	e.frame = NewImage(width, height)
	e.dirty = true
}

// Step applies one input snapshot to the camera and reports whether the
// frame needs redrawing.
func (e *Engine) Step(in model.Input) bool {
	if e.camera.Apply(in, e.controls) {
		e.dirty = true
	}
	return e.dirty
}

// Render draws the current view into the frame buffer.
func (e *Engine) Render() *Image {
	e.projector.Render(e.frame, e.camera, e.grid)
	e.dirty = false
	e.frames++
	return e.frame
}

// Reset moves the camera back to its spawn.
func (e *Engine) Reset() {
	e.camera.Reset()
	e.dirty = true
}

// Run polls p, renders changed frames and presents them until p reports
// quit or ctx is done.
func (e *Engine) Run(ctx context.Context, p Presenter) error {
	logger.Debug("engine loop started",
		zap.Int("width", e.frame.Width()),
		zap.Int("height", e.frame.Height()),
		zap.Duration("idle_sleep", e.idleSleep))

	timer := time.NewTimer(e.idleSleep)
	defer timer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		in, quit := p.Poll()
		if quit {
			logger.Debug("engine loop stopped", zap.Uint64("frames", e.frames))
			return nil
		}
		if r, ok := p.(Resizer); ok {
			if width, height, changed := r.Resized(); changed {
				logger.Debug("frame resized", zap.Int("width", width), zap.Int("height", height))
				e.Resize(width, height)
				e.Invalidate()
			}
		}

		if e.Step(in) {
			if err := p.Present(e.Render()); err != nil {
				return fmt.Errorf("presenting frame %d: %w", e.frames, err)
			}
			continue
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(e.idleSleep)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}
