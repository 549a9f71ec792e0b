// Package terminal presents frames in a text terminal using half-block cells,
// two frame rows per character row.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/e6quisitory/wolf3d-clone/engine"
	"github.com/e6quisitory/wolf3d-clone/logger"
	"github.com/e6quisitory/wolf3d-clone/model"
)

const upperHalfBlock = '▀'

// Terminal is an engine.Presenter backed by a tcell screen. Terminals report
// key presses rather than held keys, so each Poll reflects the keys pressed
// since the previous one.
type Terminal struct {
	screen  tcell.Screen
	resized bool
}

// New takes over the controlling terminal.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen initializes and wraps an existing screen.
func NewWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	logger.Info("terminal opened", zap.Int("cols", cols), zap.Int("rows", rows))

	return &Terminal{screen: screen}, nil
}

// Size returns the frame size that maps one pixel to each half cell.
func (t *Terminal) Size() (width, height int) {
	cols, rows := t.screen.Size()
	return cols, rows * 2
}

// Resized reports the frame size after the terminal changed size since the
// last call.
func (t *Terminal) Resized() (width, height int, ok bool) {
	if !t.resized {
		return 0, 0, false
	}
	t.resized = false
	width, height = t.Size()
	return width, height, true
}

// Poll drains pending events without blocking.
func (t *Terminal) Poll() (model.Input, bool) {
	var in model.Input
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return model.Input{}, true
			case tcell.KeyUp:
				in.Forward = true
			case tcell.KeyDown:
				in.Back = true
			case tcell.KeyLeft:
				in.TurnLeft = true
			case tcell.KeyRight:
				in.TurnRight = true
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'w', 'W':
					in.Forward = true
				case 's', 'S':
					in.Back = true
				case 'a', 'A':
					in.StrafeLeft = true
				case 'd', 'D':
					in.StrafeRight = true
				case 'q', 'Q':
					return model.Input{}, true
				}
			}
		case *tcell.EventResize:
			t.screen.Sync()
			t.resized = true
		case nil:
			return in, true
		}
	}
	return in, false
}

// Present scales frame onto the screen, one column per cell and two rows per
// cell.
func (t *Terminal) Present(frame *engine.Image) error {
	cols, rows := t.screen.Size()
	fw, fh := frame.Width(), frame.Height()
	if cols == 0 || rows == 0 || fw == 0 || fh == 0 {
		return nil
	}

	for cy := 0; cy < rows; cy++ {
		topY := (2 * cy) * fh / (2 * rows)
		bottomY := (2*cy + 1) * fh / (2 * rows)
		for cx := 0; cx < cols; cx++ {
			fx := cx * fw / cols
			style := tcell.StyleDefault.
				Foreground(cellColor(frame.At(fx, topY))).
				Background(cellColor(frame.At(fx, bottomY)))
			t.screen.SetContent(cx, cy, upperHalfBlock, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

func cellColor(argb uint32) tcell.Color {
	c := engine.Color(argb)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *Terminal) Close() {
	t.screen.Fini()
	logger.Info("terminal closed")
}
