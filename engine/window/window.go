// Package window presents frames in an SDL2 window through a streaming texture.
package window

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/e6quisitory/wolf3d-clone/engine"
	"github.com/e6quisitory/wolf3d-clone/logger"
	"github.com/e6quisitory/wolf3d-clone/model"
)

func init() {
	// SDL video calls must stay on the main thread
	runtime.LockOSThread()
}

type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window is an engine.Presenter backed by SDL2.
type Window struct {
	config   Config
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	texW     int
	texH     int
}

// New opens a window of the configured size.
func New(cfg Config) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")

	flags := uint32(sdl.WINDOW_SHOWN)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	w := &Window{config: cfg}

	var err error
	w.window, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rendererFlags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.window, -1, rendererFlags)
	if err != nil {
		w.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Poll drains pending events and samples the keyboard.
func (w *Window) Poll() (model.Input, bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			return model.Input{}, true
		}
	}

	keys := sdl.GetKeyboardState()
	pressed := func(code sdl.Scancode) bool { return keys[code] != 0 }

	if pressed(sdl.SCANCODE_ESCAPE) {
		return model.Input{}, true
	}

	return model.Input{
		Forward:     pressed(sdl.SCANCODE_W),
		Back:        pressed(sdl.SCANCODE_S),
		StrafeLeft:  pressed(sdl.SCANCODE_A),
		StrafeRight: pressed(sdl.SCANCODE_D),
		TurnLeft:    pressed(sdl.SCANCODE_LEFT),
		TurnRight:   pressed(sdl.SCANCODE_RIGHT),
	}, false
}

// Present uploads frame into the streaming texture and shows it scaled to
// the window.
func (w *Window) Present(frame *engine.Image) error {
	pixels := frame.Pixels()
	if len(pixels) == 0 {
		return nil
	}

	if err := w.ensureTexture(frame.Width(), frame.Height()); err != nil {
		return err
	}
	if err := w.texture.Update(nil, unsafe.Pointer(&pixels[0]), frame.Width()*4); err != nil {
		return fmt.Errorf("SDL_UpdateTexture failed: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("SDL_RenderCopy failed: %w", err)
	}
	w.renderer.Present()
	return nil
}

func (w *Window) ensureTexture(width, height int) error {
	if w.texture != nil && w.texW == width && w.texH == height {
		return nil
	}
	if w.texture != nil {
		w.texture.Destroy()
	}

	tex, err := w.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888), int(sdl.TEXTUREACCESS_STREAMING), int32(width), int32(height))
	if err != nil {
		return fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}
	w.texture, w.texW, w.texH = tex, width, height
	logger.Debug("streaming texture created", zap.Int("width", width), zap.Int("height", height))
	return nil
}

func (w *Window) Close() {
	logger.Info("closing window")

	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
}
