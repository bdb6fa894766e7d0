package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// SetSurfaceFormat sets the GL attributes inherited by every
// rendering context created afterwards: 8-bit RGBA color with double
// buffering, plus depth and stencil planes for the map layers.
// Must run before any window or context exists.
func SetSurfaceFormat() {
	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)
}

// EnableSharedGLContexts lets newly created GL contexts share
// textures with the current one. The Strada windowing stack needs
// shared contexts to avoid duplicating GPU resources between the UI
// and the camera compositor.
func EnableSharedGLContexts() {
	sdl.GLSetAttribute(sdl.GL_SHARE_WITH_CURRENT_CONTEXT, 1)
}

// Init brings up the SDL subsystems, the window and renderer, fonts,
// and the hardware power button watcher. Must be called once, on the
// main thread, after SetSurfaceFormat.
func Init(title string, winOpts WindowOptions, pbc PowerButtonConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	w, err := initWindow(title, winOpts)
	if err != nil {
		return err
	}
	window = w

	if err := initFonts(DefaultFontSizes); err != nil {
		// Text rendering degrades to nothing; the window itself still works
		GetLogger().Error("failed to load UI fonts", "path", GetTheme().FontPath, "error", err)
	}

	if pbc.DevicePath != "" {
		window.initPowerButtonHandling(pbc)
	}

	return nil
}

// Cleanup releases all SDL resources. Must be called before exit.
func Cleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	closeFonts()
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
