package vettura

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/vettura-project/vettura/pkg/vettura/constants"
	"github.com/vettura-project/vettura/pkg/vettura/internal"
)

// MainWindow is the single top-level surface: theme background, brand
// mark, and a localized status line. It subscribes to the dispatcher
// as an event filter so cross-cutting input (global gestures,
// dev-mode shortcuts) works regardless of which widget has focus.
type MainWindow struct {
	app       *App
	win       *internal.Window
	gestures  internal.GestureTracker
	textCache *internal.TextTextureCache
	padding   internal.Padding
	logo      *sdl.Texture

	// Construction-time strings, localized through the catalog
	title      string
	statusLine string
}

func newMainWindow(app *App) (*MainWindow, error) {
	win := internal.GetWindow()
	if win == nil {
		return nil, NewStartupError("window", errors.New("sdl window not initialized"))
	}

	c := app.Catalog()
	w := &MainWindow{
		app:        app,
		win:        win,
		gestures:   internal.NewGestureTracker(),
		textCache:  internal.NewTextTextureCache(),
		padding:    internal.UniformPadding(48),
		title:      c.T("MainTitle", "vettura"),
		statusLine: constants.Vehicle + "  " + c.T("StatusReady", "Ready to drive"),
	}

	logo, err := internal.BrandLogoTexture(win.Renderer, 256, 256)
	if err != nil {
		internal.GetLogger().Warn("brand logo unavailable", "error", err)
	} else {
		w.logo = logo
	}

	return w, nil
}

// FilterEvent gives the window first look at every dispatched event.
func (w *MainWindow) FilterEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.TouchFingerEvent:
		switch e.Type {
		case sdl.FINGERDOWN:
			w.gestures.Begin(e.X, e.Y)
		case sdl.FINGERUP:
			fromTop := w.gestures.BeganAtTopEdge()
			g := w.gestures.End(e.X, e.Y)
			if g == internal.GestureSwipeDown && fromTop {
				// The status sheet the pull-down opens lives outside
				// the bootstrap; consume the stroke so focused
				// widgets never see it
				internal.GetLogger().Info("top edge pull-down")
				return true
			}
		}
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE && constants.IsDevMode() {
			w.app.Dispatcher().Quit(0)
			return true
		}
	}
	return false
}

// Render draws one frame of the idle surface.
func (w *MainWindow) Render() {
	theme := internal.GetTheme()
	r := w.win.Renderer

	r.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, theme.BackgroundColor.A)
	r.Clear()
	w.win.RenderBackground()

	content := w.padding.Inset(sdl.Rect{X: 0, Y: 0, W: w.win.GetWidth(), H: w.win.GetHeight()})

	if w.logo != nil {
		logoSize := int32(256)
		r.Copy(w.logo, nil, &sdl.Rect{
			X: content.X + (content.W-logoSize)/2,
			Y: content.Y + content.H/4 - logoSize/2,
			W: logoSize,
			H: logoSize,
		})
	}

	w.drawCentered(w.title, internal.TitleFontSize, theme.TextColor, content.Y+content.H*5/8)
	w.drawCentered(w.statusLine, internal.BodyFontSize, theme.HintColor, content.Y+content.H*3/4)
}

func (w *MainWindow) drawCentered(text string, size int, color sdl.Color, y int32) {
	font := internal.GetFont(size)
	if font == nil || text == "" {
		return
	}

	key := fmt.Sprintf("%d|%08x|%s", size, colorKey(color), text)
	texture, tw, th, ok := w.textCache.Lookup(key)
	if !ok {
		t, width, height, err := internal.RenderText(w.win.Renderer, font, text, color)
		if err != nil {
			internal.GetLogger().Error("text render failed", "text", text, "error", err)
			return
		}
		w.textCache.Store(key, t, width, height)
		texture, tw, th = t, width, height
	}

	w.win.Renderer.Copy(texture, nil, &sdl.Rect{
		X: (w.win.GetWidth() - tw) / 2,
		Y: y,
		W: tw,
		H: th,
	})
}

func colorKey(c sdl.Color) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Destroy releases the window's textures. The underlying SDL window
// is owned by the internal package and torn down in Cleanup.
func (w *MainWindow) Destroy() {
	w.textCache.Destroy()
	if w.logo != nil {
		w.logo.Destroy()
		w.logo = nil
	}
}
