package vettura

import (
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/text/language"

	"github.com/vettura-project/vettura/pkg/vettura/constants"
	"github.com/vettura-project/vettura/pkg/vettura/hardware"
	"github.com/vettura-project/vettura/pkg/vettura/i18n"
	"github.com/vettura-project/vettura/pkg/vettura/internal"
	"github.com/vettura-project/vettura/pkg/vettura/netsec"
)

// sdlBackend is the production backend: real SDL, real filesystem.
type sdlBackend struct{}

func (*sdlBackend) SetSurfaceFormat() {
	internal.SetSurfaceFormat()
}

func (*sdlBackend) EnableSharedGLContexts() {
	internal.EnableSharedGLContexts()
}

func (*sdlBackend) LoadTrustBundle(path string) (*netsec.TrustConfig, error) {
	return netsec.LoadTrustBundle(path)
}

func (*sdlBackend) InitApplication(opts Options, profile hardware.Profile) error {
	internal.SetTheme(internal.NightTheme(constants.FontPath, constants.BackgroundImagePath))

	pbc := internal.PowerButtonConfig{}
	if profile.IsStrada() && !constants.IsDevMode() {
		pbc = internal.PowerButtonConfig{
			DevicePath:          constants.PowerButtonDevice,
			ButtonCode:          constants.PowerButtonCode,
			ShortPressMax:       constants.PowerShortPressMax,
			CoolDownTime:        constants.PowerCoolDownTime,
			DisplayToggleScript: constants.DisplayToggleScript,
			ShutdownCommand:     constants.PowerShutdownCommand,
		}
	}

	winOpts := opts.Window
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = internal.WindowOptions{Resizable: true}
		} else {
			winOpts = internal.WindowOptions{Fullscreen: true, Borderless: true}
		}
	}

	if err := internal.Init(opts.Title, winOpts, pbc); err != nil {
		return NewStartupError("init", err)
	}
	return nil
}

func (*sdlBackend) LoadCatalog(name, dir string, locale language.Tag) (*i18n.Catalog, error) {
	return i18n.Load(name, dir, locale)
}

func (*sdlBackend) NewMainWindow(app *App) (Surface, error) {
	return newMainWindow(app)
}

// Exec is the event loop: it blocks draining and dispatching events
// and rendering frames until quit is requested, then returns the
// requested exit code.
func (*sdlBackend) Exec(app *App, w Surface) int {
	d := app.Dispatcher()
	d.SetHandler(func(event sdl.Event) {
		if _, ok := event.(*sdl.QuitEvent); ok {
			d.Quit(0)
		}
	})

	win := internal.GetWindow()
	for !d.Quitting() {
		if event := sdl.WaitEventTimeout(16); event != nil {
			d.Dispatch(event)
			for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
				d.Dispatch(ev)
			}
		}

		w.Render()
		win.Present()
	}

	return d.ExitCode()
}

func (*sdlBackend) Shutdown() {
	internal.Cleanup()
}
