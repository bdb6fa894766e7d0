// Package vettura implements the startup sequence and event loop of
// the vettura onboard UI, the graphical application running on the
// vehicle's head unit.
package vettura

import (
	"net/http"
	"os"
	"time"

	"golang.org/x/text/language"

	"github.com/vettura-project/vettura/pkg/vettura/config"
	"github.com/vettura-project/vettura/pkg/vettura/constants"
	"github.com/vettura-project/vettura/pkg/vettura/events"
	"github.com/vettura-project/vettura/pkg/vettura/hardware"
	"github.com/vettura-project/vettura/pkg/vettura/i18n"
	"github.com/vettura-project/vettura/pkg/vettura/internal"
	"github.com/vettura-project/vettura/pkg/vettura/netsec"
	"github.com/vettura-project/vettura/pkg/vettura/registry"
)

// Surface is the contract the bootstrap needs from the top-level
// window: it filters every event, renders frames, and releases its
// textures on exit.
type Surface interface {
	events.Filter
	Render()
	Destroy()
}

// App owns the event loop and the process-wide UI state: the
// translation catalog, the trust configuration, the window registry,
// and the event dispatcher. Exactly one App exists per process and it
// lives until exit.
type App struct {
	profile    hardware.Profile
	trust      *netsec.TrustConfig
	catalog    *i18n.Catalog
	dispatcher *events.Dispatcher
	windows    *registry.Registry[Surface]
}

// Profile returns the hardware profile detected at startup.
func (a *App) Profile() hardware.Profile {
	return a.profile
}

// Catalog returns the installed translation catalog.
func (a *App) Catalog() *i18n.Catalog {
	return a.catalog
}

// Dispatcher returns the application's event dispatcher.
func (a *App) Dispatcher() *events.Dispatcher {
	return a.dispatcher
}

// Windows returns the main window registry.
func (a *App) Windows() *registry.Registry[Surface] {
	return a.windows
}

// SetCatalog installs the translation catalog. Must happen before the
// main window is constructed so construction-time strings localize.
func (a *App) SetCatalog(c *i18n.Catalog) {
	a.catalog = c
}

// HTTPClient returns a client for secure connections. On the Strada
// head unit it trusts only the device-local CA bundle.
func (a *App) HTTPClient() *http.Client {
	if a.trust != nil {
		return a.trust.HTTPClient(30 * time.Second)
	}
	return &http.Client{Timeout: 30 * time.Second}
}

// Options configures startup.
type Options struct {
	Title           string
	Locale          language.Tag
	CatalogName     string
	TranslationsDir string
	CertBundle      string
	Window          internal.WindowOptions
}

// DefaultOptions returns the built-in startup settings. The UI ships
// translated to French; the device config file can override.
func DefaultOptions() Options {
	return Options{
		Title:           "vettura",
		Locale:          language.French,
		CatalogName:     constants.CatalogName,
		TranslationsDir: constants.TranslationsDir,
		CertBundle:      constants.CertBundlePath,
	}
}

// Run executes the startup sequence with settings from the device
// config file and blocks in the event loop until exit is requested.
// The returned code is the process exit code.
func Run(args []string) int {
	cfg, cfgErr := config.Load(constants.ConfigPath)
	if cfg.LogPath != "" {
		internal.SetLogPath(cfg.LogPath)
	} else if !constants.IsDevMode() {
		internal.SetLogPath(constants.DefaultLogPath)
	}
	if lvl := os.Getenv(constants.LogLevelEnvVar); lvl != "" {
		internal.SetRawLogLevel(lvl)
	} else if cfg.LogLevel != "" {
		internal.SetRawLogLevel(cfg.LogLevel)
	}

	log := internal.GetLogger()
	if cfgErr != nil {
		log.Warn("ignoring unreadable device config", "path", constants.ConfigPath, "error", cfgErr)
	}
	log.Debug("starting", "args", args)

	opts := DefaultOptions()
	applyConfig(&opts, cfg)

	return run(opts, hardware.Detect(), &sdlBackend{})
}

func applyConfig(opts *Options, cfg config.Config) {
	if cfg.Locale != "" {
		if tag, err := language.Parse(cfg.Locale); err == nil {
			opts.Locale = tag
		} else {
			internal.GetLogger().Warn("invalid locale in device config", "locale", cfg.Locale, "error", err)
		}
	}
	if cfg.TranslationsDir != "" {
		opts.TranslationsDir = cfg.TranslationsDir
	}
	if cfg.CertBundle != "" {
		opts.CertBundle = cfg.CertBundle
	}
	opts.Window = internal.WindowOptions{
		Fullscreen: cfg.Window.Fullscreen,
		Borderless: cfg.Window.Borderless,
		Resizable:  cfg.Window.Resizable,
	}
}

// backend abstracts the graphics and security substrate so the
// startup ordering can be exercised in tests without SDL.
type backend interface {
	SetSurfaceFormat()
	EnableSharedGLContexts()
	LoadTrustBundle(path string) (*netsec.TrustConfig, error)
	InitApplication(opts Options, profile hardware.Profile) error
	// LoadCatalog returns a usable (possibly empty) catalog even on error.
	LoadCatalog(name, dir string, locale language.Tag) (*i18n.Catalog, error)
	NewMainWindow(app *App) (Surface, error)
	Exec(app *App, w Surface) int
	Shutdown()
}

// run performs the ordered startup steps. Each step gates the next:
// the surface format precedes any GL object, hardening precedes the
// application object, and catalog registration precedes the window.
func run(opts Options, profile hardware.Profile, b backend) int {
	log := internal.GetLogger()
	log.Info("starting", "hardware", profile.String())

	b.SetSurfaceFormat()

	var trust *netsec.TrustConfig
	if profile.IsStrada() {
		b.EnableSharedGLContexts()

		t, err := b.LoadTrustBundle(opts.CertBundle)
		if err != nil {
			// The empty pool stays installed: secure connections fail
			// closed rather than silently trusting baseline roots.
			log.Error("device trust bundle unusable, secure connections will fail",
				"path", opts.CertBundle, "error", err)
		} else {
			log.Info("device trust bundle installed", "certs", t.CertCount())
		}
		trust = t
	}

	if err := b.InitApplication(opts, profile); err != nil {
		log.Error("application init failed", "error", err)
		return 1
	}
	defer b.Shutdown()

	app := &App{
		profile:    profile,
		trust:      trust,
		dispatcher: events.NewDispatcher(),
		windows:    registry.New[Surface](),
	}

	catalog, err := b.LoadCatalog(opts.CatalogName, opts.TranslationsDir, opts.Locale)
	if err != nil {
		log.Warn("failed to load translation catalog, using source strings",
			"locale", opts.Locale.String(), "error", err)
	}
	// Install the catalog before the window exists so construction-time
	// strings come out localized
	app.SetCatalog(catalog)

	w, err := b.NewMainWindow(app)
	if err != nil {
		log.Error("main window construction failed", "error", err)
		return 1
	}
	defer w.Destroy()

	app.Windows().SetMainWindow(w)
	app.Dispatcher().Subscribe(w) // the window sees every event first

	return b.Exec(app, w)
}
