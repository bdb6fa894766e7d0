package vettura

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/text/language"

	"github.com/vettura-project/vettura/pkg/vettura/config"
	"github.com/vettura-project/vettura/pkg/vettura/hardware"
	"github.com/vettura-project/vettura/pkg/vettura/i18n"
	"github.com/vettura-project/vettura/pkg/vettura/internal"
	"github.com/vettura-project/vettura/pkg/vettura/netsec"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "vettura-test")
	if err == nil {
		internal.SetLogPath(filepath.Join(dir, "test.log"))
	}
	code := m.Run()
	if dir != "" {
		os.RemoveAll(dir)
	}
	os.Exit(code)
}

type fakeSurface struct {
	filtered  []sdl.Event
	destroyed bool
	catalogOK bool // catalog was installed before construction
}

func (s *fakeSurface) FilterEvent(event sdl.Event) bool {
	s.filtered = append(s.filtered, event)
	return false
}

func (s *fakeSurface) Render()  {}
func (s *fakeSurface) Destroy() { s.destroyed = true }

// fakeBackend records the startup steps run() takes so ordering and
// conditional behavior can be asserted without SDL.
type fakeBackend struct {
	steps []string

	trustErr   error
	initErr    error
	catalogErr error
	windowErr  error
	exitCode   int

	trustPath string
	app       *App
	window    *fakeSurface
}

func (b *fakeBackend) SetSurfaceFormat() {
	b.steps = append(b.steps, "surface-format")
}

func (b *fakeBackend) EnableSharedGLContexts() {
	b.steps = append(b.steps, "shared-gl")
}

func (b *fakeBackend) LoadTrustBundle(path string) (*netsec.TrustConfig, error) {
	b.steps = append(b.steps, "trust")
	b.trustPath = path
	// An unloadable bundle still yields a usable, empty config
	cfg, _ := netsec.LoadTrustBundle(filepath.Join("does", "not", "exist"))
	return cfg, b.trustErr
}

func (b *fakeBackend) InitApplication(opts Options, profile hardware.Profile) error {
	b.steps = append(b.steps, "init")
	return b.initErr
}

func (b *fakeBackend) LoadCatalog(name, dir string, locale language.Tag) (*i18n.Catalog, error) {
	b.steps = append(b.steps, "catalog")
	if b.catalogErr != nil {
		return i18n.Empty(locale), b.catalogErr
	}
	return i18n.Empty(locale), nil
}

func (b *fakeBackend) NewMainWindow(app *App) (Surface, error) {
	b.steps = append(b.steps, "window")
	b.app = app
	if b.windowErr != nil {
		return nil, b.windowErr
	}
	b.window = &fakeSurface{catalogOK: app.Catalog() != nil}
	return b.window, nil
}

func (b *fakeBackend) Exec(app *App, w Surface) int {
	b.steps = append(b.steps, "exec")
	return b.exitCode
}

func (b *fakeBackend) Shutdown() {
	b.steps = append(b.steps, "shutdown")
}

func stradaProfile() hardware.Profile {
	return hardware.Profile{Model: "vettura,strada v1.1"}
}

func devkitProfile() hardware.Profile {
	return hardware.Profile{Model: "qemu-aarch64"}
}

func TestRunStepOrderingOnStrada(t *testing.T) {
	b := &fakeBackend{exitCode: 42}

	code := run(DefaultOptions(), stradaProfile(), b)

	require.Equal(t, 42, code)
	require.Equal(t,
		[]string{"surface-format", "shared-gl", "trust", "init", "catalog", "window", "exec", "shutdown"},
		b.steps)
	require.Equal(t, DefaultOptions().CertBundle, b.trustPath)
	require.NotNil(t, b.app.trust, "trust config is handed to the application")
}

func TestRunSkipsHardeningOffStrada(t *testing.T) {
	b := &fakeBackend{}

	code := run(DefaultOptions(), devkitProfile(), b)

	require.Equal(t, 0, code)
	require.NotContains(t, b.steps, "shared-gl")
	require.NotContains(t, b.steps, "trust")
	require.Contains(t, b.steps, "catalog", "translator load is attempted regardless of hardware")
	require.Contains(t, b.steps, "exec")
	require.Nil(t, b.app.trust)
}

func TestRunCatalogInstalledBeforeWindow(t *testing.T) {
	b := &fakeBackend{}

	run(DefaultOptions(), devkitProfile(), b)

	require.True(t, b.window.catalogOK, "catalog must be installed before window construction")
	require.Less(t,
		indexOf(t, b.steps, "catalog"),
		indexOf(t, b.steps, "window"))
}

func indexOf(t *testing.T, steps []string, step string) int {
	t.Helper()
	for i, s := range steps {
		if s == step {
			return i
		}
	}
	t.Fatalf("step %q not found in %v", step, steps)
	return -1
}

func TestRunCatalogFailureIsNonFatal(t *testing.T) {
	b := &fakeBackend{catalogErr: errors.New("no such file"), exitCode: 3}

	code := run(DefaultOptions(), devkitProfile(), b)

	require.Equal(t, 3, code, "event loop must still run after a catalog load failure")
	require.Contains(t, b.steps, "exec")
	require.NotNil(t, b.app.Catalog())
	require.False(t, b.app.Catalog().Loaded())
}

func TestRunTrustBundleFailureFailsClosed(t *testing.T) {
	b := &fakeBackend{trustErr: errors.New("open /usr/etc/tls/cert.pem: no such file")}

	code := run(DefaultOptions(), stradaProfile(), b)

	require.Equal(t, 0, code, "a bad trust bundle must not abort startup")
	require.Contains(t, b.steps, "exec")
	require.NotNil(t, b.app.trust)
	require.Zero(t, b.app.trust.CertCount(), "empty pool: connections fail closed")
}

func TestRunInitFailureIsFatal(t *testing.T) {
	b := &fakeBackend{initErr: errors.New("no video device")}

	code := run(DefaultOptions(), devkitProfile(), b)

	require.Equal(t, 1, code)
	require.NotContains(t, b.steps, "window")
	require.NotContains(t, b.steps, "exec")
}

func TestRunWindowFailureIsFatal(t *testing.T) {
	b := &fakeBackend{windowErr: errors.New("renderer lost")}

	code := run(DefaultOptions(), devkitProfile(), b)

	require.Equal(t, 1, code)
	require.NotContains(t, b.steps, "exec")
	require.Contains(t, b.steps, "shutdown")
}

func TestRunPublishesMainWindow(t *testing.T) {
	b := &fakeBackend{}

	run(DefaultOptions(), devkitProfile(), b)

	w, ok := b.app.Windows().MainWindow()
	require.True(t, ok)
	require.Same(t, b.window, w)
	require.True(t, b.window.destroyed, "window textures released on exit")
}

func TestRunSubscribesWindowAsFilter(t *testing.T) {
	b := &fakeBackend{}

	run(DefaultOptions(), devkitProfile(), b)

	event := &sdl.QuitEvent{}
	b.app.Dispatcher().Dispatch(event)
	require.Len(t, b.window.filtered, 1)
	require.Same(t, event, b.window.filtered[0].(*sdl.QuitEvent))
}

func TestRunExitCodePropagation(t *testing.T) {
	for _, code := range []int{0, 1, 7, 255} {
		b := &fakeBackend{exitCode: code}
		require.Equal(t, code, run(DefaultOptions(), devkitProfile(), b))
	}
}

func TestApplyConfigOverrides(t *testing.T) {
	opts := DefaultOptions()
	applyConfig(&opts, configFixture())

	require.Equal(t, language.German, opts.Locale)
	require.Equal(t, "/data/translations", opts.TranslationsDir)
	require.Equal(t, "/data/tls/custom.pem", opts.CertBundle)
	require.True(t, opts.Window.Fullscreen)
}

func TestApplyConfigBadLocaleKeepsDefault(t *testing.T) {
	opts := DefaultOptions()
	cfg := configFixture()
	cfg.Locale = "not a locale!"
	applyConfig(&opts, cfg)

	require.Equal(t, language.French, opts.Locale)
}

func configFixture() config.Config {
	return config.Config{
		Locale:          "de",
		TranslationsDir: "/data/translations",
		CertBundle:      "/data/tls/custom.pem",
		Window:          config.WindowConfig{Fullscreen: true},
	}
}
