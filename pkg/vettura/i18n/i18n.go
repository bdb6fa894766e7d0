// Package i18n loads the UI translation catalog.
//
// Catalogs are go-i18n TOML message files named <name>.<locale>.toml
// inside a search directory. A missing catalog is a tolerated
// condition: lookups fall back to source-language strings.
package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Catalog wraps a localizer for a fixed target locale.
type Catalog struct {
	localizer *goi18n.Localizer
	locale    language.Tag
	loaded    bool
}

// Load reads the message file for the locale from dir. On failure it
// returns an empty catalog alongside the error, so the caller can log
// and register the catalog regardless.
func Load(name, dir string, locale language.Tag) (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	path := filepath.Join(dir, fmt.Sprintf("%s.%s.toml", name, locale.String()))
	if _, err := bundle.LoadMessageFile(path); err != nil {
		return Empty(locale), fmt.Errorf("load message file %s: %w", path, err)
	}

	return &Catalog{
		localizer: goi18n.NewLocalizer(bundle, locale.String()),
		locale:    locale,
		loaded:    true,
	}, nil
}

// Empty returns a catalog with no messages; every lookup falls back
// to its source string. Registering it is harmless.
func Empty(locale language.Tag) *Catalog {
	bundle := goi18n.NewBundle(language.English)
	return &Catalog{
		localizer: goi18n.NewLocalizer(bundle, locale.String()),
		locale:    locale,
	}
}

// Loaded reports whether the catalog holds message data.
func (c *Catalog) Loaded() bool {
	return c.loaded
}

// Locale returns the catalog's target locale.
func (c *Catalog) Locale() language.Tag {
	return c.locale
}

// T returns the translation for id, or source when the catalog has no
// entry for it.
func (c *Catalog) T(id, source string) string {
	return c.Tf(id, source, nil)
}

// Tf is T with template data applied to the message.
func (c *Catalog) Tf(id, source string, data map[string]any) string {
	msg, err := c.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:      id,
		TemplateData:   data,
		DefaultMessage: &goi18n.Message{ID: id, Other: source},
	})
	if err != nil {
		return source
	}
	return msg
}
