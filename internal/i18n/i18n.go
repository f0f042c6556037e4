// Package i18n provides the message catalogs the form renders with.
// English and Burmese are embedded; a YAML file can override any key.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
)

//go:embed locales/*.yaml locales/*.md
var localesFS embed.FS

// Supported locales.
const (
	English = "en"
	Burmese = "my"
)

// DefaultLocale is used when none is configured.
const DefaultLocale = English

// Locales lists the built-in locales in toggle order.
var Locales = []string{English, Burmese}

// ErrUnknownLocale is returned for a locale with no built-in catalog.
var ErrUnknownLocale = errors.New("unknown locale")

// Supported reports whether locale has a built-in catalog.
func Supported(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}

// Next returns the locale after current in toggle order.
func Next(current string) string {
	for i, l := range Locales {
		if l == current {
			return Locales[(i+1)%len(Locales)]
		}
	}
	return DefaultLocale
}

// Catalog resolves keys for one locale. Missing keys fall back to English,
// then to the key itself.
type Catalog struct {
	locale   string
	entries  map[string]string
	fallback map[string]string
	terms    string
}

var _ registration.Messages = (*Catalog)(nil)

// Load builds the catalog for locale, applying overridePath on top when set.
func Load(locale, overridePath string) (*Catalog, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	if !Supported(locale) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}

	fallback, err := readBuiltin(English)
	if err != nil {
		return nil, err
	}
	entries := fallback
	if locale != English {
		if entries, err = readBuiltin(locale); err != nil {
			return nil, err
		}
	}

	if overridePath != "" {
		overrides, err := readOverride(overridePath)
		if err != nil {
			return nil, err
		}
		merged := make(map[string]string, len(entries)+len(overrides))
		for k, v := range entries {
			merged[k] = v
		}
		for k, v := range overrides {
			merged[k] = v
		}
		entries = merged
		log.Info(log.CatI18n, "applied message overrides", "path", overridePath, "keys", len(overrides))
	}

	terms, err := localesFS.ReadFile("locales/terms." + locale + ".md")
	if err != nil {
		return nil, fmt.Errorf("reading terms for %s: %w", locale, err)
	}

	log.Debug(log.CatI18n, "catalog loaded", "locale", locale, "keys", len(entries))
	return &Catalog{
		locale:   locale,
		entries:  entries,
		fallback: fallback,
		terms:    string(terms),
	}, nil
}

// MustLoad is Load for built-in locales without overrides. It panics on an
// unknown locale.
func MustLoad(locale string) *Catalog {
	c, err := Load(locale, "")
	if err != nil {
		panic(err)
	}
	return c
}

func readBuiltin(locale string) (map[string]string, error) {
	data, err := localesFS.ReadFile("locales/" + locale + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("reading %s catalog: %w", locale, err)
	}
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s catalog: %w", locale, err)
	}
	return entries, nil
}

func readOverride(path string) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading messages file: %w", err)
	}
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing messages file %s: %w", path, err)
	}
	return entries, nil
}

// Locale returns the catalog's locale.
func (c *Catalog) Locale() string {
	return c.locale
}

// Get returns the text for key.
func (c *Catalog) Get(key string) string {
	if s, ok := c.entries[key]; ok && s != "" {
		return s
	}
	if s, ok := c.fallback[key]; ok && s != "" {
		return s
	}
	return key
}

// Message implements registration.Messages.
func (c *Catalog) Message(key registration.MessageKey) string {
	return c.Get(string(key))
}

// Label returns the display label of a field.
func (c *Catalog) Label(f registration.Field) string {
	return c.Get("label." + f.String())
}

// Placeholder returns the placeholder of a text field.
func (c *Catalog) Placeholder(f registration.Field) string {
	return c.Get("placeholder." + f.String())
}

// Gender returns the option label for g; the unset value gets the prompt.
func (c *Catalog) Gender(g registration.Gender) string {
	if g == registration.GenderUnset {
		return c.Get("gender.unset")
	}
	return c.Get("gender." + string(g))
}

// Strength returns the label for s, or "" for StrengthNone.
func (c *Catalog) Strength(s registration.Strength) string {
	if s == registration.StrengthNone {
		return ""
	}
	return c.Get("strength." + s.String())
}

// Terms returns the markdown terms document.
func (c *Catalog) Terms() string {
	return c.terms
}

// Validator returns a validator that resolves messages through the catalog.
func (c *Catalog) Validator() *registration.Validator {
	return registration.NewValidator(c)
}
