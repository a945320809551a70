package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLocale is used when no default is configured.
const DefaultLocale = "fr"

// ErrNoCatalog indicates no translation files were loaded.
var ErrNoCatalog = errors.New("i18n: no translation catalogs loaded")

// Translator resolves message keys to localized strings.
// Lookups fall back to the default locale, then to the key itself.
type Translator struct {
	// Flattened messages, keyed "locale:dotted.key".
	messages      map[string]string
	defaultLocale string
	locales       []string
}

// Option configures a Translator during construction.
type Option func(*Translator) error

// WithDefaultLocale sets the fallback locale.
func WithDefaultLocale(locale string) Option {
	return func(t *Translator) error {
		if locale == "" {
			return errors.New("i18n: default locale cannot be empty")
		}
		t.defaultLocale = locale
		return nil
	}
}

// WithYAMLCatalogs loads every {locale}.yaml (or .yml) file at the root of
// the given filesystem as the message catalog for that locale.
func WithYAMLCatalogs(fsys fs.FS) Option {
	return func(t *Translator) error {
		entries, err := fs.ReadDir(fsys, ".")
		if err != nil {
			return fmt.Errorf("i18n: reading catalog dir: %w", err)
		}

		for _, entry := range entries {
			name := entry.Name()
			ext := strings.ToLower(path.Ext(name))
			if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
				continue
			}

			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("i18n: reading catalog %s: %w", name, err)
			}

			var raw map[string]any
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return fmt.Errorf("i18n: parsing catalog %s: %w", name, err)
			}

			locale := strings.TrimSuffix(name, ext)
			flatten(t.messages, locale, "", raw)
			t.locales = append(t.locales, locale)
		}

		return nil
	}
}

// New creates a Translator from the given options.
func New(opts ...Option) (*Translator, error) {
	t := &Translator{
		messages:      make(map[string]string),
		defaultLocale: DefaultLocale,
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	if len(t.locales) == 0 {
		return nil, ErrNoCatalog
	}

	return t, nil
}

// T resolves key in the given locale, falling back to the default locale.
// When args are supplied the message is treated as a fmt format string.
// An unknown key is returned as-is so missing translations stay visible.
func (t *Translator) T(locale, key string, args ...any) string {
	msg, ok := t.messages[locale+":"+key]
	if !ok {
		msg, ok = t.messages[t.defaultLocale+":"+key]
	}
	if !ok {
		return key
	}

	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Locales returns the locales with a loaded catalog.
func (t *Translator) Locales() []string {
	return append([]string(nil), t.locales...)
}

// DefaultLocale returns the configured fallback locale.
func (t *Translator) DefaultLocale() string {
	return t.defaultLocale
}

// flatten walks a nested yaml map and stores leaves under dotted keys.
func flatten(dst map[string]string, locale, prefix string, src map[string]any) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case map[string]any:
			flatten(dst, locale, key, val)
		case string:
			dst[locale+":"+key] = val
		default:
			dst[locale+":"+key] = fmt.Sprint(val)
		}
	}
}
