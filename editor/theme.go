package editor

import (
	"gopkg.in/yaml.v3"

	uiloader "github.com/bogrendigital/ui-loader"
	"github.com/bogrendigital/ui-loader/errors"
	"github.com/bogrendigital/ui-loader/uidesc"
)

// ThemeResourceName is the asset the editor looks a theme up under.
const ThemeResourceName = "theme.yaml"

// Theme carries the shell's colors. The background fills the whole view on
// every Paint; the rest is available to embedders styling custom widgets.
type Theme struct {
	Background uiloader.Color
	Text       uiloader.Color
	Accent     uiloader.Color
}

// DefaultTheme is the built-in dark theme used when no theme resource is
// present or the resource fails to parse.
var DefaultTheme = Theme{
	Background: uiloader.Color{R: 0x1E, G: 0x1E, B: 0x24, A: 0xFF},
	Text:       uiloader.Color{R: 0xE6, G: 0xE6, B: 0xE6, A: 0xFF},
	Accent:     uiloader.Color{R: 0x7D, G: 0x56, B: 0xF4, A: 0xFF},
}

type themeDoc struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Accent     string `yaml:"accent"`
}

// ParseTheme reads a YAML theme resource. Omitted colors keep their
// DefaultTheme values.
func ParseTheme(data []byte) (Theme, error) {
	var doc themeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return DefaultTheme, errors.Wrap(errors.PhaseShell, errors.KindInvalidData, err, "malformed theme")
	}

	theme := DefaultTheme
	for _, f := range []struct {
		raw string
		dst *uiloader.Color
		key string
	}{
		{doc.Background, &theme.Background, "background"},
		{doc.Text, &theme.Text, "text"},
		{doc.Accent, &theme.Accent, "accent"},
	} {
		if f.raw == "" {
			continue
		}
		col, err := uidesc.ParseColor(f.raw)
		if err != nil {
			return DefaultTheme, errors.New(errors.PhaseShell, errors.KindInvalidData).
				Detail("theme key %q: %v", f.key, err).
				Build()
		}
		*f.dst = col
	}
	return theme, nil
}
