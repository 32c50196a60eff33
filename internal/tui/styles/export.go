package styles

import (
	"fmt"

	"github.com/Iron-Ham/taskmemo/internal/errors"
	"gopkg.in/yaml.v3"
)

// ThemeFileVersion is the current theme file format version.
const ThemeFileVersion = "1"

// ThemeFile is the YAML representation of a theme.
type ThemeFile struct {
	// Name is the theme's name (e.g., "nord")
	Name string `yaml:"name"`
	// Version is the theme file format version
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme, as hex strings.
type ThemeColors struct {
	Primary    string `yaml:"primary"`
	Increment  string `yaml:"increment"`
	Add        string `yaml:"add"`
	Submit     string `yaml:"submit"`
	ButtonText string `yaml:"button_text"`
	Error      string `yaml:"error"`
	Muted      string `yaml:"muted"`
	Surface    string `yaml:"surface"`
	Text       string `yaml:"text"`
	Border     string `yaml:"border"`
}

// NewThemeFile builds the file representation of palette p.
func NewThemeFile(name ThemeName, p *ColorPalette) *ThemeFile {
	return &ThemeFile{
		Name:    string(name),
		Version: ThemeFileVersion,
		Colors: ThemeColors{
			Primary:    string(p.Primary),
			Increment:  string(p.Increment),
			Add:        string(p.Add),
			Submit:     string(p.Submit),
			ButtonText: string(p.ButtonText),
			Error:      string(p.Error),
			Muted:      string(p.Muted),
			Surface:    string(p.Surface),
			Text:       string(p.Text),
			Border:     string(p.Border),
		},
	}
}

// ExportTheme marshals a built-in or custom theme to YAML.
func ExportTheme(name ThemeName) ([]byte, error) {
	if !IsValidTheme(string(name)) {
		return nil, errors.NewConfigError(fmt.Sprintf("unknown theme %q", name), errors.ErrThemeNotFound).
			WithKey("tui.theme")
	}

	data, err := yaml.Marshal(NewThemeFile(name, GetPalette(name)))
	if err != nil {
		return nil, fmt.Errorf("marshaling theme %s: %w", name, err)
	}
	return data, nil
}
