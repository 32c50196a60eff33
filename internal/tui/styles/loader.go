package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/Iron-Ham/taskmemo/internal/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFileExt is the extension of theme files in the themes directory.
const ThemeFileExt = ".yaml"

var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// Custom themes loaded from theme files, keyed by name.
var (
	customMu     sync.RWMutex
	customThemes = make(map[ThemeName]*ColorPalette)
)

// LoadThemeFile reads and validates a theme file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("reading theme file", err).WithPath(path)
	}

	var tf ThemeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, errors.NewConfigError("parsing theme file", err).WithPath(path)
	}
	if err := tf.Validate(); err != nil {
		return nil, errors.NewConfigError("invalid theme", err).WithPath(path)
	}
	return &tf, nil
}

// Validate checks the name, the version and that every color is #RGB or
// #RRGGBB. Built-in names cannot be redefined.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.NewValidationError("theme name is required").WithField("name")
	}
	if strings.ContainsAny(t.Name, `/\ `) {
		return errors.NewValidationError("theme name must not contain slashes or spaces").
			WithField("name").WithValue(t.Name)
	}
	if slices.Contains(BuiltinThemes(), t.Name) {
		return errors.NewValidationError("theme name is reserved for a built-in theme").
			WithField("name").WithValue(t.Name)
	}
	if t.Version != ThemeFileVersion {
		return errors.NewValidationError(fmt.Sprintf("unsupported theme version (supported: %s)", ThemeFileVersion)).
			WithField("version").WithValue(t.Version)
	}

	for _, c := range t.Colors.fields() {
		if c.value == "" {
			return errors.NewValidationError("color is required").WithField("colors." + c.name)
		}
		if !hexColorRegex.MatchString(c.value) {
			return errors.NewValidationError("expected #RGB or #RRGGBB").
				WithField("colors." + c.name).WithValue(c.value)
		}
	}
	return nil
}

type namedColor struct {
	name  string
	value string
}

func (c ThemeColors) fields() []namedColor {
	return []namedColor{
		{"primary", c.Primary},
		{"increment", c.Increment},
		{"add", c.Add},
		{"submit", c.Submit},
		{"button_text", c.ButtonText},
		{"error", c.Error},
		{"muted", c.Muted},
		{"surface", c.Surface},
		{"text", c.Text},
		{"border", c.Border},
	}
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	return &ColorPalette{
		Primary:    lipgloss.Color(t.Colors.Primary),
		Increment:  lipgloss.Color(t.Colors.Increment),
		Add:        lipgloss.Color(t.Colors.Add),
		Submit:     lipgloss.Color(t.Colors.Submit),
		ButtonText: lipgloss.Color(t.Colors.ButtonText),
		Error:      lipgloss.Color(t.Colors.Error),
		Muted:      lipgloss.Color(t.Colors.Muted),
		Surface:    lipgloss.Color(t.Colors.Surface),
		Text:       lipgloss.Color(t.Colors.Text),
		Border:     lipgloss.Color(t.Colors.Border),
	}
}

// RegisterCustomTheme makes t selectable by name.
func RegisterCustomTheme(t *ThemeFile) {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes[ThemeName(t.Name)] = t.ToPalette()
}

// CustomThemeNames returns the registered custom theme names, sorted.
func CustomThemeNames() []string {
	customMu.RLock()
	defer customMu.RUnlock()
	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}

// ClearCustomThemes removes every registered custom theme.
func ClearCustomThemes() {
	customMu.Lock()
	defer customMu.Unlock()
	clear(customThemes)
}

func customPalette(name ThemeName) (*ColorPalette, bool) {
	customMu.RLock()
	defer customMu.RUnlock()
	p, ok := customThemes[name]
	return p, ok
}

// DiscoverCustomThemes loads and registers every theme file in dir. A file
// must be named after the theme it defines. Files that fail to load are
// skipped and reported; a missing dir is not an error.
func DiscoverCustomThemes(dir string) ([]string, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{errors.NewConfigError("reading themes directory", err).WithPath(dir)}
	}

	var loaded []string
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ThemeFileExt {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		tf, err := LoadThemeFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if want := strings.TrimSuffix(entry.Name(), ThemeFileExt); tf.Name != want {
			errs = append(errs, errors.NewConfigError(
				fmt.Sprintf("theme %q must be saved as %s%s", tf.Name, tf.Name, ThemeFileExt), nil).WithPath(path))
			continue
		}
		RegisterCustomTheme(tf)
		loaded = append(loaded, tf.Name)
	}
	return loaded, errs
}

// SaveTheme validates t and writes it to dir as <name>.yaml, creating dir.
// It returns the written path.
func SaveTheme(dir string, t *ThemeFile) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	data, err := yaml.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("marshaling theme %s: %w", t.Name, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating themes directory: %w", err)
	}
	path := filepath.Join(dir, t.Name+ThemeFileExt)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing theme file: %w", err)
	}
	return path, nil
}
