package styles

import (
	"testing"

	"github.com/Iron-Ham/taskmemo/internal/errors"
	"gopkg.in/yaml.v3"
)

func TestExportTheme(t *testing.T) {
	for _, name := range BuiltinThemes() {
		t.Run(name, func(t *testing.T) {
			data, err := ExportTheme(ThemeName(name))
			if err != nil {
				t.Fatalf("ExportTheme(%s) error = %v", name, err)
			}

			var tf ThemeFile
			if err := yaml.Unmarshal(data, &tf); err != nil {
				t.Fatalf("exported YAML does not parse: %v", err)
			}
			if tf.Name != name {
				t.Errorf("Name = %q, want %q", tf.Name, name)
			}
			if tf.Version != ThemeFileVersion {
				t.Errorf("Version = %q, want %q", tf.Version, ThemeFileVersion)
			}
			p := GetPalette(ThemeName(name))
			if tf.Colors.Submit != string(p.Submit) {
				t.Errorf("Colors.Submit = %q, want %q", tf.Colors.Submit, p.Submit)
			}
		})
	}
}

func TestExportTheme_Unknown(t *testing.T) {
	_, err := ExportTheme("neon")
	if !errors.Is(err, errors.ErrThemeNotFound) {
		t.Errorf("ExportTheme(neon) error = %v, want ErrThemeNotFound", err)
	}
}
