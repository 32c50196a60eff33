package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	appconfig "github.com/Iron-Ham/taskmemo/internal/config"
	"github.com/spf13/viper"
)

// setupConfigEnv isolates viper and the config directory for one test.
func setupConfigEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	viper.Reset()
	appconfig.SetDefaults()
	t.Cleanup(viper.Reset)
	return filepath.Join(dir, "taskmemo", "config.yaml")
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    any
		wantErr bool
	}{
		{"tui.theme", "nord", "nord", false},
		{"tui.show_stats", "true", true, false},
		{"tui.show_stats", "yes", nil, true},
		{"tui.input_width", "40", 40, false},
		{"tui.input_width", "wide", nil, true},
		{"calc.iterations", "-1", nil, true},
		{"metrics.addr", ":9464", ":9464", false},
		{"todos.seed", "x", nil, true},
		{"unknown.key", "x", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			got, err := parseValue(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseValue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunConfigInit(t *testing.T) {
	configFile := setupConfigEnv(t)
	captureOutput(t, configInitCmd)

	if err := runConfigInit(configInitCmd, nil); err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("generated config does not parse: %v", err)
	}
	cfg, err := appconfig.LoadFrom(v)
	if err != nil {
		t.Fatalf("generated config is invalid: %v", err)
	}
	if cfg.Calc.Iterations != 100_000_000 || len(cfg.Todos.Seed) != 2 {
		t.Errorf("generated config = %+v", cfg)
	}

	if err := runConfigInit(configInitCmd, nil); err == nil {
		t.Error("second init should fail because the file exists")
	}
}

func TestRunConfigSet(t *testing.T) {
	configFile := setupConfigEnv(t)
	captureOutput(t, configSetCmd)

	if err := runConfigSet(configSetCmd, []string{"tui.theme", "nord"}); err != nil {
		t.Fatalf("runConfigSet() error = %v", err)
	}
	data, err := os.ReadFile(configFile)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "theme: nord") {
		t.Errorf("config file missing theme:\n%s", data)
	}

	t.Run("rejects invalid theme", func(t *testing.T) {
		if err := runConfigSet(configSetCmd, []string{"tui.theme", "neon"}); err == nil {
			t.Fatal("expected error for unknown theme")
		}
		if got := viper.GetString("tui.theme"); got != "nord" {
			t.Errorf("tui.theme = %q after rejected set, want nord", got)
		}
	})

	t.Run("rejects zero iterations", func(t *testing.T) {
		if err := runConfigSet(configSetCmd, []string{"calc.iterations", "0"}); err == nil {
			t.Error("expected error for zero iterations")
		}
	})
}

func TestRunConfigShow(t *testing.T) {
	setupConfigEnv(t)
	buf := captureOutput(t, configShowCmd)

	if err := runConfigShow(configShowCmd, nil); err != nil {
		t.Fatalf("runConfigShow() error = %v", err)
	}
	for _, want := range []string{"using defaults", "theme: default", "iterations: 100000000", "- Learn React"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("show output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestRunConfigReset(t *testing.T) {
	setupConfigEnv(t)
	captureOutput(t, configResetCmd)

	viper.Set("tui.theme", "monokai")
	viper.Set("tui.show_stats", true)

	if err := runConfigReset(configResetCmd, []string{"tui.theme"}); err != nil {
		t.Fatalf("runConfigReset(tui.theme) error = %v", err)
	}
	if viper.GetString("tui.theme") != "default" {
		t.Errorf("tui.theme = %q, want default", viper.GetString("tui.theme"))
	}
	if !viper.GetBool("tui.show_stats") {
		t.Error("resetting one key must not reset others")
	}

	if err := runConfigReset(configResetCmd, nil); err != nil {
		t.Fatalf("runConfigReset() error = %v", err)
	}
	if viper.GetBool("tui.show_stats") {
		t.Error("reset all should restore tui.show_stats")
	}

	if err := runConfigReset(configResetCmd, []string{"bogus"}); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestRunConfigPath(t *testing.T) {
	configFile := setupConfigEnv(t)
	buf := captureOutput(t, configPathCmd)

	if err := runConfigPath(configPathCmd, nil); err != nil {
		t.Fatalf("runConfigPath() error = %v", err)
	}
	if !strings.Contains(buf.String(), configFile) {
		t.Errorf("path output missing %s:\n%s", configFile, buf.String())
	}
	if !strings.Contains(buf.String(), "TASKMEMO_") {
		t.Errorf("path output should mention the env prefix:\n%s", buf.String())
	}
}

func TestFindEditor(t *testing.T) {
	origLookPath := execLookPath
	t.Cleanup(func() { execLookPath = origLookPath })

	t.Run("EDITOR wins", func(t *testing.T) {
		t.Setenv("EDITOR", "myeditor")
		t.Setenv("VISUAL", "other")
		if got := findEditor(); got != "myeditor" {
			t.Errorf("findEditor() = %q, want myeditor", got)
		}
	})

	t.Run("falls back to PATH", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		t.Setenv("VISUAL", "")
		execLookPath = func(name string) (string, error) {
			if name == "nano" {
				return "/usr/bin/nano", nil
			}
			return "", errors.New("not found")
		}
		if got := findEditor(); got != "nano" {
			t.Errorf("findEditor() = %q, want nano", got)
		}
	})

	t.Run("none found", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		t.Setenv("VISUAL", "")
		execLookPath = func(string) (string, error) { return "", errors.New("not found") }
		if got := findEditor(); got != "" {
			t.Errorf("findEditor() = %q, want empty", got)
		}
	})
}

func TestSettableKeys(t *testing.T) {
	keys := SettableKeys()
	if len(keys) != len(defaultValues()) {
		t.Errorf("SettableKeys() has %d keys, defaults cover %d", len(keys), len(defaultValues()))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Errorf("SettableKeys() not sorted: %v", keys)
		}
	}
}
