package config

import (
	"bytes"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("underworld", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.SaveDir != "saves" {
		t.Fatalf("expected default save dir, got %q", cfg.SaveDir)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level, got %q", cfg.LogLevel)
	}
	if cfg.Seed != 0 || cfg.KnowsAll || cfg.Plain || cfg.ContentDir != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("UNDERWORLD_SEED", "42")
	t.Setenv("UNDERWORLD_KNOWS_ALL", "true")
	t.Setenv("UNDERWORLD_CONTENT_DIR", "packs/crypt")
	t.Setenv("UNDERWORLD_LOG_LEVEL", "debug")

	cfg, err := ParseConfig(flag.NewFlagSet("underworld", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 42 || !cfg.KnowsAll || cfg.ContentDir != "packs/crypt" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if lvl, _ := cfg.Level(); lvl != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", lvl)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("UNDERWORLD_SEED", "42")
	t.Setenv("UNDERWORLD_SAVE_DIR", "/tmp/env-saves")

	fs := flag.NewFlagSet("underworld", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "7", "-plain", "-name", "Ash", "packs/caves"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 7 {
		t.Fatalf("expected flag seed 7, got %d", cfg.Seed)
	}
	if cfg.SaveDir != "/tmp/env-saves" {
		t.Fatalf("expected env save dir, got %q", cfg.SaveDir)
	}
	if !cfg.Plain || cfg.PlayerName != "Ash" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.ContentDir != "packs/caves" {
		t.Fatalf("expected positional content dir, got %q", cfg.ContentDir)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want string
	}{
		{"bad env seed", map[string]string{"UNDERWORLD_SEED": "many"}, nil, "parse env:"},
		{"bad log level", nil, []string{"-log-level", "loud"}, "log level"},
		{"unknown flag", nil, []string{"-fly"}, "fly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			fs := flag.NewFlagSet("underworld", flag.ContinueOnError)
			fs.SetOutput(&bytes.Buffer{})
			_, err := ParseConfig(fs, tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %v", tt.want, err)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	t.Run("discard", func(t *testing.T) {
		log, closeFn, err := Config{LogLevel: "info"}.Logger(nil)
		if err != nil {
			t.Fatal(err)
		}
		defer closeFn()
		if log.Enabled(t.Context(), slog.LevelError) {
			t.Fatal("expected a discarding logger")
		}
	})

	t.Run("stderr", func(t *testing.T) {
		var buf bytes.Buffer
		log, closeFn, err := Config{LogLevel: "warn", LogFile: "-"}.Logger(&buf)
		if err != nil {
			t.Fatal(err)
		}
		defer closeFn()
		log.Info("hidden")
		log.Warn("shown")
		if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
			t.Fatalf("unexpected output %q", buf.String())
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.log")
		log, closeFn, err := Config{LogLevel: "debug", LogFile: path}.Logger(nil)
		if err != nil {
			t.Fatal(err)
		}
		log.Debug("room generated", "room", "abc")
		if err := closeFn(); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), `"msg":"room generated"`) {
			t.Fatalf("unexpected log %s", data)
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("UNDERWORLD_PLAYER_NAME=Mira\nUNDERWORLD_SEED=9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("UNDERWORLD_PLAYER_NAME", "")
	os.Unsetenv("UNDERWORLD_PLAYER_NAME")
	t.Setenv("UNDERWORLD_SEED", "7")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("load env file: %v", err)
	}
	cfg, err := ParseConfig(flag.NewFlagSet("underworld", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.PlayerName != "Mira" {
		t.Errorf("player name = %q, want Mira", cfg.PlayerName)
	}
	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want the environment to win with 7", cfg.Seed)
	}

	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}
