// Package config reads game settings from the environment and command-line
// flags. Flags override environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings for one game session.
type Config struct {
	Seed       int64  `env:"UNDERWORLD_SEED"`
	PlayerName string `env:"UNDERWORLD_PLAYER_NAME"`
	KnowsAll   bool   `env:"UNDERWORLD_KNOWS_ALL"`
	ContentDir string `env:"UNDERWORLD_CONTENT_DIR"`
	SaveDir    string `env:"UNDERWORLD_SAVE_DIR"    envDefault:"saves"`
	LogLevel   string `env:"UNDERWORLD_LOG_LEVEL"   envDefault:"info"`
	LogFile    string `env:"UNDERWORLD_LOG_FILE"`
	Plain      bool   `env:"UNDERWORLD_PLAIN"`
	Trace      bool   `env:"UNDERWORLD_TRACE"`
	Script     string `env:"UNDERWORLD_SCRIPT"`
	Version    bool
}

// LoadEnvFile copies variables from a dotenv file into the environment.
// Variables already set win, and a missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseConfig loads the environment, then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed (0 picks one at random)")
	fs.StringVar(&cfg.PlayerName, "name", cfg.PlayerName, "player character name")
	fs.BoolVar(&cfg.KnowsAll, "knows-all", cfg.KnowsAll, "see every hidden detail")
	fs.StringVar(&cfg.ContentDir, "content", cfg.ContentDir, "directory of Lua content (default: built-in)")
	fs.StringVar(&cfg.SaveDir, "save-dir", cfg.SaveDir, "directory for save files")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, `log destination file ("-" for stderr, empty to discard)`)
	fs.BoolVar(&cfg.Plain, "plain", cfg.Plain, "use the plain line interface")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "print the events each command produces")
	fs.StringVar(&cfg.Script, "script", cfg.Script, "read commands from a file")
	fs.BoolVar(&cfg.Version, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 && cfg.ContentDir == "" {
		cfg.ContentDir = fs.Arg(0)
	}

	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Logger builds the session logger. With no LogFile everything is
// discarded, since the terminal belongs to the game. The returned close
// function is never nil.
func (c Config) Logger(stderr io.Writer) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	lvl, err := c.Level()
	if err != nil {
		return nil, noop, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch c.LogFile {
	case "":
		return slog.New(slog.DiscardHandler), noop, nil
	case "-":
		if stderr == nil {
			return nil, noop, errors.New("no stderr to log to")
		}
		return slog.New(slog.NewTextHandler(stderr, opts)), noop, nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewJSONHandler(f, opts)), f.Close, nil
}
