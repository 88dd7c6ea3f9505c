// Underworld is a seeded, procedurally generated dungeon crawler for the
// terminal.
// Usage: underworld [flags] [content_directory]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nathoo/underworld/cli"
	"github.com/nathoo/underworld/config"
	"github.com/nathoo/underworld/engine"
	"github.com/nathoo/underworld/engine/generate"
	"github.com/nathoo/underworld/engine/rng"
	"github.com/nathoo/underworld/loader"
	"github.com/nathoo/underworld/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnvFile(".env"); err != nil {
		return err
	}
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.Version {
		fmt.Printf("underworld %s (commit %s, built %s)\n", version, commit, date)
		return nil
	}

	log, closeLog, err := cfg.Logger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := loadContent(cfg.ContentDir, log)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}
	if cfg.PlayerName != "" {
		cat.Player.Name = cfg.PlayerName
	}
	if cfg.KnowsAll {
		cat.Player.KnowsAll = true
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = rng.NewSeed(); err != nil {
			return err
		}
	}
	log.Info("new game", "seed", seed, "content", cfg.ContentDir)
	eng := engine.NewGame(rng.NewRNG(seed), cat.Player, cat.Rooms, log)

	// Script mode: read commands from a file, force plain, echo commands.
	if cfg.Script != "" {
		f, err := os.Open(cfg.Script)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c := newCLI(eng, cfg)
		c.In = f
		c.EchoInput = true
		c.Run()
		return nil
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if cfg.Plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		newCLI(eng, cfg).Run()
		return nil
	}

	return tui.Run(eng, tui.Options{SaveDir: cfg.SaveDir, Trace: cfg.Trace})
}

func loadContent(dir string, log *slog.Logger) (*generate.Catalog, error) {
	if dir == "" {
		return loader.LoadDefault(log)
	}
	return loader.Load(dir, log)
}

func newCLI(eng *engine.Engine, cfg config.Config) *cli.CLI {
	fmt.Printf("Underworld (seed %d)\n\n", eng.RNG.Seed())
	c := cli.New(eng)
	c.Trace = cfg.Trace
	if cfg.SaveDir != "" {
		c.SaveDir = cfg.SaveDir
	}
	return c
}
