package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"rbnim/game"
	"rbnim/searcher"

	"github.com/rs/zerolog"
)

const (
	DefaultVariant  = game.Standard
	DefaultFirst    = game.Computer
	DefaultLogLevel = "info"
	DefaultGames    = 30 // per matchup
	DefaultOutDir   = "experiments"
)

const usage = "usage: rbnim [flags] <num-red> <num-blue> [standard|misere] [computer|human] [depth]"

var ErrUsage = errors.New(usage)

type Config struct {
	Red        int
	Blue       int
	Variant    game.Variant
	First      game.Player
	Depth      searcher.Depth
	LogLevel   zerolog.Level
	Color      bool
	Experiment string
	Games      int
	OutDir     string
}

// Parse reads flags and positional arguments. A depth of 0, or none at all,
// means the computer searches to the end of the game.
func Parse(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("rbnim", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, usage)
		fs.PrintDefaults()
	}

	logLevel := fs.String("log-level", DefaultLogLevel, "Log level (trace, debug, info, warn, error)")
	noColor := fs.Bool("no-color", false, "Disable colored output")
	experiment := fs.String("experiment", "", "Run a self-play experiment (pruning, depth) instead of a game")
	games := fs.Int("games", DefaultGames, "Number of games per experiment matchup")
	outDir := fs.String("out", DefaultOutDir, "Directory for experiment records")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Variant:    DefaultVariant,
		First:      DefaultFirst,
		Depth:      searcher.Unbounded,
		Color:      !*noColor,
		Experiment: *experiment,
		Games:      *games,
		OutDir:     *outDir,
	}

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", *logLevel, err)
	}
	cfg.LogLevel = level

	if cfg.Games <= 0 {
		return Config{}, fmt.Errorf("games must be positive, got %d", cfg.Games)
	}

	if cfg.Experiment != "" {
		return cfg, nil
	}

	if err := cfg.parsePositional(fs.Args()); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) parsePositional(args []string) error {
	if len(args) < 2 || len(args) > 5 {
		return ErrUsage
	}

	var err error
	if cfg.Red, err = parsePile("num-red", args[0]); err != nil {
		return err
	}
	if cfg.Blue, err = parsePile("num-blue", args[1]); err != nil {
		return err
	}
	if len(args) > 2 {
		if cfg.Variant, err = game.ParseVariant(args[2]); err != nil {
			return err
		}
	}
	if len(args) > 3 {
		if cfg.First, err = game.ParsePlayer(args[3]); err != nil {
			return err
		}
	}
	if len(args) > 4 {
		depth, err := strconv.Atoi(args[4])
		if err != nil || depth < 0 {
			return fmt.Errorf("depth must be a non-negative integer, got %q", args[4])
		}
		if depth > 0 {
			cfg.Depth = searcher.Limit(depth)
		}
	}
	return nil
}

func parsePile(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", game.ErrInvalidPile, name, n)
	}
	return n, nil
}
