package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"rbnim/agent"
	"rbnim/config"
	"rbnim/display"
	"rbnim/engine"
	"rbnim/experiments"
	"rbnim/game"
	"rbnim/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen, NoColor: !cfg.Color})

	if cfg.Experiment != "" {
		err = runExperiment(cfg)
	} else {
		err = play(cfg, os.Stdin, os.Stdout)
	}
	if err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

func play(cfg config.Config, in io.Reader, out io.Writer) error {
	state, err := game.NewGameState(cfg.Red, cfg.Blue, cfg.Variant, cfg.First)
	if err != nil {
		return err
	}

	terminal := display.NewTerminal(out, cfg.Color)
	agents := map[game.Player]agent.Agent{
		game.Human:    agent.NewHumanAgent(in, out),
		game.Computer: agent.NewMinimaxAgent(searcher.NewSearcher(searcher.WithDepth(cfg.Depth))),
	}
	e, err := engine.LocalEngine(state, agents, terminal)
	if err != nil {
		return err
	}

	_, err = e.Run()
	return err
}

func runExperiment(cfg config.Config) error {
	setup := experiments.DefaultSetup()
	setup.NumGames = cfg.Games
	setup.OutDir = cfg.OutDir

	dir, err := experiments.Run(cfg.Experiment, setup)
	if err != nil {
		return err
	}
	fmt.Printf("Experiment records written to %s\n", dir)
	return nil
}
