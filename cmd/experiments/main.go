package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"connect/config"
	"connect/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load("experiments", os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	initLogger(cfg.Debug)

	settings := experiments.Settings{
		Dims:      cfg.Dims,
		Games:     cfg.Games,
		OutputDir: cfg.OutputDir,
		Seed:      cfg.Seed,
	}
	log.Info().Uint64("seed", settings.Seed).Msgf("running experiments on %s board", settings.Dims)

	if _, err := experiments.RunBaselineExperiment(settings); err != nil {
		log.Fatal().Err(err).Msg("baseline experiment failed")
	}
	if _, err := experiments.RunStrengthExperiment(settings); err != nil {
		log.Fatal().Err(err).Msg("strength experiment failed")
	}
}

func initLogger(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}
