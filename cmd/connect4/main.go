package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"connect/config"
	"connect/shell"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load("connect4", os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	initLogger(cfg.Debug)
	log.Debug().Msgf("loaded config: %+v", *cfg)

	sc, err := shell.New(*cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if err := sc.Loop(); err != nil {
		log.Fatal().Err(err).Msg("")
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
	log.Debug().Msg("debug logging is on")
}
