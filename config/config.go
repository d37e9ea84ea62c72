package config

import (
	"fmt"
	"math"
	"strings"

	"connect/bitboard"
	"connect/game"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"lukechampine.com/frand"
)

// EnvPrefix is prepended to every key when read from the environment,
// e.g. CONNECT4_WIN_LENGTH.
const EnvPrefix = "CONNECT4"

type Config struct {
	Dims        game.Dimensions
	Eager       bool // Build the whole model before the first move
	Debug       bool
	HistoryFile string

	// Self-play
	Games     int
	OutputDir string
	Seed      uint64
}

// Load reads flags from args, falling back to the environment and then to
// the defaults. The board is checked against the packed key budget here so
// binaries fail with an error rather than a panic.
func (c *Config) Load(name string, args []string) error {
	defaults := game.DefaultDimensions()

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Int("rows", defaults.Rows, "number of rows on the board")
	fs.Int("cols", defaults.Cols, "number of columns on the board")
	fs.Int("win-length", defaults.WinLength, "tokens in a line needed to win")
	fs.Bool("eager", false, "evaluate the whole game tree at startup")
	fs.Bool("debug", false, "log at debug level")
	fs.String("history-file", "/tmp/connect4.history", "readline history file")
	fs.Int("games", 10, "games per matchup in experiments")
	fs.String("output-dir", "results", "directory experiment records are written to")
	fs.Uint64("seed", 0, "seed of the random agents; 0 picks one")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	c.Dims = game.Dimensions{
		Rows:      v.GetInt("rows"),
		Cols:      v.GetInt("cols"),
		WinLength: v.GetInt("win-length"),
	}
	c.Eager = v.GetBool("eager")
	c.Debug = v.GetBool("debug")
	c.HistoryFile = v.GetString("history-file")
	c.Games = v.GetInt("games")
	c.OutputDir = v.GetString("output-dir")
	c.Seed = v.GetUint64("seed")

	if err := bitboard.CheckDimensions(c.Dims); err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Seed == 0 {
		c.Seed = frand.Uint64n(math.MaxUint64) + 1
	}
	return nil
}
