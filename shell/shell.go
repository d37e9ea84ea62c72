package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connect/config"
	"connect/game"
	"connect/gamemaster"
	"connect/searcher"
	"connect/searcher/agent"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
)

const (
	modePvP = iota
	modeAI
	modeWatch
)

// errQuit ends the loop on EOF or Ctrl-C.
var errQuit = errors.New("quit")

// lineReader is the part of readline the shell uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

type Shell struct {
	dims  game.Dimensions
	eager bool
	in    lineReader
	out   io.Writer

	// Scores do not depend on the role, so every agent shares one table.
	table *searcher.Table
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func New(cfg config.Config) (*Shell, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          ">> ",
		HistoryFile:     cfg.HistoryFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start readline: %w", err)
	}
	return newShell(cfg.Dims, cfg.Eager, l, l.Stdout()), nil
}

func newShell(dims game.Dimensions, eager bool, in lineReader, out io.Writer) *Shell {
	return &Shell{
		dims:  dims,
		eager: eager,
		in:    in,
		out:   out,
		table: searcher.NewTable(),
	}
}

// Loop shows the main menu and plays games until the input ends.
func (s *Shell) Loop() error {
	defer s.in.Close()

	s.println("Welcome to Connect4!")
	for {
		s.println(strings.Repeat("-", 46))
		s.println("Play PvP [1]")
		s.println("Play AI [2]")
		s.println("Watch AI vs AI [3]")
		mode, err := s.choose(">> ", 3)
		if err != nil {
			return s.quit(err)
		}

		var agents [2]agent.Agent
		switch mode {
		case modeAI:
			s.println("Play as Player 1 [1]")
			s.println("Play as Player 2 [2]")
			seat, err := s.choose(">> ", 2)
			if err != nil {
				return s.quit(err)
			}
			other := 1 - seat
			agents[other] = s.newAgent(agent.Role(other == 0))
		case modeWatch:
			agents[0] = s.newAgent(game.PlayerOne)
			agents[1] = s.newAgent(game.PlayerTwo)
		}

		if err := s.play(agents); err != nil {
			return s.quit(err)
		}
	}
}

func (s *Shell) quit(err error) error {
	if errors.Is(err, errQuit) {
		log.Debug().Msg("exiting readline loop...")
		return nil
	}
	return err
}

func (s *Shell) newAgent(role game.Cell) agent.Agent {
	if s.eager {
		return agent.NewEagerAgent(s.dims, role, agent.WithTable(s.table))
	}
	return agent.NewLazyAgent(s.dims, role, agent.WithTable(s.table))
}

// play runs one game. A nil agent is a human at the keyboard.
func (s *Shell) play(agents [2]agent.Agent) error {
	master := gamemaster.NewLocalEngine(s.dims)

	for !master.State().Over() {
		s.println(strings.Repeat("-", 23))
		s.println(master.String())
		seat := 0
		if master.Turn() == game.PlayerTwo {
			seat = 1
		}

		if a := agents[seat]; a != nil {
			col, metric, err := a.FindMove(master.Grid())
			if err != nil {
				s.printf("Engine failed: %v\n", err)
				return nil
			}
			log.Debug().Dur("duration", metric.Duration).Float64("score", metric.Score).Msgf("player %d chose column %d", seat+1, col+1)
			s.printf("Player %d plays column %d\n", seat+1, col+1)
			if _, err := master.Play(col); err != nil {
				return fmt.Errorf("engine played column %d: %w", col+1, err)
			}
			continue
		}

		col, err := s.choose(fmt.Sprintf("Player %d, choose a column [1-%d]: ", seat+1, master.Dimensions().Cols), master.Dimensions().Cols)
		if err != nil {
			return err
		}
		if _, err := master.Play(col); errors.Is(err, gamemaster.ErrInvalidMove) {
			s.println("Column is full")
		} else if err != nil {
			return err
		}
	}

	s.println(master.String())
	s.println(result(master.State()))
	return nil
}

func result(state game.State) string {
	switch state {
	case game.PlayerOneWon:
		return "Player 1 won"
	case game.PlayerTwoWon:
		return "Player 2 won"
	default:
		return "Tied"
	}
}

// choose prompts until the answer is a number in [1, n] and returns it zero based.
func (s *Shell) choose(prompt string, n int) (int, error) {
	for {
		s.in.SetPrompt(prompt)
		line, err := s.in.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return 0, errQuit
		}
		if err != nil {
			return 0, err
		}

		line = strings.TrimSpace(line)
		if line != "" && strings.Trim(line, "0123456789") == "" {
			if i, err := strconv.Atoi(line); err == nil && i >= 1 && i <= n {
				return i - 1, nil
			}
		}
		s.println("Invalid input")
	}
}

func (s *Shell) println(msg string) {
	io.WriteString(s.out, msg)
	io.WriteString(s.out, "\n")
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
