package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/output"
)

// session drives one game from line-oriented input.
type session struct {
	g        *game.Game
	cfg      *config.Config
	humans   [2]bool
	maxPlies int
	in       *bufio.Scanner
	out      io.Writer
}

// runPlay plays a game on cfg.OutputFile, reading human moves from in, and
// writes the game report when it ends.
func runPlay(cfg *config.Config, in io.Reader) error {
	humans, err := parseHumanSide(*humanSide)
	if err != nil {
		return err
	}
	g, err := game.NewFromFEN(startFEN(), cfg)
	if err != nil {
		return err
	}
	s := newSession(g, cfg, humans, *maxPlies, in)
	if err := s.loop(); err != nil {
		return err
	}

	w := output.NewWriter(cfg)
	if err := w.WriteGame(output.NewGameReport(g, cfg.Format == config.JSONFormat)); err != nil {
		return err
	}
	return w.Close()
}

func newSession(g *game.Game, cfg *config.Config, humans [2]bool, maxPlies int, in io.Reader) *session {
	return &session{
		g:        g,
		cfg:      cfg,
		humans:   humans,
		maxPlies: maxPlies,
		in:       bufio.NewScanner(in),
		out:      cfg.OutputFile,
	}
}

func (s *session) anyHuman() bool {
	return s.humans[0] || s.humans[1]
}

// loop alternates turns until the game ends with no human left to act,
// the ply limit is reached, or a human quits.
func (s *session) loop() error {
	announced := false
	for {
		if s.g.Over() {
			if !announced {
				fmt.Fprint(s.out, s.g.Board())
				fmt.Fprintf(s.out, "%s\n", s.g.Result())
				s.cfg.Logf(config.Normal, "game over after %d plies: %s", len(s.g.History()), s.g.Result())
				announced = true
			}
			if !s.anyHuman() {
				return nil
			}
		} else {
			announced = false
			if !s.humans[s.g.ToMove()] {
				if !s.anyHuman() && s.maxPlies > 0 && len(s.g.History()) >= s.maxPlies {
					s.cfg.Logf(config.Normal, "stopping after %d plies", s.maxPlies)
					return nil
				}
				if err := s.engineTurn(); err != nil {
					return err
				}
				continue
			}
			fmt.Fprint(s.out, s.g.Board())
			if s.g.InCheck() {
				fmt.Fprintf(s.out, "%s is in check\n", s.g.ToMove())
			}
		}

		fmt.Fprintf(s.out, "%s to move: ", s.g.ToMove())
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		if quit := s.command(strings.TrimSpace(s.in.Text())); quit {
			return nil
		}
	}
}

func (s *session) engineTurn() error {
	result, err := s.g.EngineMove()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s plays %s\n", chess.ExtractColour(result.Move.Piece), result.Move)
	s.cfg.Logf(config.Verbose, "depth %d score %d nodes %d in %s", result.Depth, result.Score, result.Nodes, result.Elapsed)
	return nil
}

// command handles one line of human input and reports whether to quit.
func (s *session) command(line string) bool {
	switch strings.ToLower(line) {
	case "":
	case "q", "quit":
		return true
	case "u", "undo":
		s.undo()
	case "r", "reset":
		s.g.Reset()
	default:
		err := s.g.PlayText(line)
		switch {
		case err == nil:
		case stderrors.Is(err, errors.ErrGameOver):
			fmt.Fprintln(s.out, "Game over: u to undo, r to reset, q to quit")
		case stderrors.Is(err, errors.ErrInvalidMoveText):
			fmt.Fprintf(s.out, "Cannot read %q; enter moves like e2e4\n", line)
		case stderrors.Is(err, errors.ErrIllegalMove):
			fmt.Fprintf(s.out, "Illegal move: %s\n", line)
		default:
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
	return false
}

// undo takes back moves up to and including the last one a human made.
func (s *session) undo() {
	history := s.g.History()
	if len(history) == 0 {
		fmt.Fprintln(s.out, "Nothing to undo")
		return
	}
	for i := len(history) - 1; i >= 0; i-- {
		mover := chess.ExtractColour(history[i].Piece)
		s.g.Undo()
		if s.humans[mover] {
			return
		}
	}
}
