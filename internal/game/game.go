// Package game holds one game session: the board, the cached legal-move
// list and status flags, and access to the automated opponent. It is the
// surface a presentation layer drives.
package game

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// Game is a single game in progress. It is not safe for concurrent use.
type Game struct {
	cfg      *config.Config
	searcher *search.Searcher
	startFEN string

	board   *chess.Board
	legal   []chess.Move
	outcome engine.Outcome
	inCheck bool
}

// New starts a game from the standard initial position.
func New(cfg *config.Config, opts ...search.Option) (*Game, error) {
	return NewFromFEN(engine.InitialFEN, cfg, opts...)
}

// NewFromFEN starts a game from the given position.
func NewFromFEN(fen string, cfg *config.Config, opts ...search.Option) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:      cfg,
		searcher: search.NewFromConfig(cfg, opts...),
		startFEN: fen,
		board:    board,
	}
	g.refresh()
	return g, nil
}

// refresh recomputes the legal moves and status after any change.
func (g *Game) refresh() {
	g.legal, g.outcome = engine.Analyze(g.board)
	g.inCheck = engine.IsInCheck(g.board, g.board.ToMove)
}

// LegalMoves returns the legal moves for the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return append([]chess.Move(nil), g.legal...)
}

// Play applies a move if it is in the current legal-move list, matching by
// start and end square. Otherwise it returns ErrIllegalMove, or
// ErrGameOver in a terminal position, and the game is unchanged.
func (g *Game) Play(move chess.Move) error {
	if g.outcome.IsTerminal() {
		return g.moveError(errors.ErrGameOver, move.Algebraic())
	}
	legal, ok := engine.FindMove(g.legal, move)
	if !ok {
		return g.moveError(errors.ErrIllegalMove, move.Algebraic())
	}
	engine.MakeMove(g.board, legal)
	if err := g.board.Validate(); err != nil {
		engine.UnmakeMove(g.board)
		return errors.Wrapf(err, "after %s", legal)
	}
	g.refresh()
	return nil
}

// PlayText parses move text such as "e2e4" and plays it.
func (g *Game) PlayText(text string) error {
	from, to, err := engine.ParseSquares(text)
	if err != nil {
		return err
	}
	return g.Play(chess.Move{From: from, To: to})
}

func (g *Game) moveError(err error, text string) error {
	return &errors.MoveError{
		Err:      err,
		PlyNum:   g.board.Ply() + 1,
		MoveText: text,
		FEN:      engine.BoardToFEN(g.board),
	}
}

// Undo takes back the last move. It returns false if there is nothing to undo.
func (g *Game) Undo() bool {
	if !engine.UnmakeMove(g.board) {
		return false
	}
	g.refresh()
	return true
}

// Reset discards the game and starts again from the original position.
func (g *Game) Reset() {
	board, err := engine.NewBoardFromFEN(g.startFEN)
	if err != nil {
		// The start position parsed when the game was created.
		board = engine.NewInitialBoard()
	}
	g.board = board
	g.refresh()
}

// EngineMove lets the automated opponent choose and play a move for the
// side to move, blocking for up to the configured time budget.
func (g *Game) EngineMove() (search.Result, error) {
	if g.outcome.IsTerminal() {
		return search.Result{}, g.moveError(errors.ErrGameOver, "")
	}
	result := g.searcher.Search(g.board, g.cfg.Search.TimeBudget)
	if !result.Found {
		// Not even the first iteration finished; fall back to the first legal move.
		result.Move = g.legal[0]
		result.Found = true
		g.cfg.Logf(config.Normal, "search budget too small, playing %s", result.Move)
	}
	if err := g.Play(result.Move); err != nil {
		return result, err
	}
	return result, nil
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.inCheck
}

// Checkmate reports whether the side to move has been checkmated.
func (g *Game) Checkmate() bool {
	return g.outcome == engine.Checkmate
}

// Stalemate reports whether the side to move is stalemated.
func (g *Game) Stalemate() bool {
	return g.outcome == engine.Stalemate
}

// Over reports whether no further moves can be played.
func (g *Game) Over() bool {
	return g.outcome.IsTerminal()
}

// Outcome returns the current outcome classification.
func (g *Game) Outcome() engine.Outcome {
	return g.outcome
}

// Result describes a finished game, or returns "" while it is in progress.
func (g *Game) Result() string {
	switch g.outcome {
	case engine.Checkmate:
		return fmt.Sprintf("%s wins by checkmate", g.board.ToMove.Opposite())
	case engine.Stalemate:
		return "Stalemate"
	}
	return ""
}

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove
}

// Board returns a copy of the current board for display.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// History returns the moves played so far.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.board.History...)
}

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}
