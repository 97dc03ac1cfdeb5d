// Package search selects moves for the automated opponent with an
// iterative-deepening negamax search and alpha-beta pruning, bounded by a
// wall-clock budget.
package search

import (
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// infinity bounds every reachable material score and is safe to negate.
const infinity = 1 << 30

// Result describes the outcome of a search.
type Result struct {
	Move    chess.Move    // Best move of the deepest completed iteration
	Score   int           // Its score from the mover's point of view
	Depth   int           // Depth of the deepest completed iteration (0 if none)
	Nodes   uint64        // Positions visited across all iterations
	Elapsed time.Duration // Wall-clock time spent
	Found   bool          // False if no iteration completed or there was no legal move
}

// Searcher runs iterative-deepening negamax searches.
type Searcher struct {
	baseDepth     int
	maxExtraDepth int
	now           func() time.Time
	log           io.Writer
	verbosity     int
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithDepths sets the first iteration's depth and how many deeper
// iterations may follow it.
func WithDepths(base, maxExtra int) Option {
	return func(s *Searcher) {
		if base >= 1 {
			s.baseDepth = base
		}
		if maxExtra >= 0 {
			s.maxExtraDepth = maxExtra
		}
	}
}

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Searcher) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLog sends per-iteration progress to w at config.Verbose or above.
func WithLog(w io.Writer, verbosity int) Option {
	return func(s *Searcher) {
		s.log = w
		s.verbosity = verbosity
	}
}

// New creates a Searcher. Defaults match config.NewSearchConfig.
func New(opts ...Option) *Searcher {
	defaults := config.NewSearchConfig()
	s := &Searcher{
		baseDepth:     defaults.BaseDepth,
		maxExtraDepth: defaults.MaxExtraDepth,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig creates a Searcher from the search and logging settings of cfg.
func NewFromConfig(cfg *config.Config, opts ...Option) *Searcher {
	base := []Option{
		WithDepths(cfg.Search.BaseDepth, cfg.Search.MaxExtraDepth),
		WithLog(cfg.LogFile, cfg.Verbosity),
	}
	return New(append(base, opts...)...)
}

// FindBestMove searches the board with default settings and returns the
// chosen move. It blocks for at most roughly budget.
func FindBestMove(board *chess.Board, budget time.Duration) (chess.Move, bool) {
	r := New().Search(board, budget)
	return r.Move, r.Found
}

// Search runs iterations of increasing depth until the deepest allowed
// depth completes or the budget runs out. An iteration cut short by the
// deadline is discarded. The board is mutated during the search and left
// exactly as it was found.
func (s *Searcher) Search(board *chess.Board, budget time.Duration) Result {
	start := s.now()
	deadline := start.Add(budget)
	var result Result

	for depth := s.baseDepth; depth <= s.baseDepth+s.maxExtraDepth; depth++ {
		n := &negamaxer{board: board, deadline: deadline, now: s.now}
		score, move, completed := n.search(depth, -infinity, infinity)
		result.Nodes += n.nodes
		if !completed {
			s.logf("depth=%d timeout nodes=%d elapsed=%s", depth, result.Nodes, s.now().Sub(start))
			break
		}
		if move.IsZero() {
			// No legal move at the root; deeper iterations cannot change that.
			break
		}
		result.Move, result.Score, result.Depth, result.Found = move, score, depth, true
		s.logf("depth=%d score=%d best=%s nodes=%d elapsed=%s", depth, score, move, result.Nodes, s.now().Sub(start))
	}

	result.Elapsed = s.now().Sub(start)
	return result
}

func (s *Searcher) logf(format string, args ...interface{}) {
	if s.log == nil || s.verbosity < config.Verbose {
		return
	}
	fmt.Fprintf(s.log, format+"\n", args...)
}

// negamaxer holds the per-iteration search state.
type negamaxer struct {
	board    *chess.Board
	deadline time.Time
	now      func() time.Time
	nodes    uint64
}

// search returns the fail-hard negamax score of the position from the side
// to move's point of view and the move that first raised alpha. completed
// is false if the deadline passed; the score is then meaningless but the
// board has still been restored.
func (n *negamaxer) search(depth, alpha, beta int) (score int, best chess.Move, completed bool) {
	if !n.now().Before(n.deadline) {
		return 0, chess.NoMove, false
	}
	n.nodes++

	if depth == 0 {
		return engine.MaterialScore(n.board), chess.NoMove, true
	}

	moves := orderMoves(n.board, engine.LegalMoves(n.board))
	if len(moves) == 0 {
		// Mate and stalemate are scored by material like any other leaf.
		return engine.MaterialScore(n.board), chess.NoMove, true
	}

	value := -infinity
	for _, move := range moves {
		engine.MakeMove(n.board, move)
		childScore, _, ok := n.search(depth-1, -beta, -alpha)
		engine.UnmakeMove(n.board)
		if !ok {
			return 0, chess.NoMove, false
		}

		if -childScore > value {
			value = -childScore
		}
		if value > alpha {
			alpha = value
			best = move
		}
		if alpha >= beta {
			return alpha, best, true
		}
	}
	return value, best, true
}
