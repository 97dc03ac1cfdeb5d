// Package perft counts move-generation tree sizes, the standard way to
// check a move generator against known values.
package perft

import (
	"context"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// Entry is the subtree size below one root move.
type Entry struct {
	Move  chess.Move
	Nodes uint64
}

// Count returns the number of positions reachable in exactly depth plies.
// The board is restored before returning.
func Count(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := engine.LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		engine.MakeMove(board, move)
		nodes += Count(board, depth-1)
		engine.UnmakeMove(board)
	}
	return nodes
}

// Divide returns the subtree size below each legal root move, in legal-move order.
func Divide(board *chess.Board, depth int) []Entry {
	if depth < 1 {
		return nil
	}
	moves := engine.LegalMoves(board)
	entries := make([]Entry, len(moves))
	for i, move := range moves {
		engine.MakeMove(board, move)
		entries[i] = Entry{Move: move, Nodes: Count(board, depth-1)}
		engine.UnmakeMove(board)
	}
	return entries
}

// DivideParallel is Divide with root moves spread over a worker pool, each
// worker owning a copy of the board. The caller's board is not modified.
func DivideParallel(ctx context.Context, board *chess.Board, depth, workers int) ([]Entry, error) {
	if depth < 1 {
		return nil, nil
	}
	moves := engine.LegalMoves(board)

	pool := worker.NewPool(expand, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	go func() {
		defer pool.Close()
		for i, move := range moves {
			if ctx.Err() != nil {
				pool.Stop()
				return
			}
			pool.Submit(worker.WorkItem{Index: i, Board: board.Copy(), Move: move, Depth: depth - 1})
		}
	}()

	entries := make([]Entry, len(moves))
	for result := range pool.Results() {
		entries[result.Index] = Entry{Move: result.Move, Nodes: result.Nodes}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// CountParallel returns the same total as Count using DivideParallel.
func CountParallel(ctx context.Context, board *chess.Board, depth, workers int) (uint64, error) {
	if depth <= 1 {
		return Count(board.Copy(), depth), nil
	}
	entries, err := DivideParallel(ctx, board, depth, workers)
	if err != nil {
		return 0, err
	}
	return Total(entries), nil
}

func expand(item worker.WorkItem) worker.ProcessResult {
	engine.MakeMove(item.Board, item.Move)
	return worker.ProcessResult{
		Index: item.Index,
		Move:  item.Move,
		Nodes: Count(item.Board, item.Depth),
	}
}

// Total sums the node counts of a divide.
func Total(entries []Entry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
