package search

import (
	"sort"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

type scoredMove struct {
	move  chess.Move
	score int
}

// orderMoves sorts moves by the mover's material balance one ply after
// playing each, best first, so captures of valuable pieces are tried
// early. Ties keep generation order, which keeps the search deterministic.
func orderMoves(board *chess.Board, moves []chess.Move) []chess.Move {
	scored := make([]scoredMove, len(moves))
	for i, move := range moves {
		engine.MakeMove(board, move)
		// The opponent is now to move, so negate to get the mover's view.
		scored[i] = scoredMove{move: move, score: -engine.MaterialScore(board)}
		engine.UnmakeMove(board)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	for i := range scored {
		moves[i] = scored[i].move
	}
	return moves
}
