// Package output writes perft, search and game reports as text or JSON.
package output

import (
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/perft"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// PerftReport is the result of one perft run.
type PerftReport struct {
	FEN       string       `json:"fen"`
	Depth     int          `json:"depth"`
	Nodes     uint64       `json:"nodes"`
	Reference uint64       `json:"reference,omitempty"`
	Divide    []DivideLine `json:"divide,omitempty"`
	ElapsedMS int64        `json:"elapsedMs"`
}

// DivideLine is the subtree size below one root move.
type DivideLine struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// SearchReport is the engine's choice in one position.
type SearchReport struct {
	FEN       string `json:"fen"`
	BestMove  string `json:"bestMove,omitempty"`
	Score     int    `json:"score"`
	Depth     int    `json:"depth"`
	Nodes     uint64 `json:"nodes"`
	ElapsedMS int64  `json:"elapsedMs"`
}

// GameReport is a finished or abandoned game.
type GameReport struct {
	InitialFEN string       `json:"initialFEN"`
	Moves      []MoveRecord `json:"moves,omitempty"`
	Result     string       `json:"result"`
	PlyCount   int          `json:"plyCount"`
	FinalFEN   string       `json:"finalFEN"`
}

// MoveRecord describes one ply of a GameReport.
type MoveRecord struct {
	MoveNumber uint   `json:"moveNumber"`
	Colour     string `json:"colour"`
	Move       string `json:"move"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  bool   `json:"promotion,omitempty"`
	Castle     bool   `json:"castle,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// NewPerftReport builds a report from a divide. A zero reference means
// none was computed.
func NewPerftReport(fen string, depth int, entries []perft.Entry, nodes, reference uint64, elapsed time.Duration) *PerftReport {
	r := &PerftReport{
		FEN:       fen,
		Depth:     depth,
		Nodes:     nodes,
		Reference: reference,
		ElapsedMS: elapsed.Milliseconds(),
	}
	for _, e := range entries {
		r.Divide = append(r.Divide, DivideLine{Move: e.Move.Algebraic(), Nodes: e.Nodes})
	}
	return r
}

// NewSearchReport builds a report from a search result.
func NewSearchReport(fen string, result search.Result) *SearchReport {
	r := &SearchReport{
		FEN:       fen,
		Score:     result.Score,
		Depth:     result.Depth,
		Nodes:     result.Nodes,
		ElapsedMS: result.Elapsed.Milliseconds(),
	}
	if result.Found {
		r.BestMove = result.Move.Algebraic()
	}
	return r
}

// NewGameReport replays the game's history from its start position.
// With includeFEN set each move carries the position after it.
func NewGameReport(g *game.Game, includeFEN bool) *GameReport {
	r := &GameReport{
		InitialFEN: g.StartFEN(),
		Result:     g.Result(),
		FinalFEN:   g.FEN(),
	}
	if r.Result == "" {
		r.Result = "*"
	}

	board, err := engine.NewBoardFromFEN(g.StartFEN())
	if err != nil {
		return r
	}
	history := g.History()
	r.PlyCount = len(history)
	r.Moves = make([]MoveRecord, 0, len(history))
	for _, move := range history {
		rec := convertMove(move, board.MoveNumber)
		engine.MakeMove(board, move)
		if includeFEN {
			rec.FEN = engine.BoardToFEN(board)
		}
		r.Moves = append(r.Moves, rec)
	}
	return r
}

func convertMove(move chess.Move, moveNumber uint) MoveRecord {
	rec := MoveRecord{
		MoveNumber: moveNumber,
		Colour:     colourName(chess.ExtractColour(move.Piece)),
		Move:       move.Algebraic(),
		Piece:      pieceTypeName(chess.ExtractPiece(move.Piece)),
		Promotion:  move.Promotion,
		Castle:     move.Castle,
	}
	if move.IsCapture() {
		rec.Captured = pieceTypeName(chess.ExtractPiece(move.Captured))
	}
	return rec
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the lowercase name of a piece type.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	}
	return ""
}
