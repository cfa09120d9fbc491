package bots

import (
	"math/rand"

	"github.com/notnil/chess"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"chessmate/board"
)

// picker draws an index in [0, n).
type picker func(n int) int

func newPicker(r *rand.Rand) picker {
	if r == nil {
		return frand.Intn
	}
	return r.Intn
}

// RandomBot plays a uniformly random legal move.
type RandomBot struct {
	pick picker
}

func NewRandomBot() *RandomBot {
	return &RandomBot{pick: newPicker(nil)}
}

// NewSeededRandomBot draws from r, for reproducible games.
func NewSeededRandomBot(r *rand.Rand) *RandomBot {
	return &RandomBot{pick: newPicker(r)}
}

func (b *RandomBot) BestMove(pos *board.Position) (*chess.Move, error) {
	moves, err := legalMoves(pos)
	if err != nil {
		return nil, err
	}
	return moves[b.pick(len(moves))], nil
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}

// PrioritizePawnBot moves a random pawn when it can and falls back to any
// random move otherwise.
type PrioritizePawnBot struct {
	pick picker
}

func NewPrioritizePawnBot() *PrioritizePawnBot {
	return &PrioritizePawnBot{pick: newPicker(nil)}
}

func (b *PrioritizePawnBot) BestMove(pos *board.Position) (*chess.Move, error) {
	moves, err := legalMoves(pos)
	if err != nil {
		return nil, err
	}
	cur := pos.Current().Board()
	pawnMoves := lo.Filter(moves, func(m *chess.Move, _ int) bool {
		return cur.Piece(m.S1()).Type() == chess.Pawn
	})
	if len(pawnMoves) > 0 {
		moves = pawnMoves
	}
	return moves[b.pick(len(moves))], nil
}

func (b *PrioritizePawnBot) Name() string {
	return "Prioritize Pawn Moves"
}
