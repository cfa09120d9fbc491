package bots

import (
	"sort"

	"github.com/notnil/chess"
	"github.com/samber/lo"

	"chessmate/board"
	"chessmate/evaluation"
)

// OrderMVVLVA returns the captures in pos ordered most valuable victim,
// least valuable aggressor first: by victim value minus aggressor value,
// descending, keeping enumeration order among equals. Without captures it
// returns every legal move in enumeration order.
func OrderMVVLVA(pos *board.Position, values evaluation.PieceValues) []*chess.Move {
	moves := pos.LegalMoves()
	captures := lo.Filter(moves, func(m *chess.Move, _ int) bool {
		return pos.IsCapture(m)
	})
	if len(captures) == 0 {
		return moves
	}

	cur := pos.Current().Board()
	gain := lo.Map(captures, func(m *chess.Move, _ int) float64 {
		victim := chess.Pawn
		if !m.HasTag(chess.EnPassant) {
			victim = cur.Piece(m.S2()).Type()
		}
		return values[victim] - values[cur.Piece(m.S1()).Type()]
	})
	idx := lo.Range(len(captures))
	sort.SliceStable(idx, func(i, j int) bool {
		return gain[idx[i]] > gain[idx[j]]
	})
	return lo.Map(idx, func(i int, _ int) *chess.Move {
		return captures[i]
	})
}
