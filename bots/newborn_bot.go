package bots

import (
	"github.com/notnil/chess"

	"chessmate/board"
)

// NewbornBot always plays the first legal move.
type NewbornBot struct{}

func NewNewbornBot() *NewbornBot {
	return &NewbornBot{}
}

func (b *NewbornBot) BestMove(pos *board.Position) (*chess.Move, error) {
	moves, err := legalMoves(pos)
	if err != nil {
		return nil, err
	}
	return moves[0], nil
}

func (b *NewbornBot) Name() string {
	return "Newborn"
}
