package bots

import (
	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"chessmate/board"
)

var scholarsMate = [...]string{"e2e4", "f1c4", "d1h5", "h5f7"}

// ScholarsMateBot plays the four-move scholar's mate as White and resigns
// as soon as the sequence cannot continue: on Black, from a non-standard
// start, after move four, or when the next move is illegal.
type ScholarsMateBot struct{}

func NewScholarsMateBot() *ScholarsMateBot {
	return &ScholarsMateBot{}
}

func (b *ScholarsMateBot) BestMove(pos *board.Position) (*chess.Move, error) {
	moves, err := legalMoves(pos)
	if err != nil {
		return nil, err
	}
	if pos.Turn() != chess.White {
		return nil, errors.Wrap(ErrResign, "scholar's mate is a white opening")
	}
	n := pos.FullMoveNumber()
	if n == 1 && pos.FEN() != board.StartFEN {
		return nil, errors.Wrap(ErrResign, "non-standard start")
	}
	if n < 1 || n > len(scholarsMate) {
		return nil, errors.Wrapf(ErrResign, "sequence over at move %d", n)
	}

	want := scholarsMate[n-1]
	for _, m := range moves {
		if m.String() == want {
			return m, nil
		}
	}
	return nil, errors.Wrapf(ErrResign, "%s is blocked", want)
}

func (b *ScholarsMateBot) Name() string {
	return "Scholar's Mate"
}
