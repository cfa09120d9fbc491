package evaluation

import "github.com/notnil/chess"

const (
	DoubledPawnPenalty  = 15
	IsolatedPawnPenalty = 25
)

// PawnStructure wraps another evaluator and penalizes doubled and isolated
// pawns.
type PawnStructure struct {
	Inner Evaluator
}

func NewPawnStructure(inner Evaluator) PawnStructure {
	return PawnStructure{Inner: inner}
}

func (e PawnStructure) Name() string {
	return e.Inner.Name() + "+PawnStructure"
}

func (e PawnStructure) Evaluate(b *chess.Board) (float64, error) {
	score, err := e.Inner.Evaluate(b)
	if err != nil {
		return 0, err
	}

	var white, black [8]int
	for sq := chess.A1; sq <= chess.H8; sq++ {
		switch b.Piece(sq) {
		case chess.WhitePawn:
			white[sq.File()]++
		case chess.BlackPawn:
			black[sq.File()]++
		}
	}
	return score - pawnPenalty(white) + pawnPenalty(black), nil
}

func pawnPenalty(files [8]int) float64 {
	var penalty float64
	for file, count := range files {
		if count == 0 {
			continue
		}
		if count > 1 {
			penalty += DoubledPawnPenalty * float64(count-1)
		}
		left := file > 0 && files[file-1] > 0
		right := file < 7 && files[file+1] > 0
		if !left && !right {
			penalty += IsolatedPawnPenalty * float64(count)
		}
	}
	return penalty
}
