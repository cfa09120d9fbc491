package bots

import (
	"math"

	"github.com/notnil/chess"
	"github.com/samber/lo"

	"chessmate/board"
	"chessmate/evaluation"
)

// RandomCaptureBot takes the first capture on offer, or plays a random move
// when there is none.
type RandomCaptureBot struct {
	pick picker
}

func NewRandomCaptureBot() *RandomCaptureBot {
	return &RandomCaptureBot{pick: newPicker(nil)}
}

func (b *RandomCaptureBot) BestMove(pos *board.Position) (*chess.Move, error) {
	moves, err := legalMoves(pos)
	if err != nil {
		return nil, err
	}
	if capture, ok := lo.Find(moves, pos.IsCapture); ok {
		return capture, nil
	}
	return moves[b.pick(len(moves))], nil
}

func (b *RandomCaptureBot) Name() string {
	return "Random Capture"
}

// CaptureHighestValueBot takes the most valuable piece on offer. A capture
// scores the value of its victim and every other move scores 0, so quiet
// moves, promotions included, only play when nothing can be taken. Ties go
// to the first move enumerated.
type CaptureHighestValueBot struct {
	values evaluation.PieceValues
}

func NewCaptureHighestValueBot() *CaptureHighestValueBot {
	return &CaptureHighestValueBot{values: evaluation.Conventional}
}

func (b *CaptureHighestValueBot) BestMove(pos *board.Position) (*chess.Move, error) {
	moves, err := legalMoves(pos)
	if err != nil {
		return nil, err
	}
	cur := pos.Current().Board()
	best, _, err := bestByScore(moves, func(m *chess.Move) (float64, error) {
		if !pos.IsCapture(m) {
			return 0, nil
		}
		if m.HasTag(chess.EnPassant) {
			return b.values[chess.Pawn], nil
		}
		return b.values[cur.Piece(m.S2()).Type()], nil
	})
	return best, err
}

func (b *CaptureHighestValueBot) Name() string {
	return "Capture Highest Value"
}

// AvoidCaptureBot looks one ply ahead and plays the move that changes the
// material balance least, so it never captures while a quiet move exists.
// Ties go to the first move enumerated.
type AvoidCaptureBot struct {
	eval evaluation.Evaluator
}

func NewAvoidCaptureBot() *AvoidCaptureBot {
	return &AvoidCaptureBot{eval: evaluation.NewMaterial()}
}

func (b *AvoidCaptureBot) BestMove(pos *board.Position) (*chess.Move, error) {
	moves, err := legalMoves(pos)
	if err != nil {
		return nil, err
	}
	before, err := b.eval.Evaluate(pos.Current().Board())
	if err != nil {
		return nil, err
	}
	best, _, err := bestByScore(moves, func(m *chess.Move) (float64, error) {
		after, err := scoreAfter(pos, m, b.eval)
		return -math.Abs(after - before), err
	})
	return best, err
}

func (b *AvoidCaptureBot) Name() string {
	return "Avoid Capture"
}

// GreedyBot looks one ply ahead with its evaluator and plays the move that
// leaves the best score for its color.
type GreedyBot struct {
	Color chess.Color
	eval  evaluation.Evaluator
}

func NewGreedyBot(color chess.Color, eval evaluation.Evaluator) *GreedyBot {
	return &GreedyBot{Color: color, eval: eval}
}

func (b *GreedyBot) BestMove(pos *board.Position) (*chess.Move, error) {
	moves, err := legalMoves(pos)
	if err != nil {
		return nil, err
	}
	sign := perspective(b.Color)
	best, _, err := bestByScore(moves, func(m *chess.Move) (float64, error) {
		after, err := scoreAfter(pos, m, b.eval)
		return sign * after, err
	})
	return best, err
}

func (b *GreedyBot) Name() string {
	return "Greedy (" + b.eval.Name() + ")"
}
