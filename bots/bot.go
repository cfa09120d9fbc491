// Package bots holds the move-selection strategies.
package bots

import (
	"math"

	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"chessmate/board"
	"chessmate/evaluation"
)

var (
	ErrNoLegalMove  = errors.New("no legal move")
	ErrResign       = errors.New("resigns")
	ErrInvalidDepth = errors.New("search depth must be at least 1")
	ErrUnknownBot   = errors.New("unknown bot")
)

// ChessBot is anything that can pick a move. The returned move is always
// one of pos.LegalMoves(). BestMove may push and pop moves while it works
// but leaves pos as it found it.
type ChessBot interface {
	BestMove(pos *board.Position) (*chess.Move, error)
	Name() string
}

// Bot names accepted by New.
const (
	KindRandom          = "random"
	KindNewborn         = "newborn"
	KindPawns           = "pawns"
	KindRandomCapture   = "random-capture"
	KindCaptureHighest  = "capture-highest"
	KindAvoidCapture    = "avoid-capture"
	KindGreedy          = "greedy"
	KindScholarsMate    = "scholars-mate"
	KindMinimax         = "minimax"
	KindMinimaxPosition = "minimax-position"
)

// New builds a bot by name. depth is only used by the minimax kinds.
func New(kind string, color chess.Color, depth int) (ChessBot, error) {
	switch kind {
	case KindRandom:
		return NewRandomBot(), nil
	case KindNewborn:
		return NewNewbornBot(), nil
	case KindPawns:
		return NewPrioritizePawnBot(), nil
	case KindRandomCapture:
		return NewRandomCaptureBot(), nil
	case KindCaptureHighest:
		return NewCaptureHighestValueBot(), nil
	case KindAvoidCapture:
		return NewAvoidCaptureBot(), nil
	case KindGreedy:
		return NewGreedyBot(color, evaluation.NewPiecePosition()), nil
	case KindScholarsMate:
		return NewScholarsMateBot(), nil
	case KindMinimax:
		return NewMinimaxBot(color, depth)
	case KindMinimaxPosition:
		return NewMinimaxBot(color, depth, WithEvaluator(evaluation.NewPiecePosition()))
	default:
		return nil, errors.Wrapf(ErrUnknownBot, "%q", kind)
	}
}

func legalMoves(pos *board.Position) ([]*chess.Move, error) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return nil, errors.Wrapf(ErrNoLegalMove, "%s", pos)
	}
	return moves, nil
}

// scoreAfter pushes m, scores the resulting board and pops m again, even
// when scoring fails.
func scoreAfter(pos *board.Position, m *chess.Move, eval evaluation.Evaluator) (float64, error) {
	if err := pos.Push(m); err != nil {
		return 0, err
	}
	defer pos.Pop()
	return eval.Evaluate(pos.Current().Board())
}

// bestByScore returns the move with the highest score. Ties go to the move
// seen first.
func bestByScore(moves []*chess.Move, score func(*chess.Move) (float64, error)) (*chess.Move, float64, error) {
	var best *chess.Move
	bestScore := math.Inf(-1)
	for _, m := range moves {
		s, err := score(m)
		if err != nil {
			return nil, 0, err
		}
		if best == nil || s > bestScore {
			best, bestScore = m, s
		}
	}
	return best, bestScore, nil
}

// perspective turns a White-relative score into one that color wants to
// maximize.
func perspective(color chess.Color) float64 {
	if color == chess.Black {
		return -1
	}
	return 1
}
