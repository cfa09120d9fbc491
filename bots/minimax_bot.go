package bots

import (
	"fmt"
	"math"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"chessmate/board"
	"chessmate/evaluation"
	"chessmate/transposition"
)

// MinimaxBot searches a fixed number of plies and plays the move whose
// subtree scores best for Color. White maximizes, Black minimizes. Ties go
// to the first move enumerated, with or without alpha-beta pruning.
//
// The bot holds configuration only. When a Table is attached, leaf scores
// come from it and the table's evaluator replaces Evaluator. The Table is
// not safe for concurrent use, so bots sharing one must not search at the
// same time.
type MinimaxBot struct {
	Depth     int
	Color     chess.Color
	Evaluator evaluation.Evaluator
	AlphaBeta bool
	Table     *transposition.Table
}

type MinimaxOption func(*MinimaxBot)

func WithEvaluator(e evaluation.Evaluator) MinimaxOption {
	return func(b *MinimaxBot) { b.Evaluator = e }
}

func WithAlphaBeta(enabled bool) MinimaxOption {
	return func(b *MinimaxBot) { b.AlphaBeta = enabled }
}

func WithTable(t *transposition.Table) MinimaxOption {
	return func(b *MinimaxBot) { b.Table = t }
}

// NewMinimaxBot returns a Material-evaluating bot with alpha-beta enabled
// unless overridden.
func NewMinimaxBot(color chess.Color, depth int, opts ...MinimaxOption) (*MinimaxBot, error) {
	if depth < 1 {
		return nil, errors.Wrapf(ErrInvalidDepth, "got %d", depth)
	}
	b := &MinimaxBot{
		Depth:     depth,
		Color:     color,
		Evaluator: evaluation.NewMaterial(),
		AlphaBeta: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.Table != nil {
		b.Evaluator = b.Table.Evaluator()
	}
	return b, nil
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
}

func (b *MinimaxBot) BestMove(pos *board.Position) (*chess.Move, error) {
	if b.Depth < 1 {
		return nil, errors.Wrapf(ErrInvalidDepth, "got %d", b.Depth)
	}
	moves, err := legalMoves(pos)
	if err != nil {
		return nil, err
	}

	s := &search{bot: b, pos: pos}
	maximizing := b.Color == chess.White
	alpha, beta := math.Inf(-1), math.Inf(1)

	var best *chess.Move
	var bestScore float64
	for _, m := range moves {
		score, err := s.child(m, b.Depth-1, alpha, beta, !maximizing)
		if err != nil {
			return nil, err
		}
		if best == nil || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			best, bestScore = m, score
		}
		if maximizing {
			alpha = math.Max(alpha, bestScore)
		} else {
			beta = math.Min(beta, bestScore)
		}
	}

	log.Debug().
		Str("bot", b.Name()).
		Str("move", best.String()).
		Float64("score", bestScore).
		Int("nodes", s.nodes).
		Int("cacheHits", s.hits).
		Msg("minimax-search-done")
	return best, nil
}

// search carries the per-call state of one BestMove.
type search struct {
	bot   *MinimaxBot
	pos   *board.Position
	nodes int
	hits  int
}

// child scores the subtree under m and always undoes m before returning.
func (s *search) child(m *chess.Move, depth int, alpha, beta float64, maximizing bool) (float64, error) {
	if err := s.pos.Push(m); err != nil {
		return 0, err
	}
	defer s.pos.Pop()
	return s.minimax(depth, alpha, beta, maximizing)
}

func (s *search) minimax(depth int, alpha, beta float64, maximizing bool) (float64, error) {
	s.nodes++
	if depth == 0 {
		return s.leaf()
	}
	moves := s.pos.LegalMoves()
	if len(moves) == 0 {
		return s.leaf()
	}

	if maximizing {
		value := math.Inf(-1)
		for _, m := range moves {
			v, err := s.child(m, depth-1, alpha, beta, false)
			if err != nil {
				return 0, err
			}
			value = math.Max(value, v)
			alpha = math.Max(alpha, value)
			if s.bot.AlphaBeta && beta <= alpha {
				break
			}
		}
		return value, nil
	}

	value := math.Inf(1)
	for _, m := range moves {
		v, err := s.child(m, depth-1, alpha, beta, true)
		if err != nil {
			return 0, err
		}
		value = math.Min(value, v)
		beta = math.Min(beta, value)
		if s.bot.AlphaBeta && beta <= alpha {
			break
		}
	}
	return value, nil
}

// leaf scores the current position statically. Terminal positions are
// scored the same way; mate is not special-cased.
func (s *search) leaf() (float64, error) {
	b := s.pos.Current().Board()
	if s.bot.Table == nil {
		return s.bot.Evaluator.Evaluate(b)
	}
	score, hit, err := s.bot.Table.Score(b)
	if hit {
		s.hits++
	}
	return score, err
}
