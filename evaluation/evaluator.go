// Package evaluation scores static positions. Every score is from White's
// point of view: positive favors White, negative favors Black.
package evaluation

import (
	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

var (
	ErrUnimplementedEvaluation = errors.New("evaluate not implemented")
	ErrInvalidPosition         = errors.New("invalid position")
)

// Evaluator maps a position to a score.
type Evaluator interface {
	Evaluate(b *chess.Board) (float64, error)
	Name() string
}

// Base is the zero evaluator. Its Evaluate always fails with
// ErrUnimplementedEvaluation.
type Base struct{}

func (Base) Name() string { return "Base" }

func (Base) Evaluate(*chess.Board) (float64, error) {
	return 0, ErrUnimplementedEvaluation
}

// Material sums piece values, White minus Black.
type Material struct {
	Values PieceValues
}

func NewMaterial() Material {
	return Material{Values: Conventional}
}

func (Material) Name() string { return "Material" }

func (e Material) Evaluate(b *chess.Board) (float64, error) {
	if b == nil {
		return 0, errors.Wrap(ErrInvalidPosition, "nil board")
	}
	values := e.Values
	if values == nil {
		values = Conventional
	}

	var score float64
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := b.Piece(sq)
		if piece == chess.NoPiece {
			continue
		}
		score += sign(piece.Color()) * values[piece.Type()]
	}
	return score, nil
}

// PiecePosition adds a piece-square bonus to the material value of every
// piece.
type PiecePosition struct {
	Values PieceValues
	Tables PieceTables
}

func NewPiecePosition() PiecePosition {
	return PiecePosition{Values: Conventional, Tables: ConventionalTables}
}

func (PiecePosition) Name() string { return "PiecePosition" }

func (e PiecePosition) Evaluate(b *chess.Board) (float64, error) {
	if b == nil {
		return 0, errors.Wrap(ErrInvalidPosition, "nil board")
	}
	values, tables := e.Values, e.Tables
	if values == nil {
		values = Conventional
	}
	if tables == nil {
		tables = ConventionalTables
	}

	var score float64
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := b.Piece(sq)
		if piece == chess.NoPiece {
			continue
		}
		kind, color := piece.Type(), piece.Color()
		score += sign(color) * (values[kind] + TableValue(kind, color, sq, tables))
	}
	return score, nil
}

func sign(c chess.Color) float64 {
	if c == chess.Black {
		return -1
	}
	return 1
}
