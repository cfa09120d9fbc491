// Package board adapts github.com/notnil/chess to the push/pop shape the
// bots search with.
package board

import (
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrEmptyHistory = errors.New("no move to undo")
	ErrInvalidFEN   = errors.New("invalid FEN")
)

// Position is a mutable view over a stack of immutable chess positions.
// Push and Pop are exact inverses: Pop restores the snapshot that was
// current before the matching Push.
type Position struct {
	stack []*chess.Position
}

// New returns the standard starting position.
func New() *Position {
	return FromChess(chess.NewGame().Position())
}

// FromChess wraps an existing snapshot.
func FromChess(pos *chess.Position) *Position {
	return &Position{stack: []*chess.Position{pos}}
}

// FromFEN loads a position from FEN.
func FromFEN(fen string) (*Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFEN, "%q: %v", fen, err)
	}
	return FromChess(chess.NewGame(opt).Position()), nil
}

// Current returns the snapshot on top of the stack.
func (p *Position) Current() *chess.Position {
	return p.stack[len(p.stack)-1]
}

func (p *Position) Turn() chess.Color {
	return p.Current().Turn()
}

// Depth is the number of moves pushed since the position was created.
func (p *Position) Depth() int {
	return len(p.stack) - 1
}

// LegalMoves returns the legal moves in the rules engine's enumeration
// order. The order is stable for a given position.
func (p *Position) LegalMoves() []*chess.Move {
	return p.Current().ValidMoves()
}

// Push applies m, which must be legal in the current position.
func (p *Position) Push(m *chess.Move) error {
	if m == nil {
		return errors.Wrap(ErrIllegalMove, "nil move")
	}
	cur := p.Current()
	for _, legal := range cur.ValidMoves() {
		if legal.S1() == m.S1() && legal.S2() == m.S2() && legal.Promo() == m.Promo() {
			p.stack = append(p.stack, cur.Update(legal))
			return nil
		}
	}
	return errors.Wrapf(ErrIllegalMove, "%s in %s", m, cur)
}

// PushUCI parses and applies a move in UCI notation such as "e2e4".
func (p *Position) PushUCI(s string) error {
	m, err := chess.UCINotation{}.Decode(p.Current(), s)
	if err != nil {
		return errors.Wrapf(ErrIllegalMove, "%s: %v", s, err)
	}
	return p.Push(m)
}

// Pop undoes the last pushed move.
func (p *Position) Pop() error {
	if len(p.stack) == 1 {
		return ErrEmptyHistory
	}
	p.stack[len(p.stack)-1] = nil
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

func (p *Position) IsCheckmate() bool {
	return p.Current().Status() == chess.Checkmate
}

func (p *Position) IsStalemate() bool {
	return p.Current().Status() == chess.Stalemate
}

// IsCapture reports whether m takes a piece in the current position.
func (p *Position) IsCapture(m *chess.Move) bool {
	return m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant)
}

// PieceMap returns every occupied square and its piece.
func (p *Position) PieceMap() map[chess.Square]chess.Piece {
	occupied := make(map[chess.Square]chess.Piece, 32)
	for sq, pc := range p.Current().Board().SquareMap() {
		if pc != chess.NoPiece {
			occupied[sq] = pc
		}
	}
	return occupied
}

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FullMoveNumber reads the move counter from the FEN, which notnil/chess
// does not expose directly.
func (p *Position) FullMoveNumber() int {
	fields := strings.Fields(p.FEN())
	if len(fields) < 6 {
		return 1
	}
	n, err := strconv.Atoi(fields[5])
	if err != nil {
		return 1
	}
	return n
}

// FEN returns the current position in FEN.
func (p *Position) FEN() string {
	return p.Current().String()
}

func (p *Position) String() string {
	return p.FEN()
}
