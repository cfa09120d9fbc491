package board

import (
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// Empty is what PieceAt reports for an unoccupied square.
const Empty = ""

var (
	ErrInvalidSquare     = errors.New("invalid square")
	ErrInvalidSquareType = errors.New("invalid square reference type")
)

// ResolveSquare turns a square reference into its canonical index.
// Accepted forms are algebraic strings ("e4", "E4"), chess.Square and int.
func ResolveSquare(ref any) (chess.Square, error) {
	switch v := ref.(type) {
	case string:
		return ParseSquare(v)
	case chess.Square:
		return checkIndex(int(v))
	case int:
		return checkIndex(v)
	default:
		return chess.NoSquare, errors.Wrapf(ErrInvalidSquareType, "%T", ref)
	}
}

// ParseSquare parses a two-character algebraic square, case-insensitively.
func ParseSquare(s string) (chess.Square, error) {
	if len(s) != 2 {
		return chess.NoSquare, errors.Wrapf(ErrInvalidSquare, "%q", s)
	}
	s = strings.ToLower(s)
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return chess.NoSquare, errors.Wrapf(ErrInvalidSquare, "%q", s)
	}
	return chess.NewSquare(chess.File(file-'a'), chess.Rank(rank-'1')), nil
}

func checkIndex(i int) (chess.Square, error) {
	if i < int(chess.A1) || i > int(chess.H8) {
		return chess.NoSquare, errors.Wrapf(ErrInvalidSquare, "index %d", i)
	}
	return chess.Square(i), nil
}

// Symbol returns the FEN letter of pc: uppercase for White, lowercase for
// Black, Empty for chess.NoPiece.
func Symbol(pc chess.Piece) string {
	var s string
	switch pc.Type() {
	case chess.Pawn:
		s = "p"
	case chess.Knight:
		s = "n"
	case chess.Bishop:
		s = "b"
	case chess.Rook:
		s = "r"
	case chess.Queen:
		s = "q"
	case chess.King:
		s = "k"
	default:
		return Empty
	}
	if pc.Color() == chess.White {
		return strings.ToUpper(s)
	}
	return s
}

// PieceAt returns the symbol of the piece on ref, or Empty. An empty square
// is a normal answer, not an error.
func PieceAt(pos *chess.Position, ref any) (string, error) {
	sq, err := ResolveSquare(ref)
	if err != nil {
		return Empty, err
	}
	return Symbol(pos.Board().Piece(sq)), nil
}

// PieceAt is the Position form of the package-level PieceAt.
func (p *Position) PieceAt(ref any) (string, error) {
	return PieceAt(p.Current(), ref)
}
