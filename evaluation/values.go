package evaluation

import "github.com/notnil/chess"

// PieceValues maps each piece kind to its material worth in centipawns.
type PieceValues map[chess.PieceType]float64

// Conventional is the value scale every evaluator scores with. The king
// carries a sentinel large enough to dominate any material balance.
var Conventional = PieceValues{
	chess.Pawn:   100,
	chess.Knight: 350,
	chess.Bishop: 350,
	chess.Rook:   525,
	chess.Queen:  1000,
	chess.King:   99999,
}

// Fischer rates the bishop a little above the knight.
var Fischer = PieceValues{
	chess.Pawn:   100,
	chess.Knight: 300,
	chess.Bishop: 325,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   99999,
}

// Table is a piece-square grid from White's point of view, indexed
// [rank][file]: Table[0][0] is a1 and Table[7][7] is h8.
type Table [8][8]int

// PieceTables holds one Table per piece kind.
type PieceTables map[chess.PieceType]*Table

var pawnTable = Table{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = Table{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-30, 5, 10, 15, 15, 1, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 1, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopTable = Table{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 0, 10, 10, 10, 5, 5, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookTable = Table{
	{0, 0, 0, 5, 5, 0, 0, 0},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var queenTable = Table{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{-10, 0, 5, 5, 5, 0, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var kingTable = Table{
	{20, 30, 10, 0, 0, 10, 30, 20},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
}

// ConventionalTables are the default piece-square tables.
var ConventionalTables = PieceTables{
	chess.Pawn:   &pawnTable,
	chess.Knight: &knightTable,
	chess.Bishop: &bishopTable,
	chess.Rook:   &rookTable,
	chess.Queen:  &queenTable,
	chess.King:   &kingTable,
}

// TableValue returns the positional bonus for a piece of kind and color
// standing on sq. Black reads the table with the rank mirrored, so a black
// knight on c3 scores what a white knight scores on c6.
func TableValue(kind chess.PieceType, color chess.Color, sq chess.Square, tables PieceTables) float64 {
	t, ok := tables[kind]
	if !ok {
		return 0
	}
	rank, file := int(sq.Rank()), int(sq.File())
	if color == chess.Black {
		rank = 7 - rank
	}
	return float64(t[rank][file])
}
