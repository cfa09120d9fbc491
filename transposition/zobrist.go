// Package transposition caches static evaluations under a Zobrist hash of
// the piece placement.
package transposition

import (
	"math"
	"math/rand"

	"github.com/notnil/chess"
	"lukechampine.com/frand"
)

// NumPieceKinds is the number of (kind, color) slots per square.
const NumPieceKinds = 12

// Keys is a Zobrist key array indexed [rank][file][pieceIndex].
type Keys [8][8][NumPieceKinds]uint64

// HashFunc hashes the placement of b under keys.
type HashFunc func(b *chess.Board, keys *Keys) uint64

// RandomKeys draws every key uniformly from 1..2^64-1.
func RandomKeys() *Keys {
	var k Keys
	for rank := range k {
		for file := range k[rank] {
			for i := range k[rank][file] {
				k[rank][file][i] = frand.Uint64n(math.MaxUint64) + 1
			}
		}
	}
	return &k
}

// SeededKeys builds a reproducible key array from r.
func SeededKeys(r *rand.Rand) *Keys {
	var k Keys
	for rank := range k {
		for file := range k[rank] {
			for i := range k[rank][file] {
				v := r.Uint64()
				for v == 0 {
					v = r.Uint64()
				}
				k[rank][file][i] = v
			}
		}
	}
	return &k
}

// PieceIndex maps a piece to its key slot: white P,N,B,R,Q,K take 0..5 and
// black p,n,b,r,q,k take 6..11. It returns -1 for chess.NoPiece.
func PieceIndex(pc chess.Piece) int {
	var i int
	switch pc.Type() {
	case chess.Pawn:
		i = 0
	case chess.Knight:
		i = 1
	case chess.Bishop:
		i = 2
	case chess.Rook:
		i = 3
	case chess.Queen:
		i = 4
	case chess.King:
		i = 5
	default:
		return -1
	}
	if pc.Color() == chess.Black {
		i += 6
	}
	return i
}

// Zobrist XORs the key of every occupied square into an accumulator that
// starts at 0. Only placement is hashed: side to move, castling rights and
// en passant do not contribute, and distinct placements may collide.
func Zobrist(b *chess.Board, keys *Keys) uint64 {
	var h uint64
	for sq := chess.A1; sq <= chess.H8; sq++ {
		idx := PieceIndex(b.Piece(sq))
		if idx < 0 {
			continue
		}
		h ^= keys[sq.Rank()][sq.File()][idx]
	}
	return h
}
