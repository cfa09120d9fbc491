package playground

import (
	"github.com/notnil/chess"
	"github.com/samber/lo"

	"chessmate/board"
)

// Ending is how a finished game is filed.
type Ending string

const (
	WhiteMate   Ending = "white-mate"
	BlackMate   Ending = "black-mate"
	Stalemate   Ending = "stalemate"
	Resignation Ending = "resignation"
)

// ClassifyEnding files pos under checkmate, then stalemate. Everything
// else, including positions that are not over at all, counts as
// Resignation.
func ClassifyEnding(pos *board.Position) Ending {
	switch {
	case pos.IsCheckmate():
		// the side to move is the one mated
		if pos.Turn() == chess.Black {
			return WhiteMate
		}
		return BlackMate
	case pos.IsStalemate():
		return Stalemate
	default:
		return Resignation
	}
}

// Summary counts finished games.
type Summary struct {
	Games   int            `json:"games"`
	Endings map[Ending]int `json:"endings"`
	Methods map[string]int `json:"methods"`
}

func Summarize(records []GameRecord) Summary {
	return Summary{
		Games: len(records),
		Endings: lo.CountValuesBy(records, func(r GameRecord) Ending {
			return r.Ending
		}),
		Methods: lo.CountValuesBy(records, func(r GameRecord) string {
			return r.Method
		}),
	}
}

// Merge adds other's counts to s.
func (s Summary) Merge(other Summary) Summary {
	out := Summary{
		Games:   s.Games + other.Games,
		Endings: map[Ending]int{},
		Methods: map[string]int{},
	}
	for _, src := range []Summary{s, other} {
		for k, v := range src.Endings {
			out.Endings[k] += v
		}
		for k, v := range src.Methods {
			out.Methods[k] += v
		}
	}
	return out
}
