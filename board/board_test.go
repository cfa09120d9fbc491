package board

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

const inProgressFEN = "2kr1bnr/2ppqppp/p7/2p1p3/3PP3/2N2N2/PPP2PPP/R1BQK2R w KQk - 0 1"

func TestResolveSquare(t *testing.T) {
	tests := []struct {
		name string
		ref  any
		want chess.Square
	}{
		{"lowercase", "a2", chess.A2},
		{"uppercase", "A2", chess.A2},
		{"square", chess.A2, chess.A2},
		{"int", 8, chess.A2},
		{"corner", "h8", chess.H8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSquare(tt.ref)
			if err != nil {
				t.Fatalf("ResolveSquare(%v): %v", tt.ref, err)
			}
			if got != tt.want {
				t.Errorf("ResolveSquare(%v) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolveSquareRejectsMalformed(t *testing.T) {
	for _, ref := range []any{"i1", "a9", "a0", "1a", "", "a", "a10", "zz", -1, 64, chess.Square(64)} {
		if _, err := ResolveSquare(ref); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ResolveSquare(%v) err = %v, want ErrInvalidSquare", ref, err)
		}
	}
	if _, err := ResolveSquare(3.5); !errors.Is(err, ErrInvalidSquareType) {
		t.Errorf("ResolveSquare(3.5) err = %v, want ErrInvalidSquareType", err)
	}
}

func TestPieceAtStartingPosition(t *testing.T) {
	pos := New()
	tests := []struct {
		ref  any
		want string
	}{
		{chess.A8, "r"},
		{"e1", "K"},
		{"e2", "P"},
		{"C3", Empty},
	}
	for _, tt := range tests {
		got, err := pos.PieceAt(tt.ref)
		if err != nil {
			t.Fatalf("PieceAt(%v): %v", tt.ref, err)
		}
		if got != tt.want {
			t.Errorf("PieceAt(%v) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestPieceAtInProgress(t *testing.T) {
	pos, err := FromFEN(inProgressFEN)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := pos.PieceAt("e4"); got != "P" {
		t.Errorf("e4 = %q, want P", got)
	}
	if got, _ := pos.PieceAt(chess.E7); got != "q" {
		t.Errorf("e7 = %q, want q", got)
	}
	if got, _ := pos.PieceAt("F1"); got != Empty {
		t.Errorf("f1 = %q, want empty", got)
	}
}

func TestPushPopRestoresPosition(t *testing.T) {
	pos := New()
	before := pos.FEN()

	if err := pos.PushUCI("e2e4"); err != nil {
		t.Fatalf("push e2e4: %v", err)
	}
	if err := pos.PushUCI("e7e5"); err != nil {
		t.Fatalf("push e7e5: %v", err)
	}
	if pos.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", pos.Depth())
	}
	if got, _ := pos.PieceAt("e4"); got != "P" {
		t.Fatalf("e4 = %q after push", got)
	}

	for i := 0; i < 2; i++ {
		if err := pos.Pop(); err != nil {
			t.Fatalf("pop: %v", err)
		}
	}
	if pos.FEN() != before {
		t.Errorf("FEN after pop = %s, want %s", pos.FEN(), before)
	}
	if err := pos.Pop(); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("pop on fresh position err = %v, want ErrEmptyHistory", err)
	}
}

func TestPushRejectsIllegalMove(t *testing.T) {
	pos := New()
	if err := pos.PushUCI("e2e5"); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("e2e5 err = %v, want ErrIllegalMove", err)
	}
	if pos.Depth() != 0 {
		t.Errorf("illegal push changed depth to %d", pos.Depth())
	}
}

func TestTerminalPredicates(t *testing.T) {
	stalemate, err := FromFEN("8/8/8/8/8/4k3/4p3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !stalemate.IsStalemate() || stalemate.IsCheckmate() {
		t.Error("expected stalemate only")
	}
	if n := len(stalemate.LegalMoves()); n != 0 {
		t.Errorf("stalemate has %d legal moves", n)
	}

	mate, err := FromFEN("8/8/8/2Q1k3/6Q1/3Q1Q2/4K3/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if err := mate.PushUCI("d3e4"); err != nil {
		t.Fatal(err)
	}
	if !mate.IsCheckmate() {
		t.Error("expected checkmate after Qe4")
	}
}

func TestPieceMap(t *testing.T) {
	m := New().PieceMap()
	if len(m) != 32 {
		t.Fatalf("start position has %d pieces, want 32", len(m))
	}
	if m[chess.D1] != chess.WhiteQueen {
		t.Errorf("d1 = %v, want white queen", m[chess.D1])
	}
}

func TestFromFENInvalid(t *testing.T) {
	if _, err := FromFEN("not a fen"); !errors.Is(err, ErrInvalidFEN) {
		t.Errorf("err = %v, want ErrInvalidFEN", err)
	}
}

func TestFullMoveNumber(t *testing.T) {
	pos := New()
	if pos.FEN() != StartFEN {
		t.Fatalf("start FEN = %s", pos.FEN())
	}
	if n := pos.FullMoveNumber(); n != 1 {
		t.Fatalf("start move number = %d", n)
	}
	for _, m := range []string{"e2e4", "e7e5", "g1f3"} {
		if err := pos.PushUCI(m); err != nil {
			t.Fatal(err)
		}
	}
	if n := pos.FullMoveNumber(); n != 2 {
		t.Errorf("move number = %d, want 2", n)
	}
}
