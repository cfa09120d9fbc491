package bots

import (
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"chessmate/board"
	"chessmate/evaluation"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

// Each position has exactly one move that wins the most material.
var captureBoards = []struct {
	name string
	fen  string
	best string
}{
	{"knight", "r1bqkbnr/ppp1pppp/8/3p4/3nP3/2N2N2/PPP2PPP/R1B1KB1R w KQkq - 0 1", "f3d4"},
	{"queen", "rnb1kbnr/pppp1ppp/8/3qp3/4P3/5N2/PPP1QPPP/RNB1KB1R w KQkq - 0 1", "e4d5"},
	{"rook over knight", "r1bqkbnr/pppppp1p/6p1/8/1n1B4/2P5/PP2PPPP/RN1QKBNR w KQkq - 0 1", "d4h8"},
}

func mustFEN(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.FromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return pos
}

func checkmated(t *testing.T) *board.Position {
	t.Helper()
	pos := mustFEN(t, "8/8/8/2Q1k3/6Q1/3Q1Q2/4K3/8 w - - 0 1")
	if err := pos.PushUCI("d3e4"); err != nil {
		t.Fatal(err)
	}
	return pos
}

func allBots(t *testing.T) []ChessBot {
	t.Helper()
	kinds := []string{
		KindRandom, KindNewborn, KindPawns, KindRandomCapture, KindCaptureHighest,
		KindAvoidCapture, KindGreedy, KindScholarsMate, KindMinimax, KindMinimaxPosition,
	}
	var out []ChessBot
	for _, kind := range kinds {
		b, err := New(kind, chess.White, 1)
		if err != nil {
			t.Fatalf("New(%s): %v", kind, err)
		}
		out = append(out, b)
	}
	return out
}

func isLegal(pos *board.Position, m *chess.Move) bool {
	for _, legal := range pos.LegalMoves() {
		if legal.String() == m.String() {
			return true
		}
	}
	return false
}

func TestBotsPlayLegalMovesFromStart(t *testing.T) {
	for _, b := range allBots(t) {
		pos := board.New()
		m, err := b.BestMove(pos)
		if err != nil {
			t.Fatalf("%s: %v", b.Name(), err)
		}
		if !isLegal(pos, m) {
			t.Errorf("%s played illegal %s", b.Name(), m)
		}
		if pos.FEN() != board.StartFEN || pos.Depth() != 0 {
			t.Errorf("%s left the position at %s", b.Name(), pos.FEN())
		}
	}
}

func TestBotsWithoutLegalMoves(t *testing.T) {
	stalemate := mustFEN(t, "8/8/8/8/8/4k3/4p3/4K3 w - - 0 1")
	for _, b := range allBots(t) {
		for _, pos := range []*board.Position{checkmated(t), stalemate} {
			m, err := b.BestMove(pos)
			if !errors.Is(err, ErrNoLegalMove) {
				t.Errorf("%s: err = %v, want ErrNoLegalMove", b.Name(), err)
			}
			if m != nil {
				t.Errorf("%s returned %s with no legal moves", b.Name(), m)
			}
		}
	}
}

func TestNewUnknownBot(t *testing.T) {
	if _, err := New("stockfish", chess.White, 1); !errors.Is(err, ErrUnknownBot) {
		t.Errorf("err = %v, want ErrUnknownBot", err)
	}
}

func TestSeededRandomBotIsReproducible(t *testing.T) {
	var first []string
	for run := 0; run < 2; run++ {
		b := NewSeededRandomBot(rand.New(rand.NewSource(1)))
		pos := board.New()
		var played []string
		for i := 0; i < 10; i++ {
			m, err := b.BestMove(pos)
			if err != nil {
				t.Fatal(err)
			}
			played = append(played, m.String())
			if err := pos.Push(m); err != nil {
				t.Fatal(err)
			}
		}
		if run == 0 {
			first = played
			continue
		}
		for i := range played {
			if played[i] != first[i] {
				t.Fatalf("run diverged at ply %d: %v vs %v", i, played, first)
			}
		}
	}
}

func TestPrioritizePawnBotMovesPawns(t *testing.T) {
	pos := board.New()
	b := NewPrioritizePawnBot()
	for i := 0; i < 20; i++ {
		m, err := b.BestMove(pos)
		if err != nil {
			t.Fatal(err)
		}
		if got, _ := pos.PieceAt(m.S1()); got != "P" {
			t.Fatalf("moved %q from %s, want a pawn", got, m.S1())
		}
	}
}

func TestRandomCaptureBotCaptures(t *testing.T) {
	b := NewRandomCaptureBot()
	for _, tt := range captureBoards {
		pos := mustFEN(t, tt.fen)
		m, err := b.BestMove(pos)
		if err != nil {
			t.Fatal(err)
		}
		if !pos.IsCapture(m) {
			t.Errorf("%s: played quiet %s", tt.name, m)
		}
	}
}

func TestCaptureHighestValueBot(t *testing.T) {
	b := NewCaptureHighestValueBot()
	for _, tt := range captureBoards {
		m, err := b.BestMove(mustFEN(t, tt.fen))
		if err != nil {
			t.Fatal(err)
		}
		if m.String() != tt.best {
			t.Errorf("%s: played %s, want %s", tt.name, m, tt.best)
		}
	}
}

func TestCaptureHighestValueBotPrefersCaptureOverPromotion(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		// g7g8q gains more material than b4a5 but takes nothing.
		{"rook over promotion", "4k3/6P1/8/r7/1P6/8/8/4K3 w - - 0 1", "b4a5"},
		{"en passant counts as a pawn", "4k3/6P1/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6"},
		{"no capture falls back to the first move", "4k3/6P1/8/8/8/8/8/4K3 w - - 0 1", ""},
	}
	b := NewCaptureHighestValueBot()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			m, err := b.BestMove(pos)
			if err != nil {
				t.Fatal(err)
			}
			want := tt.want
			if want == "" {
				want = pos.LegalMoves()[0].String()
			}
			if m.String() != want {
				t.Errorf("played %s, want %s", m, want)
			}
		})
	}
}

func TestAvoidCaptureBot(t *testing.T) {
	b := NewAvoidCaptureBot()
	for _, tt := range captureBoards {
		pos := mustFEN(t, tt.fen)
		m, err := b.BestMove(pos)
		if err != nil {
			t.Fatal(err)
		}
		if m.String() == tt.best || pos.IsCapture(m) {
			t.Errorf("%s: played capture %s", tt.name, m)
		}
	}
}

func TestGreedyBotTieBreaksOnFirstMove(t *testing.T) {
	pos := board.New()
	b := NewGreedyBot(chess.White, evaluation.NewMaterial())
	m, err := b.BestMove(pos)
	if err != nil {
		t.Fatal(err)
	}
	if first := pos.LegalMoves()[0]; m.String() != first.String() {
		t.Errorf("played %s, want first legal move %s", m, first)
	}
}

func TestScholarsMateBot(t *testing.T) {
	b := NewScholarsMateBot()
	pos := board.New()
	for i, reply := range []string{"e7e5", "b8c6", "g8f6"} {
		m, err := b.BestMove(pos)
		if err != nil {
			t.Fatal(err)
		}
		if m.String() != scholarsMate[i] {
			t.Fatalf("move %d = %s, want %s", i+1, m, scholarsMate[i])
		}
		if err := pos.Push(m); err != nil {
			t.Fatal(err)
		}
		if err := pos.PushUCI(reply); err != nil {
			t.Fatal(err)
		}
	}
	m, err := b.BestMove(pos)
	if err != nil {
		t.Fatal(err)
	}
	if err := pos.Push(m); err != nil {
		t.Fatal(err)
	}
	if !pos.IsCheckmate() {
		t.Errorf("%s did not mate", m)
	}
}

func TestScholarsMateBotResigns(t *testing.T) {
	b := NewScholarsMateBot()

	t.Run("interrupted", func(t *testing.T) {
		for _, fen := range []string{
			"r1bqkbnr/pppp1p1p/2n3p1/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 0 4",
			"r1b1kbnr/pppp1ppp/2n5/4p2q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 0 4",
		} {
			_, err := b.BestMove(mustFEN(t, fen))
			if !errors.Is(err, ErrResign) {
				t.Fatalf("err = %v, want ErrResign", err)
			}
			if !strings.Contains(err.Error(), "h5f7 is blocked") {
				t.Errorf("resigned for %q, want the blocked mate", err)
			}
		}
	})

	t.Run("non-standard start", func(t *testing.T) {
		_, err := b.BestMove(mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN1 w Qkq - 0 1"))
		if !errors.Is(err, ErrResign) {
			t.Fatalf("err = %v, want ErrResign", err)
		}
		if !strings.Contains(err.Error(), "non-standard start") {
			t.Errorf("resigned for %q", err)
		}
	})

	t.Run("black", func(t *testing.T) {
		pos := board.New()
		if err := pos.PushUCI("e2e4"); err != nil {
			t.Fatal(err)
		}
		if _, err := b.BestMove(pos); !errors.Is(err, ErrResign) {
			t.Errorf("err = %v, want ErrResign", err)
		}
	})

	t.Run("failed mate", func(t *testing.T) {
		pos := board.New()
		for _, reply := range []string{"e7e5", "d7d5", "b8c6", "e8f7"} {
			m, err := b.BestMove(pos)
			if err != nil {
				t.Fatal(err)
			}
			if err := pos.Push(m); err != nil {
				t.Fatal(err)
			}
			if err := pos.PushUCI(reply); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := b.BestMove(pos); !errors.Is(err, ErrResign) {
			t.Errorf("err = %v, want ErrResign", err)
		}
	})
}

func TestOrderMVVLVAConventional(t *testing.T) {
	pos := mustFEN(t, "rnb1k2r/pppppppp/8/2q5/1P2bn2/3N1PP1/P1PPP2P/R1BQKBNR w KQkq - 0 1")
	got := OrderMVVLVA(pos, evaluation.Conventional)
	if len(got) != 5 {
		t.Fatalf("got %d captures %v, want 5", len(got), got)
	}
	if got[0].String() != "b4c5" || got[1].String() != "d3c5" || got[4].String() != "d3f4" {
		t.Errorf("order = %v", got)
	}
	middle := map[string]bool{got[2].String(): true, got[3].String(): true}
	if !middle["g3f4"] || !middle["f3e4"] {
		t.Errorf("pawn-takes-minor captures = %v", got[2:4])
	}
}

func TestOrderMVVLVAFischer(t *testing.T) {
	pos := mustFEN(t, "rnbqk2r/pppppppp/8/8/3bn3/2P2P2/PP1PP1PP/RNBQKBNR w KQkq - 0 1")
	got := OrderMVVLVA(pos, evaluation.Fischer)
	if len(got) != 2 || got[0].String() != "c3d4" || got[1].String() != "f3e4" {
		t.Errorf("order = %v, want [c3d4 f3e4]", got)
	}
}

func TestOrderMVVLVANoCaptures(t *testing.T) {
	pos := board.New()
	got := OrderMVVLVA(pos, evaluation.Conventional)
	legal := pos.LegalMoves()
	if len(got) != len(legal) {
		t.Fatalf("got %d moves, want %d", len(got), len(legal))
	}
	for i := range got {
		if got[i].String() != legal[i].String() {
			t.Fatalf("move %d = %s, want %s", i, got[i], legal[i])
		}
	}
}
