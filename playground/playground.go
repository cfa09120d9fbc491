// Package playground pits two bots against each other and files the
// finished games.
package playground

import (
	"context"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"chessmate/board"
	"chessmate/bots"
	"chessmate/evaluation"
)

var ErrInvalidGameCount = errors.New("game count must not be negative")

// Factory builds a fresh bot for one game. Bots are never shared between
// games, so each game owns its transposition tables.
type Factory func(color chess.Color) (bots.ChessBot, error)

// BotFactory builds bots by name through bots.New.
func BotFactory(kind string, depth int) Factory {
	return func(color chess.Color) (bots.ChessBot, error) {
		return bots.New(kind, color, depth)
	}
}

// GameRecord is the outcome of one finished game.
type GameRecord struct {
	Index    int       `json:"index"`
	White    string    `json:"white"`
	Black    string    `json:"black"`
	Ending   Ending    `json:"ending"`
	Method   string    `json:"method"`
	Result   string    `json:"result"`
	Plies    int       `json:"plies"`
	PGN      string    `json:"pgn"`
	Material []float64 `json:"material"`
}

type Option func(*Playground)

// WithMaxPlies resigns the side to move once n plies have been played.
// Zero means no cap.
func WithMaxPlies(n int) Option {
	return func(p *Playground) { p.maxPlies = n }
}

// WithParallelism sets how many games PlayGames runs at once.
func WithParallelism(n int) Option {
	return func(p *Playground) { p.parallelism = n }
}

// WithStartFEN starts every game from fen instead of the standard position.
func WithStartFEN(fen string) Option {
	return func(p *Playground) { p.startFEN = fen }
}

type Playground struct {
	white, black Factory
	maxPlies     int
	parallelism  int
	startFEN     string
	gameOpts     []func(*chess.Game)
	material     evaluation.Evaluator
}

func New(white, black Factory, opts ...Option) (*Playground, error) {
	p := &Playground{
		white:       white,
		black:       black,
		parallelism: 1,
		material:    evaluation.NewMaterial(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.parallelism < 1 {
		p.parallelism = 1
	}
	if p.startFEN != "" {
		fen, err := chess.FEN(p.startFEN)
		if err != nil {
			return nil, errors.Wrapf(board.ErrInvalidFEN, "%q: %v", p.startFEN, err)
		}
		p.gameOpts = append(p.gameOpts, fen)
	}
	return p, nil
}

// PlayGame plays one game to completion. A bot that resigns or finds no
// move loses on the spot.
func (p *Playground) PlayGame(ctx context.Context, index int) (GameRecord, error) {
	white, err := p.white(chess.White)
	if err != nil {
		return GameRecord{}, errors.Wrap(err, "white")
	}
	black, err := p.black(chess.Black)
	if err != nil {
		return GameRecord{}, errors.Wrap(err, "black")
	}

	game := chess.NewGame(p.gameOpts...)
	rec := GameRecord{Index: index, White: white.Name(), Black: black.Name()}
	for game.Outcome() == chess.NoOutcome {
		if err := ctx.Err(); err != nil {
			return GameRecord{}, err
		}
		if p.maxPlies > 0 && rec.Plies >= p.maxPlies {
			log.Debug().Int("game", index).Int("plies", rec.Plies).Msg("ply-cap-reached")
			game.Resign(game.Position().Turn())
			break
		}

		current := white
		if game.Position().Turn() == chess.Black {
			current = black
		}
		if err := p.makeBotMove(game, current); err != nil {
			if errors.Is(err, bots.ErrResign) || errors.Is(err, bots.ErrNoLegalMove) {
				log.Debug().Int("game", index).Str("bot", current.Name()).Err(err).Msg("bot-resigned")
				game.Resign(game.Position().Turn())
				break
			}
			return GameRecord{}, errors.Wrapf(err, "game %d ply %d", index, rec.Plies)
		}
		rec.Plies++

		diff, err := p.material.Evaluate(game.Position().Board())
		if err != nil {
			return GameRecord{}, err
		}
		rec.Material = append(rec.Material, diff)
	}

	rec.Ending = ClassifyEnding(board.FromChess(game.Position()))
	rec.Method = game.Method().String()
	rec.Result = game.Outcome().String()
	rec.PGN = game.String()

	log.Info().
		Int("game", index).
		Str("white", rec.White).
		Str("black", rec.Black).
		Str("ending", string(rec.Ending)).
		Str("method", rec.Method).
		Str("result", rec.Result).
		Int("plies", rec.Plies).
		Msg("game-finished")
	return rec, nil
}

func (p *Playground) makeBotMove(game *chess.Game, bot bots.ChessBot) error {
	move, err := bot.BestMove(board.FromChess(game.Position()))
	if err != nil {
		return err
	}
	legal := findMove(game, move)
	if legal == nil {
		return errors.Wrapf(board.ErrIllegalMove, "%s played %s", bot.Name(), move)
	}
	return game.Move(legal)
}

func findMove(game *chess.Game, m *chess.Move) *chess.Move {
	for _, legal := range game.ValidMoves() {
		if legal.S1() == m.S1() && legal.S2() == m.S2() && legal.Promo() == m.Promo() {
			return legal
		}
	}
	return nil
}

// PlayGames plays n games, at most the configured number at a time, and
// returns the records in index order. The first error cancels the games
// still running.
func (p *Playground) PlayGames(ctx context.Context, n int) ([]GameRecord, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidGameCount, "got %d", n)
	}
	records := make([]GameRecord, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallelism)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			rec, err := p.PlayGame(ctx, i)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
