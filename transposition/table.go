package transposition

import (
	"maps"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"chessmate/evaluation"
)

// Table maps a placement hash to the score its evaluator gave that
// placement. No move, depth or bound is kept, so an entry is only ever a
// static evaluation.
//
// The map grows without eviction; drop the Table between unrelated games if
// memory matters. A Table has no internal locking and must not be used from
// more than one goroutine at a time.
var ErrNilKeys = errors.New("nil key array")

type Table struct {
	hash   HashFunc
	keys   *Keys
	eval   evaluation.Evaluator
	scores map[uint64]float64
}

type Option func(*Table)

// WithEvaluator replaces the default Material evaluator. A nil evaluator
// keeps the default.
func WithEvaluator(e evaluation.Evaluator) Option {
	return func(t *Table) { t.eval = e }
}

// WithKeys supplies the key array instead of drawing a random one. Nil
// keys are replaced by random ones.
func WithKeys(k *Keys) Option {
	return func(t *Table) { t.keys = k }
}

// WithHashFunc replaces Zobrist. A nil function keeps Zobrist.
func WithHashFunc(f HashFunc) Option {
	return func(t *Table) { t.hash = f }
}

// New returns an empty table with fresh random keys, Zobrist hashing and
// Material evaluation unless overridden.
func New(opts ...Option) *Table {
	t := &Table{
		hash:   Zobrist,
		eval:   evaluation.NewMaterial(),
		scores: make(map[uint64]float64),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.eval == nil {
		t.eval = evaluation.NewMaterial()
	}
	if t.hash == nil {
		t.hash = Zobrist
	}
	if t.keys == nil {
		t.keys = RandomKeys()
	}
	return t
}

// Hash returns the table's hash of b.
func (t *Table) Hash(b *chess.Board) uint64 {
	return t.hash(b, t.keys)
}

// Record evaluates b, stores the score under its hash and returns it. A
// later Record of a colliding placement overwrites the earlier score.
func (t *Table) Record(b *chess.Board) (float64, error) {
	score, err := t.eval.Evaluate(b)
	if err != nil {
		return 0, err
	}
	t.scores[t.Hash(b)] = score
	return score, nil
}

// Lookup returns the stored score for hash.
func (t *Table) Lookup(hash uint64) (float64, bool) {
	score, ok := t.scores[hash]
	return score, ok
}

func (t *Table) Contains(hash uint64) bool {
	_, ok := t.scores[hash]
	return ok
}

// Score returns the cached score for b, recording it first on a miss.
func (t *Table) Score(b *chess.Board) (score float64, hit bool, err error) {
	if score, ok := t.scores[t.Hash(b)]; ok {
		return score, true, nil
	}
	score, err = t.Record(b)
	return score, false, err
}

func (t *Table) Len() int {
	return len(t.scores)
}

// Values returns a copy of every stored entry.
func (t *Table) Values() map[uint64]float64 {
	return maps.Clone(t.scores)
}

func (t *Table) Keys() *Keys {
	return t.keys
}

// SetKeys swaps the key array. Entries stored under the old keys stay in
// the map but are no longer comparable with new hashes; lookups that hit
// them return meaningless scores. Nil keys are rejected and leave the table
// unchanged.
func (t *Table) SetKeys(k *Keys) error {
	if k == nil {
		return ErrNilKeys
	}
	if len(t.scores) > 0 {
		log.Warn().Int("entries", len(t.scores)).Msg("transposition keys replaced on a non-empty table")
	}
	t.keys = k
	return nil
}

func (t *Table) Evaluator() evaluation.Evaluator {
	return t.eval
}
