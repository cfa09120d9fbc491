// Package storage persists self-play results in BadgerDB.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"chessmate/playground"
)

const (
	keyStats   = "stats"
	gamePrefix = "game/"
)

// Store wraps BadgerDB for game records and running totals.
type Store struct {
	db *badger.DB
}

// Open opens or creates the database in dir.
func Open(dir string) (*Store, error) {
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens a database that lives only as long as the Store.
func OpenInMemory() (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Store, error) {
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open badger")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func recordKey(session string, index int) []byte {
	return []byte(fmt.Sprintf("%s%s/%06d", gamePrefix, session, index))
}

// SaveRecord stores rec under session, replacing any record with the same
// index.
func (s *Store) SaveRecord(session string, rec playground.GameRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(session, rec.Index), data)
	})
}

// LoadRecords returns every record of session in index order.
func (s *Store) LoadRecords(session string) ([]playground.GameRecord, error) {
	var records []playground.GameRecord
	prefix := []byte(gamePrefix + session + "/")
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec playground.GameRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return errors.Wrapf(err, "decode %s", it.Item().Key())
			}
			records = append(records, rec)
		}
		return nil
	})
	return records, err
}

func (s *Store) SaveStats(stats playground.Summary) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats returns the stored totals, or empty totals if none were saved.
func (s *Store) LoadStats() (playground.Summary, error) {
	stats := playground.Summary{
		Endings: map[playground.Ending]int{},
		Methods: map[string]int{},
	}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stats)
		})
	})
	return stats, err
}

// RecordSession stores every record of a session and folds them into the
// running totals.
func (s *Store) RecordSession(session string, records []playground.GameRecord) (playground.Summary, error) {
	for _, rec := range records {
		if err := s.SaveRecord(session, rec); err != nil {
			return playground.Summary{}, err
		}
	}
	stats, err := s.LoadStats()
	if err != nil {
		return playground.Summary{}, err
	}
	stats = stats.Merge(playground.Summarize(records))
	return stats, s.SaveStats(stats)
}
