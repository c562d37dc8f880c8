package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Analysis is one cached search result. The move is kept in UCI form so the
// record stays readable and independent of internal move encoding.
type Analysis struct {
	BestMove   string        `json:"best_move"`
	Score      int           `json:"score"`
	Depth      int           `json:"depth"`
	Nodes      uint64        `json:"nodes"`
	AnalyzedAt time.Time     `json:"analyzed_at"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Storage is a durable position-keyed analysis cache: the on-disk
// counterpart of the in-memory transposition table, surviving restarts.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the cache in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenStorage(dbDir)
}

// OpenStorage opens the cache at an explicit directory.
func OpenStorage(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Badger is chatty by default

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// hashKey renders a position hash as an 8-byte big-endian key.
func hashKey(hash uint64) []byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], hash)
	return key[:]
}

// SaveAnalysis records a search result for a position hash, overwriting any
// previous record.
func (s *Storage) SaveAnalysis(hash uint64, a *Analysis) error {
	if a.AnalyzedAt.IsZero() {
		a.AnalyzedAt = time.Now()
	}

	data, err := json.Marshal(a)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(hashKey(hash), data)
	})
}

// LoadAnalysis returns the cached result for a position hash, or ok=false
// when the position has never been analyzed.
func (s *Storage) LoadAnalysis(hash uint64) (*Analysis, bool, error) {
	var a Analysis
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(hashKey(hash))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &a)
		})
	})
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return &a, true, nil
}

// DeleteAnalysis removes one cached result. Deleting an absent key is not an
// error.
func (s *Storage) DeleteAnalysis(hash uint64) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(hashKey(hash))
	})
}

// Len counts the cached positions.
func (s *Storage) Len() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
