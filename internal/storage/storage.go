// Package storage keeps named practice positions in a Badger database.
package storage

import (
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chess-practice-go/internal/chess"
	"github.com/lgbarn/chess-practice-go/internal/engine"
	"github.com/lgbarn/chess-practice-go/internal/errors"
)

// keyPrefix namespaces saved positions.
const keyPrefix = "position/"

// Record is a saved position: the FEN it started from and the moves played
// since, in long algebraic form.
type Record struct {
	Name    string    `json:"name"`
	FEN     string    `json:"fen"`
	Moves   []string  `json:"moves,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

// Position rebuilds the position the record describes.
func (r Record) Position() (chess.Position, error) {
	pos, err := engine.ParseFEN(r.FEN)
	if err != nil {
		return chess.Position{}, err
	}
	for _, text := range r.Moves {
		m, err := chess.ParseMove(text)
		if err != nil {
			return chess.Position{}, errors.Wrapf(err, "record %q", r.Name)
		}
		pos = engine.Apply(pos, m)
	}
	return pos, nil
}

// Store wraps BadgerDB for saved positions.
type Store struct {
	db *badger.DB
}

// Open opens or creates a store in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	return open(opts)
}

// OpenInMemory opens a store that is discarded on Close.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores rec under its name, replacing any earlier record. The FEN
// must parse. A zero SavedAt is set to the current time.
func (s *Store) Save(rec Record) error {
	if rec.Name == "" {
		return stderrors.New("record name is empty")
	}
	if _, err := rec.Position(); err != nil {
		return err
	}
	if rec.SavedAt.IsZero() {
		rec.SavedAt = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(rec.Name), data)
	})
}

// Load returns the record saved under name. A missing record is reported
// with an error wrapping errors.ErrNotFound.
func (s *Store) Load(name string) (Record, error) {
	var rec Record

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if err == badger.ErrKeyNotFound {
			return errors.Wrapf(errors.ErrNotFound, "position %q", name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})

	return rec, err
}

// List returns the names of all saved positions in lexical order.
func (s *Store) List() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), keyPrefix))
		}
		return nil
	})

	return names, err
}

// Delete removes the record saved under name. Deleting a missing record
// is reported with an error wrapping errors.ErrNotFound.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(name)); err == badger.ErrKeyNotFound {
			return errors.Wrapf(errors.ErrNotFound, "position %q", name)
		} else if err != nil {
			return err
		}
		return txn.Delete(key(name))
	})
}

func key(name string) []byte {
	return []byte(keyPrefix + name)
}
