// Package leveldb implements a durable single-node ledger on goleveldb.
//
// All writes of a transaction go into one leveldb.Batch which is applied
// with a single synchronous Write, so a commit is all-or-nothing even across
// a crash. Submits are serialised; evaluations read from a snapshot.
package leveldb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_errors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// Store is a ledger.Ledger backed by a LevelDB database.
type Store struct {
	sync.Mutex
	db     *leveldb.DB
	Clock  ledger.Clock
	Sink   ledger.EventSink
	Logger *slog.Logger
}

// Open opens or creates the database at path.
func Open(path string, sink ledger.EventSink, logger *slog.Logger) (*Store, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{
		ErrorIfMissing: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb at %s: %w", path, err)
	}
	return newStore(db, sink, logger), nil
}

// OpenInMemory opens a database held entirely in memory.
func OpenInMemory(sink ledger.EventSink, logger *slog.Logger) (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory leveldb: %w", err)
	}
	return newStore(db, sink, logger), nil
}

func newStore(db *leveldb.DB, sink ledger.EventSink, logger *slog.Logger) *Store {
	return &Store{
		db:     db,
		Clock:  ledger.SystemClock,
		Sink:   sink,
		Logger: logger,
	}
}

// Make sure we conform to the interface
var _ ledger.Ledger = (*Store)(nil)

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Submit implements ledger.Ledger.
func (s *Store) Submit(ctx context.Context, fn func(tx ledger.Tx) error) error {
	tx, err := s.apply(ctx, fn)
	if err != nil {
		return err
	}

	ledger.Deliver(ctx, s.Sink, s.Logger, tx)
	return nil
}

func (s *Store) apply(ctx context.Context, fn func(tx ledger.Tx) error) (*ledger.BufferedTx, error) {
	s.Lock()
	defer s.Unlock()

	tx := ledger.NewBufferedTx(s.reader(s.db.Get), s.Clock(), ledger.CallerFrom(ctx))
	if err := fn(tx); err != nil {
		return nil, err
	}

	writes := tx.Writes()
	if len(writes) == 0 {
		return tx, nil
	}

	batch := new(leveldb.Batch)
	for _, w := range writes {
		batch.Put([]byte(w.Key), w.Value)
	}
	if err := s.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		return nil, fmt.Errorf("failed to commit batch of %d writes: %w", batch.Len(), err)
	}
	return tx, nil
}

// Evaluate implements ledger.Ledger.
func (s *Store) Evaluate(ctx context.Context, fn func(tx ledger.Tx) error) error {
	snap, err := s.db.GetSnapshot()
	if err != nil {
		return fmt.Errorf("failed to take snapshot: %w", err)
	}
	defer snap.Release()

	return fn(ledger.NewBufferedTx(s.reader(snap.Get), s.Clock(), ledger.CallerFrom(ctx)))
}

type getter func(key []byte, ro *opt.ReadOptions) ([]byte, error)

func (s *Store) reader(get getter) ledger.ReadFunc {
	return func(_ context.Context, key ledger.Key) ([]byte, error) {
		v, err := get([]byte(key), nil)
		if errors.Is(err, ldb_errors.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
