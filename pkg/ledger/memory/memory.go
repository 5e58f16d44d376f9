// Package memory provides an in-memory ledger used by tests and ephemeral
// environments. Transactions are serialised by a single mutex.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/chris/regnet/pkg/ledger"
)

// Store is an in-memory ledger.Ledger.
type Store struct {
	mu     sync.Mutex
	state  map[ledger.Key][]byte
	Clock  ledger.Clock
	Sink   ledger.EventSink
	Logger *slog.Logger
}

// New returns an empty Store delivering committed events to sink, which may
// be nil.
func New(sink ledger.EventSink) *Store {
	return &Store{
		state: make(map[ledger.Key][]byte),
		Clock: ledger.SystemClock,
		Sink:  sink,
	}
}

// Make sure we conform to the interface
var _ ledger.Ledger = (*Store)(nil)

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
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := ledger.NewBufferedTx(s.read, s.Clock(), ledger.CallerFrom(ctx))
	if err := fn(tx); err != nil {
		return nil, err
	}
	for _, w := range tx.Writes() {
		s.state[w.Key] = w.Value
	}
	return tx, nil
}

// Evaluate implements ledger.Ledger.
func (s *Store) Evaluate(ctx context.Context, fn func(tx ledger.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(ledger.NewBufferedTx(s.read, s.Clock(), ledger.CallerFrom(ctx)))
}

// Raw returns a copy of the committed value under key.
func (s *Store) Raw(key ledger.Key) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.state[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

// Put stores value under key outside of any transaction. It exists for
// seeding fixtures.
func (s *Store) Put(key ledger.Key, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state[key] = append([]byte(nil), value...)
}

func (s *Store) read(_ context.Context, key ledger.Key) ([]byte, error) {
	v, ok := s.state[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}
