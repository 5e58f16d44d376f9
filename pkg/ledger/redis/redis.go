// Package redis implements the ledger on Redis using optimistic
// WATCH/MULTI/EXEC transactions. Every key a transaction reads is watched, so
// EXEC aborts if any of them changed and nothing is written.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/redis/go-redis/v9"
)

// Store is a ledger.Ledger on a Redis server.
type Store struct {
	Client *redis.Client
	Prefix string
	Clock  ledger.Clock
	Sink   ledger.EventSink
	Logger *slog.Logger

	// ConflictRetries bounds how often Submit re-runs a transaction whose
	// EXEC was aborted by a watched key changing.
	ConflictRetries int
}

// New creates a new Store. Every ledger key is stored as prefix+key.
func New(client *redis.Client, prefix string, sink ledger.EventSink, logger *slog.Logger) *Store {
	return &Store{
		Client:          client,
		Prefix:          prefix,
		Clock:           ledger.SystemClock,
		Sink:            sink,
		Logger:          logger,
		ConflictRetries: ledger.DefaultConflictRetries,
	}
}

// Make sure we conform to the interface
var _ ledger.Ledger = (*Store)(nil)

// Submit implements ledger.Ledger.
func (s *Store) Submit(ctx context.Context, fn func(tx ledger.Tx) error) error {
	return ledger.RetryConflicts(s.ConflictRetries, s.Logger, func() error {
		return s.submit(ctx, fn)
	})
}

func (s *Store) submit(ctx context.Context, fn func(tx ledger.Tx) error) error {
	var committed *ledger.BufferedTx

	txf := func(rtx *redis.Tx) error {
		read := func(ctx context.Context, key ledger.Key) ([]byte, error) {
			if err := rtx.Watch(ctx, s.redisKey(key)).Err(); err != nil {
				return nil, fmt.Errorf("failed to watch %s: %w", key, err)
			}
			return s.get(ctx, rtx, key)
		}

		tx := ledger.NewBufferedTx(read, s.Clock(), ledger.CallerFrom(ctx))
		if err := fn(tx); err != nil {
			return err
		}

		writes := tx.Writes()
		if len(writes) > 0 {
			_, err := rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				for _, w := range writes {
					pipe.Set(ctx, s.redisKey(w.Key), w.Value, 0)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		committed = tx
		return nil
	}

	if err := s.Client.Watch(ctx, txf); err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return fmt.Errorf("%w: watched key modified before EXEC", ledger.ErrConflict)
		}
		return err
	}

	ledger.Deliver(ctx, s.Sink, s.Logger, committed)
	return nil
}

// Evaluate implements ledger.Ledger.
func (s *Store) Evaluate(ctx context.Context, fn func(tx ledger.Tx) error) error {
	read := func(ctx context.Context, key ledger.Key) ([]byte, error) {
		return s.get(ctx, s.Client, key)
	}
	return fn(ledger.NewBufferedTx(read, s.Clock(), ledger.CallerFrom(ctx)))
}

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *Store) get(ctx context.Context, c getter, key ledger.Key) ([]byte, error) {
	v, err := c.Get(ctx, s.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	return v, nil
}

func (s *Store) redisKey(key ledger.Key) string {
	return s.Prefix + string(key)
}
