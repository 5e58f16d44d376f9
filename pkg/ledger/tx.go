package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ReadFunc reads the committed value of key from a backend. It returns nil
// for an absent key.
type ReadFunc func(ctx context.Context, key Key) ([]byte, error)

// Write is one buffered PutState.
type Write struct {
	Key   Key
	Value []byte
}

// BufferedTx is a Tx that reads through a ReadFunc and keeps writes in
// memory until the owning backend commits them. Reads observe the
// transaction's own pending writes.
type BufferedTx struct {
	read    ReadFunc
	ts      time.Time
	caller  Identity
	order   []Key
	pending map[Key][]byte
	event   *Event
}

// NewBufferedTx returns a transaction reading through read.
func NewBufferedTx(read ReadFunc, ts time.Time, caller Identity) *BufferedTx {
	return &BufferedTx{
		read:    read,
		ts:      ts,
		caller:  caller,
		pending: make(map[Key][]byte),
	}
}

var _ Tx = (*BufferedTx)(nil)

// GetState implements Tx.
func (t *BufferedTx) GetState(ctx context.Context, key Key) ([]byte, error) {
	if v, ok := t.pending[key]; ok {
		return clone(v), nil
	}
	v, err := t.read(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return v, nil
}

// PutState implements Tx.
func (t *BufferedTx) PutState(_ context.Context, key Key, value []byte) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if _, ok := t.pending[key]; !ok {
		t.order = append(t.order, key)
	}
	t.pending[key] = clone(value)
	return nil
}

// SetEvent implements Tx.
func (t *BufferedTx) SetEvent(name string, payload []byte) error {
	if name == "" {
		return fmt.Errorf("event name must not be empty")
	}
	t.event = &Event{Name: name, Payload: clone(payload)}
	return nil
}

// Timestamp implements Tx.
func (t *BufferedTx) Timestamp() time.Time { return t.ts }

// Caller implements Tx.
func (t *BufferedTx) Caller() Identity { return t.caller }

// Writes returns the buffered writes in first-write order.
func (t *BufferedTx) Writes() []Write {
	writes := make([]Write, 0, len(t.order))
	for _, k := range t.order {
		writes = append(writes, Write{Key: k, Value: t.pending[k]})
	}
	return writes
}

// Event returns the event set by the transaction, if any.
func (t *BufferedTx) Event() (Event, bool) {
	if t.event == nil {
		return Event{}, false
	}
	return *t.event, true
}

// Deliver hands the event of a committed transaction to sink. Failures are
// logged; the commit has already happened and stands.
func Deliver(ctx context.Context, sink EventSink, logger *slog.Logger, tx *BufferedTx) {
	event, ok := tx.Event()
	if !ok || sink == nil {
		return
	}
	if err := sink.Publish(ctx, event); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("transaction committed but event delivery failed",
			slog.String("event", event.Name),
			slog.String("error", err.Error()),
		)
	}
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
