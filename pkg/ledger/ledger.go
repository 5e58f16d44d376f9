// Package ledger defines the keyed record store the registry runs on.
//
// A Ledger executes a function as one transaction. Reads inside the
// transaction go through Tx.GetState, writes are buffered by Tx.PutState and
// only become visible when the function returns nil and the backend commits
// the whole write set at once. A function that returns an error leaves the
// ledger untouched.
package ledger

import (
	"context"
	"time"
)

// Identity describes the party that submitted a transaction.
type Identity struct {
	ID    string `json:"id"`
	MSPID string `json:"msp_id,omitempty"`
}

// Anonymous is used when the transport supplies no caller identity.
var Anonymous = Identity{ID: "anonymous"}

// Tx is the view of the ledger available to one transaction.
type Tx interface {
	// GetState returns the value stored under key, or nil if the key is absent.
	GetState(ctx context.Context, key Key) ([]byte, error)

	// PutState buffers a write of value under key.
	PutState(ctx context.Context, key Key, value []byte) error

	// SetEvent attaches an event to the transaction. It is delivered only if
	// the transaction commits. A later call replaces an earlier one.
	SetEvent(name string, payload []byte) error

	// Timestamp is the transaction timestamp, fixed for its whole lifetime.
	Timestamp() time.Time

	// Caller is the identity that submitted the transaction.
	Caller() Identity
}

// Ledger runs functions against the record store.
type Ledger interface {
	// Submit runs fn as a read-write transaction and commits its writes
	// atomically if fn returns nil.
	Submit(ctx context.Context, fn func(tx Tx) error) error

	// Evaluate runs fn against a consistent read-only view. Writes made by fn
	// are discarded.
	Evaluate(ctx context.Context, fn func(tx Tx) error) error
}

// Event is a named payload emitted by a committed transaction.
type Event struct {
	Name    string
	Payload []byte
}

// EventSink receives the events of committed transactions.
type EventSink interface {
	Publish(ctx context.Context, event Event) error
}

type callerKey struct{}

// WithCaller returns a context carrying the submitting identity.
func WithCaller(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, callerKey{}, id)
}

// CallerFrom returns the identity stored in ctx, or Anonymous.
func CallerFrom(ctx context.Context) Identity {
	if id, ok := ctx.Value(callerKey{}).(Identity); ok && id.ID != "" {
		return id
	}
	return Anonymous
}

// Clock returns transaction timestamps. Backends default to UTC wall time.
type Clock func() time.Time

// SystemClock is the default Clock.
func SystemClock() time.Time {
	return time.Now().UTC()
}
