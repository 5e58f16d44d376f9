// Package chaincode runs the registry as Hyperledger Fabric smart contracts.
package chaincode

import (
	"context"
	"fmt"

	"github.com/chris/regnet/pkg/ledger"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Stub is the part of shim.ChaincodeStubInterface the ledger adapter uses.
type Stub interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	SetEvent(name string, payload []byte) error
	GetTxTimestamp() (*timestamppb.Timestamp, error)
}

// StubLedger adapts a chaincode stub to ledger.Ledger. Writes are buffered
// so that a transaction reads its own writes; they reach the stub only when
// the function succeeds. Commit and validation are the peer's business.
type StubLedger struct {
	Stub Stub
}

var _ ledger.Ledger = (*StubLedger)(nil)

func (l *StubLedger) begin(ctx context.Context) (*ledger.BufferedTx, error) {
	ts, err := l.Stub.GetTxTimestamp()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction timestamp: %w", err)
	}
	read := func(_ context.Context, key ledger.Key) ([]byte, error) {
		return l.Stub.GetState(string(key))
	}
	return ledger.NewBufferedTx(read, ts.AsTime().UTC(), ledger.CallerFrom(ctx)), nil
}

// Submit implements ledger.Ledger.
func (l *StubLedger) Submit(ctx context.Context, fn func(tx ledger.Tx) error) error {
	tx, err := l.begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return err
	}

	for _, w := range tx.Writes() {
		if err := l.Stub.PutState(string(w.Key), w.Value); err != nil {
			return fmt.Errorf("failed to put %s: %w", w.Key, err)
		}
	}
	if event, ok := tx.Event(); ok {
		if err := l.Stub.SetEvent(event.Name, event.Payload); err != nil {
			return fmt.Errorf("failed to set %s event: %w", event.Name, err)
		}
	}
	return nil
}

// Evaluate implements ledger.Ledger.
func (l *StubLedger) Evaluate(ctx context.Context, fn func(tx ledger.Tx) error) error {
	tx, err := l.begin(ctx)
	if err != nil {
		return err
	}
	return fn(tx)
}
