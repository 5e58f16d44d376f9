package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/fab"
)

// EventSource is the event half of *gateway.Contract.
type EventSource interface {
	RegisterEvent(eventFilter string) (fab.Registration, <-chan *fab.CCEvent, error)
	Unregister(registration fab.Registration)
}

// ForwardEvents relays every event the chaincode sets to sink until ctx is
// cancelled. Delivery failures are logged and the listener keeps running.
func (c *Client) ForwardEvents(ctx context.Context, sink ledger.EventSink, logger *slog.Logger) error {
	if c.Events == nil {
		return fmt.Errorf("client has no event source")
	}
	if logger == nil {
		logger = slog.Default()
	}

	reg, notifier, err := c.Events.RegisterEvent(".*")
	if err != nil {
		return fmt.Errorf("failed to register chaincode event listener: %w", err)
	}

	go func() {
		defer c.Events.Unregister(reg)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-notifier:
				if !ok {
					return
				}
				err := sink.Publish(ctx, ledger.Event{Name: ev.EventName, Payload: ev.Payload})
				if err != nil {
					logger.Error("failed to forward chaincode event",
						slog.String("event", ev.EventName),
						slog.String("tx_id", ev.TxID),
						slog.String("error", err.Error()),
					)
				}
			}
		}
	}()

	return nil
}
