// Package events delivers the events of committed ledger transactions to
// external consumers.
package events

import (
	"context"
	"encoding/json"

	"github.com/chris/regnet/pkg/ledger"
)

// NoOpPublisher drops every event.
type NoOpPublisher struct{}

var _ ledger.EventSink = (*NoOpPublisher)(nil)

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, event ledger.Event) error {
	return nil
}

// eventID pulls the id field out of a registry event payload. Payloads
// without one yield "".
func eventID(payload []byte) string {
	var p struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(payload, &p); err != nil {
		return ""
	}
	return p.ID
}
