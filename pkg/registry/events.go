package registry

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/models"
	"github.com/google/uuid"
)

// Event names set on registry transactions.
const (
	EventUserRequested     = "UserRequested"
	EventUserApproved      = "UserApproved"
	EventAccountRecharged  = "AccountRecharged"
	EventPropertyRequested = "PropertyRequested"
	EventPropertyApproved  = "PropertyApproved"
	EventPropertyUpdated   = "PropertyUpdated"
	EventPropertyPurchased = "PropertyPurchased"
)

// eventNamespace seeds the name-based event IDs.
var eventNamespace = uuid.MustParse("6f1c1d2e-9a57-4c1e-8d0f-2b7a5e3c9d41")

// eventID is derived from the event's content so that every endorser of
// the same transaction computes the same ID.
func eventID(name string, key ledger.Key, ts time.Time) string {
	return uuid.NewSHA1(eventNamespace, []byte(fmt.Sprintf("%s|%s|%s", name, key, ts.Format(time.RFC3339Nano)))).String()
}

func emit(tx ledger.Tx, name string, key ledger.Key, record interface{}) error {
	payload := models.EventPayload{
		ID:          eventID(name, key, tx.Timestamp()),
		Name:        name,
		Key:         key.String(),
		TxTime:      tx.Timestamp(),
		SubmittedBy: tx.Caller(),
		Record:      record,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", name, err)
	}
	return tx.SetEvent(name, raw)
}
