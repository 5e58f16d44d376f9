package models

import (
	"time"

	"github.com/chris/regnet/pkg/ledger"
)

// Discriminator values stored in the docType field.
const (
	DocTypeRequest  = "request"
	DocTypeUser     = "user"
	DocTypeProperty = "property"
)

// RequestType distinguishes the two request variants.
type RequestType string

const (
	RequestTypeUser     RequestType = "user"
	RequestTypeProperty RequestType = "property"
)

// PropertyStatus defines the possible states of a registered property.
type PropertyStatus string

const (
	StatusRegistered PropertyStatus = "registered"
	StatusOnSale     PropertyStatus = "onSale"
)

// Valid reports whether s is a status a property may hold.
func (s PropertyStatus) Valid() bool {
	return s == StatusRegistered || s == StatusOnSale
}

// UserRequest is a pending request for a new user account.
type UserRequest struct {
	DocType     string      `json:"docType"`
	RequestType RequestType `json:"requestType"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	SSN         string      `json:"ssn"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// PropertyRequest is a pending request to register a property.
type PropertyRequest struct {
	DocType     string         `json:"docType"`
	RequestType RequestType    `json:"requestType"`
	PropID      string         `json:"propId"`
	Owner       ledger.Key     `json:"owner"`
	Price       int64          `json:"price"`
	Status      PropertyStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// User is an approved account holding an upgradCoins balance.
type User struct {
	DocType     string    `json:"docType"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	SSN         string    `json:"ssn"`
	UpgradCoins int64     `json:"upgradCoins"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Property is an approved property. Owner references a User by key.
type Property struct {
	DocType   string         `json:"docType"`
	PropID    string         `json:"propId"`
	Price     int64          `json:"price"`
	Status    PropertyStatus `json:"status"`
	Owner     ledger.Key     `json:"owner"`
	CreatedAt time.Time      `json:"createdAt"`
}

// EventPayload is the body of every event emitted by a registry transaction.
type EventPayload struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Key         string          `json:"key"`
	TxTime      time.Time       `json:"txTime"`
	SubmittedBy ledger.Identity `json:"submittedBy"`
	Record      interface{}     `json:"record"`
}

// Purchase is the record carried by a PropertyPurchased event.
type Purchase struct {
	PropID string     `json:"propId"`
	Price  int64      `json:"price"`
	Seller ledger.Key `json:"seller"`
	Buyer  ledger.Key `json:"buyer"`
}
