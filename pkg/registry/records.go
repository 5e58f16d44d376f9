package registry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/models"
)

// validator is implemented by records that can check their own fields.
type validator interface {
	Validate() error
}

// envelope carries the discriminators shared by every record.
type envelope struct {
	DocType     string             `json:"docType"`
	RequestType models.RequestType `json:"requestType,omitempty"`
}

// decode unmarshals raw into dst after checking its discriminators. Every
// decoding problem is reported as ErrDataCorruption.
func decode(key ledger.Key, raw []byte, docType string, requestType models.RequestType, dst interface{}) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDataCorruption, key, err)
	}
	if env.DocType != docType {
		return fmt.Errorf("%w: %s: docType %q, expected %q", ErrDataCorruption, key, env.DocType, docType)
	}
	if env.RequestType != requestType {
		return fmt.Errorf("%w: %s: requestType %q, expected %q", ErrDataCorruption, key, env.RequestType, requestType)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDataCorruption, key, err)
	}
	if v, ok := dst.(validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrDataCorruption, key, err)
		}
	}
	return nil
}

// load reads key and decodes it. notFound is the message used when the key
// is absent.
func load(ctx context.Context, tx ledger.Tx, key ledger.Key, docType string, requestType models.RequestType, dst interface{}, notFound string) error {
	raw, err := tx.GetState(ctx, key)
	if err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, notFound)
	}
	return decode(key, raw, docType, requestType, dst)
}

func store(ctx context.Context, tx ledger.Tx, key ledger.Key, record interface{}) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return tx.PutState(ctx, key, raw)
}

func loadUserRequest(ctx context.Context, tx ledger.Tx, key ledger.Key) (*models.UserRequest, error) {
	var r models.UserRequest
	if err := load(ctx, tx, key, models.DocTypeRequest, models.RequestTypeUser, &r, "no matching request found"); err != nil {
		return nil, err
	}
	return &r, nil
}

func loadPropertyRequest(ctx context.Context, tx ledger.Tx, key ledger.Key) (*models.PropertyRequest, error) {
	var r models.PropertyRequest
	if err := load(ctx, tx, key, models.DocTypeRequest, models.RequestTypeProperty, &r, "no matching request found"); err != nil {
		return nil, err
	}
	return &r, nil
}

func loadUser(ctx context.Context, tx ledger.Tx, key ledger.Key, notFound string) (*models.User, error) {
	var u models.User
	if err := load(ctx, tx, key, models.DocTypeUser, "", &u, notFound); err != nil {
		return nil, err
	}
	return &u, nil
}

func loadProperty(ctx context.Context, tx ledger.Tx, key ledger.Key) (*models.Property, error) {
	var p models.Property
	if err := load(ctx, tx, key, models.DocTypeProperty, "", &p, "no matching property found"); err != nil {
		return nil, err
	}
	return &p, nil
}
