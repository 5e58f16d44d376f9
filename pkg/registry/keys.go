package registry

import (
	"fmt"

	"github.com/chris/regnet/pkg/ledger"
)

func userKey(name, ssn string) (ledger.Key, error) {
	return compositeKey(ledger.NamespaceUser, name, ssn)
}

func userRequestKey(name, ssn string) (ledger.Key, error) {
	return compositeKey(ledger.NamespaceRequest, name, ssn)
}

func propertyKey(propID string) (ledger.Key, error) {
	return compositeKey(ledger.NamespaceProperty, propID)
}

func propertyRequestKey(propID string) (ledger.Key, error) {
	return compositeKey(ledger.NamespaceRequest, propID)
}

// compositeKey reports malformed identifiers as invalid transactions.
func compositeKey(namespace string, attrs ...string) (ledger.Key, error) {
	key, err := ledger.CompositeKey(namespace, attrs...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	return key, nil
}
