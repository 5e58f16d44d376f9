package gateway

import (
	"fmt"
	"strings"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/registry"
)

// categories maps the message prefixes produced by the registry back to its
// sentinel errors. Chaincode errors reach the client as plain text.
var categories = []struct {
	marker string
	err    error
}{
	{registry.ErrNotFound.Error() + ": ", registry.ErrNotFound},
	{registry.ErrDataCorruption.Error() + ": ", registry.ErrDataCorruption},
	{registry.ErrUnauthorized.Error() + ": ", registry.ErrUnauthorized},
	{registry.ErrInvalidTransaction.Error() + ": ", registry.ErrInvalidTransaction},
	{"MVCC_READ_CONFLICT", ledger.ErrConflict},
	{"PHANTOM_READ_CONFLICT", ledger.ErrConflict},
}

// classify wraps a gateway error with the registry category its message
// names. The earliest marker in the message wins. Unrecognised errors are
// returned with context only.
func classify(name string, err error) error {
	msg := err.Error()
	best, at := -1, len(msg)
	for n, c := range categories {
		if i := strings.Index(msg, c.marker); i >= 0 && i < at {
			best, at = n, i
		}
	}
	if best < 0 {
		return fmt.Errorf("failed to execute %s: %w", name, err)
	}

	c := categories[best]
	if c.err == ledger.ErrConflict {
		return fmt.Errorf("%w: %s", ledger.ErrConflict, msg)
	}
	return fmt.Errorf("%w: %s", c.err, msg[at+len(c.marker):])
}
