package ledger

import "errors"

// ErrConflict is returned by optimistic backends when a key read by the
// transaction changed before it could commit. Nothing was written.
var ErrConflict = errors.New("ledger conflict: state changed during transaction")

// ErrInvalidKey is returned for composite keys that cannot be encoded.
var ErrInvalidKey = errors.New("invalid composite key")
