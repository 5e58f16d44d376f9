package registry

import "errors"

// ErrNotFound is returned when a referenced request, user or property does
// not exist on the ledger.
var ErrNotFound = errors.New("not found")

// ErrDataCorruption is returned when a record exists but cannot be decoded
// into the expected variant.
var ErrDataCorruption = errors.New("data corruption")

// ErrUnauthorized is returned when the claimed owner does not match the
// owner stored on the property.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidTransaction is returned when a business precondition fails:
// wrong status, insufficient balance, unknown recharge code, bad arguments.
var ErrInvalidTransaction = errors.New("invalid transaction")

// ErrUnknownFunction is returned by Invoke for names that are not entry points.
var ErrUnknownFunction = errors.New("unknown function")
