// Package httperr maps registry and ledger errors onto HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/chris/regnet/pkg/api"
	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/registry"
)

// Status returns the HTTP status for err.
func Status(err error) int {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, registry.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, registry.ErrInvalidTransaction):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Write responds with the status for err and its message.
func Write(w http.ResponseWriter, err error) {
	api.WriteError(w, Status(err), err.Error())
}
