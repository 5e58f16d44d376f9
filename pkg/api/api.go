package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=cfg.yaml openapi.yaml

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Property statuses on the wire. Status fields stay plain strings so the
// chaincode metadata keeps to the basic types.
const (
	Registered = "registered"
	OnSale     = "onSale"
)

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// WriteError writes an Error body.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Error{Error: msg})
}

// WriteBadRequest reports a malformed request. It is the ErrorHandlerFunc
// for parameter binding failures.
func WriteBadRequest(w http.ResponseWriter, _ *http.Request, err error) {
	WriteError(w, http.StatusBadRequest, err.Error())
}
