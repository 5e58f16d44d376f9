package users

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris/regnet/pkg/api"
	"github.com/chris/regnet/pkg/handlers/httperr"
	"github.com/chris/regnet/pkg/mapping"
	"github.com/chris/regnet/pkg/registry"
)

// UsersHandler holds the dependencies for user-related handlers.
type UsersHandler struct {
	Registry registry.UserRegistry
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(r registry.UserRegistry) *UsersHandler {
	return &UsersHandler{Registry: r}
}

// RequestNewUser handles the logic for requesting a new account.
func (h *UsersHandler) RequestNewUser(w http.ResponseWriter, r *http.Request) {
	var body api.NewUserRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	req, err := h.Registry.RequestNewUser(r.Context(), body.Name, body.Email, body.Phone, body.Ssn)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, mapping.ToApiUserRequest(req))
}

// ApproveNewUser handles the registrar's approval of a user request.
func (h *UsersHandler) ApproveNewUser(w http.ResponseWriter, r *http.Request, name string, ssn string) {
	user, err := h.Registry.ApproveNewUser(r.Context(), name, ssn)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, mapping.ToApiUser(user))
}

// ViewUser handles the logic for retrieving an approved user.
func (h *UsersHandler) ViewUser(w http.ResponseWriter, r *http.Request, name string, ssn string) {
	user, err := h.Registry.ViewUser(r.Context(), name, ssn)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, mapping.ToApiUser(user))
}

// RechargeAccount handles a balance recharge from a bank transaction code.
func (h *UsersHandler) RechargeAccount(w http.ResponseWriter, r *http.Request, name string, ssn string) {
	var body api.Recharge
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	user, err := h.Registry.RechargeAccount(r.Context(), name, ssn, body.BankTxId)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, mapping.ToApiUser(user))
}
