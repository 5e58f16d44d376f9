package properties

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris/regnet/pkg/api"
	"github.com/chris/regnet/pkg/handlers/httperr"
	"github.com/chris/regnet/pkg/mapping"
	"github.com/chris/regnet/pkg/registry"
)

// PropertiesHandler holds the dependencies for property-related handlers.
type PropertiesHandler struct {
	Registry registry.PropertyRegistry
}

// NewPropertiesHandler creates a new PropertiesHandler.
func NewPropertiesHandler(r registry.PropertyRegistry) *PropertiesHandler {
	return &PropertiesHandler{Registry: r}
}

func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	return true
}

// PropertyRegistrationRequest handles a request to register a property.
func (h *PropertiesHandler) PropertyRegistrationRequest(w http.ResponseWriter, r *http.Request) {
	var body api.NewPropertyRequest
	if !decode(w, r, &body) {
		return
	}

	req, err := h.Registry.PropertyRegistrationRequest(r.Context(), body.PropId, body.Price, body.OwnerName, body.OwnerSsn)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, mapping.ToApiPropertyRequest(req))
}

// ApprovePropertyRegistration handles the registrar's approval of a property request.
func (h *PropertiesHandler) ApprovePropertyRegistration(w http.ResponseWriter, r *http.Request, propId string) {
	p, err := h.Registry.ApprovePropertyRegistration(r.Context(), propId)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, mapping.ToApiProperty(p))
}

// ViewProperty handles the logic for retrieving an approved property.
func (h *PropertiesHandler) ViewProperty(w http.ResponseWriter, r *http.Request, propId string) {
	p, err := h.Registry.ViewProperty(r.Context(), propId)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, mapping.ToApiProperty(p))
}

// UpdateProperty handles a status change requested by the owner.
func (h *PropertiesHandler) UpdateProperty(w http.ResponseWriter, r *http.Request, propId string) {
	var body api.PropertyUpdate
	if !decode(w, r, &body) {
		return
	}

	p, err := h.Registry.UpdateProperty(r.Context(), propId, mapping.ToDomainStatus(body.Status), body.OwnerName, body.OwnerSsn)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, mapping.ToApiProperty(p))
}

// PurchaseProperty handles the purchase of a property that is on sale.
func (h *PropertiesHandler) PurchaseProperty(w http.ResponseWriter, r *http.Request, propId string) {
	var body api.Purchase
	if !decode(w, r, &body) {
		return
	}

	p, err := h.Registry.PurchaseProperty(r.Context(), propId, body.BuyerName, body.BuyerSsn)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, mapping.ToApiProperty(p))
}
