package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chris/regnet/pkg/api"
	"github.com/chris/regnet/pkg/handlers/properties"
	"github.com/chris/regnet/pkg/handlers/users"
	"github.com/chris/regnet/pkg/middleware"
	"github.com/chris/regnet/pkg/registry"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// ApiHandler implements the server interface.
// It holds our application's dependencies, including the registry.
type ApiHandler struct {
	*users.UsersHandler
	*properties.PropertiesHandler
}

// NewApiHandler creates a new ApiHandler with a registry dependency.
func NewApiHandler(r registry.Registry) *ApiHandler {
	return &ApiHandler{
		UsersHandler:      users.NewUsersHandler(r),
		PropertiesHandler: properties.NewPropertiesHandler(r),
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)

// Healthz reports that the server is up.
func (h *ApiHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, api.Health{Status: "ok"})
}

// NewRouter mounts the API on a chi router with request IDs, panic
// recovery, structured logging and caller identity.
func NewRouter(r registry.Registry, logger *slog.Logger, jwtSecret string) http.Handler {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.NewStructuredLogger(logger))
	router.Use(chimw.Recoverer)
	router.Use(middleware.Identity(jwtSecret))

	return api.HandlerWithOptions(NewApiHandler(r), api.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: api.WriteBadRequest,
	})
}
