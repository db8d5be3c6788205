package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/isaaclins/partygames-sub001/internal/hub"
	"github.com/isaaclins/partygames-sub001/internal/ws"
)

// SetupRoutes mounts the API. wsOrigins is handed to the websocket
// handler's origin check.
func SetupRoutes(h *hub.Hub, wsOrigins []string, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Post("/lobbies", CreateLobby(h, log))
	r.Get("/lobbies/{code}", GetLobbyInfo(h))
	r.Get("/lobbies/{code}/results", GetLobbyResults(h))
	r.Get("/locations", GetLocations)
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, wsOrigins, log))
	return r
}
