package httpapi

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/isaaclins/partygames-sub001/internal/engine"
	"github.com/isaaclins/partygames-sub001/internal/hub"
	"github.com/isaaclins/partygames-sub001/internal/lobby"
	"github.com/isaaclins/partygames-sub001/internal/offline"
)

func GenerateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, 6)
	for i := 0; i < 6; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

type createLobbyRequest struct {
	Players []string `json:"players"`
}

type createLobbyResponse struct {
	Code    string          `json:"code"`
	Players []engine.Player `json:"players"`
}

// CreateLobby validates the submitted roster, mints player ids, and starts
// a game under a fresh room code. The engine itself never re-validates the
// roster, so this is the gate.
func CreateLobby(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createLobbyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		if v := offline.ValidateRoster(req.Players); !v.IsValid {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(v)
			return
		}

		players := make([]engine.Player, len(req.Players))
		for i, name := range req.Players {
			players[i] = engine.Player{ID: uuid.NewString(), Name: name}
		}

		var code string
		for {
			c, err := GenerateCode()
			if err != nil {
				http.Error(w, "failed to generate code", http.StatusInternalServerError)
				return
			}
			reply := make(chan *lobby.Lobby, 1)
			h.Inbox() <- hub.GetLobby{Code: c, Reply: reply}
			if <-reply == nil {
				code = c
				break
			}
			log.Info("collision on code, regenerating", zap.String("code", c))
		}

		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.CreateLobby{Code: code, Players: players, Reply: reply}
		if <-reply == nil {
			http.Error(w, "failed to create lobby", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(createLobbyResponse{Code: code, Players: players})
	}
}

type lobbyInfoResponse struct {
	Code    string          `json:"code"`
	Phase   engine.Phase    `json:"phase"`
	Players []engine.Player `json:"players"`
}

// GetLobbyInfo reports roster and phase, enough for a reconnecting client
// to rejoin over the websocket.
func GetLobbyInfo(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")

		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.GetLobby{Code: code, Reply: reply}
		lb := <-reply
		if lb == nil {
			http.Error(w, "lobby not found", http.StatusNotFound)
			return
		}

		view := make(chan lobby.View, 1)
		lb.Inbox() <- lobby.GetState{Reply: view}
		v := <-view

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(lobbyInfoResponse{Code: code, Phase: v.Phase, Players: v.Players})
	}
}

// GetLobbyResults returns the full reveal once the game has finished.
func GetLobbyResults(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")

		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.GetLobby{Code: code, Reply: reply}
		lb := <-reply
		if lb == nil {
			http.Error(w, "lobby not found", http.StatusNotFound)
			return
		}

		view := make(chan lobby.View, 1)
		lb.Inbox() <- lobby.GetState{Reply: view}
		v := <-view
		if v.Results == nil {
			http.Error(w, "game not finished", http.StatusConflict)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v.Results)
	}
}

// GetLocations serves the catalog so clients can render the spy's guess
// grid without hardcoding the deck.
func GetLocations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(engine.LocationNames())
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
