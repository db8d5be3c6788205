package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/isaaclins/partygames-sub001/internal/engine"
	"github.com/isaaclins/partygames-sub001/internal/hub"
	"github.com/isaaclins/partygames-sub001/internal/lobby"
	"github.com/isaaclins/partygames-sub001/internal/types"
)

// Handler upgrades a player connection and bridges it to the lobby actor.
// Query params: code (room code) and player (the id returned on creation).
// origins lists the host patterns allowed to connect cross-origin; empty
// means same-origin only.
func Handler(h *hub.Hub, origins []string, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}
		playerID := r.URL.Query().Get("player")
		if playerID == "" {
			http.Error(w, "missing player", http.StatusBadRequest)
			return
		}

		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.GetLobby{Code: code, Reply: reply}
		lb := <-reply
		if lb == nil {
			http.Error(w, "lobby not found", http.StatusNotFound)
			return
		}
		if !rosterHas(lb, playerID) {
			http.Error(w, "player not in lobby", http.StatusForbidden)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: origins,
		})
		if err != nil {
			log.Warn("websocket accept failed", zap.String("code", code), zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan lobby.Snapshot, 8)
		results := make(chan engine.Result, 8)

		lb.Inbox() <- lobby.Join{PlayerID: playerID, Outbox: out}
		defer func() { lb.Inbox() <- lobby.Leave{PlayerID: playerID} }()

		// Writer goroutine: snapshots plus this player's action failures.
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for {
				var msg types.ServerMessage
				select {
				case <-writeCtx.Done():
					return
				case snap, ok := <-out:
					if !ok {
						return
					}
					msg = types.ServerMessage{Type: "StateSnapshot", Version: snap.Version, State: &snap.State}
				case res := <-results:
					if res.Success {
						continue
					}
					msg = types.ServerMessage{Type: "Error", Error: res.Error}
				}
				payload, _ := json.Marshal(msg)
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
			_, data, err := conn.Read(ctx)
			cancel()
			if err != nil {
				// Treat clean close/going-away as normal:
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Otherwise, just exit (lobby.Leave in defer):
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				_ = conn.Write(r.Context(), websocket.MessageText,
					[]byte(`{"type":"Error","error":"bad json"}`))
				continue
			}

			action, ok := toEngineAction(cm, playerID)
			if !ok {
				_ = conn.Write(r.Context(), websocket.MessageText,
					[]byte(`{"type":"Error","error":"Invalid action type"}`))
				continue
			}

			lb.Inbox() <- lobby.FromClient{PlayerID: playerID, Action: action, Reply: results}
		}
	}
}

func toEngineAction(m types.ClientMessage, playerID string) (engine.Action, bool) {
	switch m.Type {
	case "ready_to_vote":
		return engine.ReadyToVote{PlayerID: playerID}, true
	case "submit_vote":
		return engine.SubmitVote{PlayerID: playerID, TargetPlayerID: m.TargetPlayerID, At: time.Now()}, true
	case "guess_location":
		return engine.GuessLocation{PlayerID: playerID, GuessedLocation: m.GuessedLocation, At: time.Now()}, true
	default:
		return nil, false
	}
}

func rosterHas(lb *lobby.Lobby, playerID string) bool {
	reply := make(chan lobby.View, 1)
	lb.Inbox() <- lobby.GetState{Reply: reply}
	view := <-reply
	for _, p := range view.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
