package ws_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/isaaclins/partygames-sub001/internal/engine"
	"github.com/isaaclins/partygames-sub001/internal/hub"
	"github.com/isaaclins/partygames-sub001/internal/lobby"
	"github.com/isaaclins/partygames-sub001/internal/ws"
)

func newTestHub(t *testing.T, code string) *hub.Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := hub.NewHub(ctx, zap.NewNop())
	reply := make(chan *lobby.Lobby, 1)
	h.Inbox() <- hub.CreateLobby{
		Code: code,
		Players: []engine.Player{
			{ID: "p1", Name: "Alice"},
			{ID: "p2", Name: "Bob"},
			{ID: "p3", Name: "Carol"},
		},
		Reply: reply,
	}
	<-reply
	return h
}

// upgradeRequest carries the handshake headers websocket.Accept verifies
// before it looks at the Origin header.
func upgradeRequest(target, origin string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.Header.Set("Connection", "Upgrade")
	r.Header.Set("Upgrade", "websocket")
	r.Header.Set("Sec-WebSocket-Version", "13")
	r.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
	if origin != "" {
		r.Header.Set("Origin", origin)
	}
	return r
}

func TestHandler_MissingParams(t *testing.T) {
	h := newTestHub(t, "ABC123")
	handler := ws.Handler(h, nil, zap.NewNop())

	cases := []string{"/ws", "/ws?code=ABC123", "/ws?player=p1"}
	for _, target := range cases {
		w := httptest.NewRecorder()
		handler(w, upgradeRequest(target, ""))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d", target, w.Code)
		}
	}
}

func TestHandler_UnknownLobby(t *testing.T) {
	h := newTestHub(t, "ABC123")
	handler := ws.Handler(h, nil, zap.NewNop())

	w := httptest.NewRecorder()
	handler(w, upgradeRequest("/ws?code=NOPE42&player=p1", ""))
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestHandler_PlayerNotInRoster(t *testing.T) {
	h := newTestHub(t, "ABC123")
	handler := ws.Handler(h, nil, zap.NewNop())

	w := httptest.NewRecorder()
	handler(w, upgradeRequest("/ws?code=ABC123&player=intruder", ""))
	if w.Code != http.StatusForbidden {
		t.Fatalf("want 403, got %d", w.Code)
	}
}

func TestHandler_OriginPatterns(t *testing.T) {
	h := newTestHub(t, "ABC123")
	handler := ws.Handler(h, []string{"game.example.com"}, zap.NewNop())

	w := httptest.NewRecorder()
	handler(w, upgradeRequest("/ws?code=ABC123&player=p1", "http://evil.example"))
	if w.Code != http.StatusForbidden {
		t.Fatalf("cross-origin request: want 403, got %d", w.Code)
	}

	// A listed origin passes the gate. The recorder cannot complete the
	// upgrade, but whatever fails next it must not be the origin check.
	w = httptest.NewRecorder()
	handler(w, upgradeRequest("/ws?code=ABC123&player=p1", "http://game.example.com"))
	if w.Code == http.StatusForbidden {
		t.Fatalf("allowed origin was rejected: %d", w.Code)
	}
}
