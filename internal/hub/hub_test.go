package hub

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/isaaclins/partygames-sub001/internal/engine"
	"github.com/isaaclins/partygames-sub001/internal/lobby"
)

func roster() []engine.Player {
	return []engine.Player{
		{ID: "p1", Name: "Alice"},
		{ID: "p2", Name: "Bob"},
		{ID: "p3", Name: "Carol"},
	}
}

func TestHub_Create_Get_SamePointer(t *testing.T) {
	ctx := context.Background()
	h := NewHub(ctx, zap.NewNop())
	reply := make(chan *lobby.Lobby, 1)

	h.Inbox() <- CreateLobby{Code: "ZED123", Players: roster(), Reply: reply}
	lb1 := <-reply

	h.Inbox() <- GetLobby{Code: "ZED123", Reply: reply}
	lb2 := <-reply

	if lb1 == nil || lb2 == nil || lb1 != lb2 {
		t.Fatalf("expected same lobby pointer")
	}
}

func TestHub_CreateExistingCodeKeepsFirst(t *testing.T) {
	ctx := context.Background()
	h := NewHub(ctx, zap.NewNop())
	reply := make(chan *lobby.Lobby, 1)

	h.Inbox() <- CreateLobby{Code: "AAA111", Players: roster(), Reply: reply}
	first := <-reply

	h.Inbox() <- CreateLobby{Code: "AAA111", Players: roster(), Reply: reply}
	second := <-reply

	if first != second {
		t.Fatal("second create on same code must return the existing lobby")
	}
}

func TestHub_GetUnknownIsNil(t *testing.T) {
	ctx := context.Background()
	h := NewHub(ctx, zap.NewNop())
	reply := make(chan *lobby.Lobby, 1)

	h.Inbox() <- GetLobby{Code: "NOPE42", Reply: reply}
	if lb := <-reply; lb != nil {
		t.Fatalf("want nil for unknown code, got %v", lb)
	}
}

func TestHub_RemoveLobby(t *testing.T) {
	ctx := context.Background()
	h := NewHub(ctx, zap.NewNop())
	reply := make(chan *lobby.Lobby, 1)

	h.Inbox() <- CreateLobby{Code: "GONE99", Players: roster(), Reply: reply}
	<-reply

	h.Inbox() <- RemoveLobby{Code: "GONE99"}

	h.Inbox() <- GetLobby{Code: "GONE99", Reply: reply}
	if lb := <-reply; lb != nil {
		t.Fatal("removed lobby still resolvable")
	}
}
