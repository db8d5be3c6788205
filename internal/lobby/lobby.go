package lobby

import (
	"context"

	"go.uber.org/zap"

	"github.com/isaaclins/partygames-sub001/internal/engine"
)

type Msg interface{ isLobbyMsg() }

// FromClient carries one player action. The lobby serializes these, so the
// engine sees strictly one action at a time in arrival order. Reply, when
// non-nil, receives the action's outcome so the transport can surface
// failures to the sender alone.
type FromClient struct {
	PlayerID string
	Action   engine.Action
	Reply    chan engine.Result
}

func (FromClient) isLobbyMsg() {}

type Join struct {
	PlayerID string
	Outbox   chan Snapshot // where this client wants to receive snapshots
}

func (Join) isLobbyMsg() {}

type Leave struct{ PlayerID string }

func (Leave) isLobbyMsg() {}

type Shutdown struct{}

func (Shutdown) isLobbyMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isLobbyMsg() {}

// Snapshot is one player's personalized view: the public projection plus
// that player's own role. Never reuse one player's snapshot for another.
type Snapshot struct {
	Version int
	State   engine.PlayerState
}

type View struct {
	Version    int
	NumClients int
	Phase      engine.Phase
	Players    []engine.Player
	Results    *engine.RoundResults
}

// Lobby is an actor owning one game. All mutation happens on the loop
// goroutine.
type Lobby struct {
	inbox   chan Msg
	game    *engine.Game
	version int
	clients map[string]chan Snapshot
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewLobby constructs the game (roles are dealt immediately) and starts the
// actor loop. The roster must be validated by the caller.
func NewLobby(parent context.Context, players []engine.Player, log *zap.Logger) *Lobby {
	ctx, cancel := context.WithCancel(parent)

	l := &Lobby{
		inbox:   make(chan Msg, 64), // Small buffer
		game:    engine.NewGame(players),
		version: 0,
		clients: make(map[string]chan Snapshot),
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}

	go l.loop()
	return l
}

func (l *Lobby) loop() {
	for {
		select {
		case <-l.ctx.Done():
			l.shutdown()
			return

		case m := <-l.inbox:
			switch msg := m.(type) {
			case Join:
				// Register client + send their personal snapshot immediately.
				// A full outbox gets the same treatment as in broadcast: the
				// client is refused instead of stalling the loop.
				select {
				case msg.Outbox <- Snapshot{Version: l.version, State: l.game.PlayerState(msg.PlayerID)}:
					l.clients[msg.PlayerID] = msg.Outbox
				default:
					close(msg.Outbox)
				}

			case Leave:
				delete(l.clients, msg.PlayerID)

			case FromClient:
				res, err := l.game.Apply(msg.Action)
				if err != nil {
					// Invariant violation inside the engine; the game is
					// wedged and this needs eyes, not a retry.
					l.log.Error("game state inconsistent",
						zap.String("player", msg.PlayerID),
						zap.Error(err))
				}
				if msg.Reply != nil {
					select {
					case msg.Reply <- res:
					default:
					}
				}
				if res.Success && res.Update != nil {
					l.version++
					l.broadcast()
				}

			case GetState:
				// test-only: reflect internal state without data races
				results, _ := l.game.RoundResults()
				msg.Reply <- View{
					Version:    l.version,
					NumClients: len(l.clients),
					Phase:      l.game.Phase(),
					Players:    l.game.Players(),
					Results:    results,
				}

			case Shutdown:
				l.shutdown()
				return
			}
		}
	}
}

func (l *Lobby) shutdown() {
	for id, ch := range l.clients {
		close(ch) // Tell client no more snapshots
		delete(l.clients, id)
	}
	l.cancel()
}

// broadcast sends each connected player their own projection of the current
// state. Slow clients are dropped rather than blocking the loop.
func (l *Lobby) broadcast() {
	for id, ch := range l.clients {
		snap := Snapshot{Version: l.version, State: l.game.PlayerState(id)}
		select {
		case ch <- snap:
			//ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(l.clients, id)
		}
	}
}

// Expose the inbox so tests or the WS layer can send messages.
func (l *Lobby) Inbox() chan<- Msg { return l.inbox }
