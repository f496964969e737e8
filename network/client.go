package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/automoto/obstacle-sync/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/rs/zerolog"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Client manages a WebSocket connection to the game server and queues the
// obstacle updates it receives. All shared fields are protected by mu
// (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	log         zerolog.Logger
	definitions int

	state      ClientState
	lastError  error
	networkID  esync.NetworkId
	serverName string
	tickRate   int
	conn       *websocket.Conn

	// updates is unbounded and drained whole: every update must be applied,
	// in arrival order.
	updates []messages.ObstacleUpdate
}

// NewClient returns a client for a receiver that registered definitions
// obstacle definitions.
func NewClient(log zerolog.Logger, definitions int) *Client {
	return &Client{
		log:         log.With().Str("component", "client").Logger(),
		definitions: definitions,
		state:       StateDisconnected,
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		c.log.Info().Str("address", address).Msg("connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendMessage(messages.JoinRequest{
			Version:    version,
			PlayerName: playerName,
		}); err != nil {
			c.setError(fmt.Errorf("failed to send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		c.onJoinAccepted(msg)
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		c.log.Warn().Str("reason", msg.Reason).Msg("join rejected")
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, msg messages.ObstacleFull) {
		c.enqueue(msg.Update())
	})

	router.On(func(_ *router.NetworkClient, msg messages.ObstaclePartial) {
		c.enqueue(msg.Update())
	})

	router.On(func(_ *router.NetworkClient, msg messages.ObstacleRemove) {
		c.enqueue(msg.Update())
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		c.log.Info().Err(err).Msg("disconnected")
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		c.log.Error().Err(err).Msg("router error")
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) onJoinAccepted(msg messages.JoinAccepted) {
	c.log.Info().
		Uint("networkID", uint(msg.NetworkID)).
		Str("server", msg.ServerName).
		Int("tickRate", msg.TickRate).
		Int("definitions", msg.Definitions).
		Msg("join accepted")

	if msg.Definitions != c.definitions {
		c.setError(fmt.Errorf("server has %d obstacle definitions, client has %d",
			msg.Definitions, c.definitions))
		return
	}

	c.mu.Lock()
	c.networkID = msg.NetworkID
	c.serverName = msg.ServerName
	c.tickRate = msg.TickRate
	c.state = StateJoinedGame
	c.mu.Unlock()
}

func (c *Client) enqueue(u messages.ObstacleUpdate) {
	c.mu.Lock()
	c.updates = append(c.updates, u)
	c.mu.Unlock()
}

// DrainUpdates returns all pending obstacle updates in arrival order, non-blocking.
func (c *Client) DrainUpdates() []messages.ObstacleUpdate {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.updates
	c.updates = nil
	return out
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	if c.state != StateError {
		c.state = StateDisconnected
	}
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) NetworkID() esync.NetworkId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.networkID
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.log.Error().Err(err).Msg("client error")
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
