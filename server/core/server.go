package core

import (
	"sync"

	"github.com/automoto/obstacle-sync/shared/messages"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/rs/zerolog"
)

// Source hands out the obstacle updates of one server tick.
type Source interface {
	DrainUpdates() []messages.ObstacleUpdate
	Done() bool
}

// Options configures a Server.
type Options struct {
	Name        string
	Version     string // required client version, empty accepts any
	TickRate    int
	Definitions int
}

// Server streams obstacle updates from a Source to every joined client.
type Server struct {
	opts      Options
	source    Source
	broadcast *Broadcaster
	loop      *GameLoop
	transport *transports.WsServerTransport
	log       zerolog.Logger

	mu     sync.Mutex
	nextID esync.NetworkId
}

func NewServer(opts Options, source Source, log zerolog.Logger) *Server {
	log = log.With().Str("component", "server").Logger()
	s := &Server{
		opts:      opts,
		source:    source,
		broadcast: NewBroadcaster(log),
		log:       log,
	}
	s.loop = NewGameLoop(s, opts.TickRate, log)

	s.setupRouterCallbacks()
	return s
}

// Start runs the game loop and serves WebSocket clients on port until the
// transport stops.
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the game loop.
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) PlayerCount() int {
	return s.broadcast.Peers()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.log.Info().Str("client", client.Id()).Msg("client connected")
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.log.Info().Err(err).Str("client", client.Id()).Msg("client disconnected")
		s.broadcast.Leave(client)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoinRequest(client, req)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		s.log.Error().Err(err).Msg("client error")
	})
}

func (s *Server) onJoinRequest(p Peer, req messages.JoinRequest) {
	if s.opts.Version != "" && req.Version != s.opts.Version {
		s.log.Warn().Str("client", p.Id()).Str("version", req.Version).Msg("join rejected")
		if err := p.SendMessage(messages.JoinRejected{
			Reason: "version mismatch: server requires " + s.opts.Version,
		}); err != nil {
			s.log.Warn().Err(err).Msg("send join rejected")
		}
		return
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.mu.Unlock()

	if err := p.SendMessage(messages.JoinAccepted{
		NetworkID:   id,
		ServerName:  s.opts.Name,
		TickRate:    s.opts.TickRate,
		Definitions: s.opts.Definitions,
	}); err != nil {
		s.log.Warn().Err(err).Str("client", p.Id()).Msg("send join accepted")
		return
	}
	s.log.Info().Str("client", p.Id()).Str("player", req.PlayerName).Msg("join accepted")
	s.broadcast.Join(p)
}

// tick publishes the next batch of updates. Once the source is exhausted the
// last state stays available to late joiners.
func (s *Server) tick() {
	if s.source.Done() {
		return
	}
	if updates := s.source.DrainUpdates(); len(updates) > 0 {
		s.broadcast.Publish(updates)
	}
}
