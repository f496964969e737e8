package core

import (
	"testing"

	"github.com/automoto/obstacle-sync/shared/messages"
	"github.com/leap-fish/necs/esync"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func esyncID(id uint) esync.NetworkId { return esync.NetworkId(id) }

type scriptedSource struct {
	ticks [][]messages.ObstacleUpdate
}

func (s *scriptedSource) DrainUpdates() []messages.ObstacleUpdate {
	next := s.ticks[0]
	s.ticks = s.ticks[1:]
	return next
}

func (s *scriptedSource) Done() bool { return len(s.ticks) == 0 }

func newTestServer(version string, source Source) *Server {
	return &Server{
		opts:      Options{Name: "test", Version: version, TickRate: 30, Definitions: 8},
		source:    source,
		broadcast: NewBroadcaster(zerolog.Nop()),
		log:       zerolog.Nop(),
	}
}

func TestJoinAcceptedThenCatchUp(t *testing.T) {
	src := &scriptedSource{ticks: [][]messages.ObstacleUpdate{{full(5, 1)}, {partial(5, 2)}}}
	s := newTestServer("", src)
	s.tick()

	p := &fakePeer{id: "a"}
	s.onJoinRequest(p, messages.JoinRequest{Version: "anything", PlayerName: "obs"})
	require.Len(t, p.sent, 2)
	assert.Equal(t, messages.JoinAccepted{NetworkID: 1, ServerName: "test", TickRate: 30, Definitions: 8}, p.sent[0])
	assert.IsType(t, messages.ObstacleFull{}, p.sent[1])

	s.tick()
	assert.Len(t, p.sent, 3)
	assert.True(t, src.Done())
	s.tick()
	assert.Len(t, p.sent, 3)
	assert.Equal(t, 1, s.PlayerCount())
}

func TestJoinRejectedOnVersion(t *testing.T) {
	s := newTestServer("1.2.0", &scriptedSource{})
	p := &fakePeer{id: "a"}
	s.onJoinRequest(p, messages.JoinRequest{Version: "1.0.0"})

	require.Len(t, p.sent, 1)
	assert.IsType(t, messages.JoinRejected{}, p.sent[0])
	assert.Equal(t, 0, s.PlayerCount())
}
