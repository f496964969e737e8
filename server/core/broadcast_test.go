package core

import (
	"errors"
	"testing"

	"github.com/automoto/obstacle-sync/shared/messages"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePeer struct {
	id   string
	sent []any
	fail bool
}

func (p *fakePeer) Id() string { return p.id }

func (p *fakePeer) SendMessage(msg any) error {
	if p.fail {
		return errors.New("closed")
	}
	p.sent = append(p.sent, msg)
	return nil
}

func full(id uint, payload byte) messages.ObstacleUpdate {
	return messages.ObstacleFull{ID: esyncID(id), Type: 1, Payload: []byte{payload}}.Update()
}

func partial(id uint, payload byte) messages.ObstacleUpdate {
	return messages.ObstaclePartial{ID: esyncID(id), Type: 1, Payload: []byte{payload}}.Update()
}

func TestBroadcastLiveInOrder(t *testing.T) {
	b := NewBroadcaster(zerolog.Nop())
	p := &fakePeer{id: "a"}
	b.Join(p)
	assert.Empty(t, p.sent)

	b.Publish([]messages.ObstacleUpdate{full(1, 1), partial(1, 2), messages.ObstacleRemove{ID: 1}.Update()})

	require.Len(t, p.sent, 3)
	assert.IsType(t, messages.ObstacleFull{}, p.sent[0])
	assert.IsType(t, messages.ObstaclePartial{}, p.sent[1])
	assert.Equal(t, messages.ObstacleRemove{ID: 1}, p.sent[2])
}

func TestBroadcastCatchUp(t *testing.T) {
	b := NewBroadcaster(zerolog.Nop())
	b.Publish([]messages.ObstacleUpdate{
		full(1, 10), partial(1, 11), partial(1, 12), full(1, 13),
		full(2, 20),
		full(3, 30), messages.ObstacleRemove{ID: 3}.Update(),
	})

	p := &fakePeer{id: "late"}
	b.Join(p)

	assert.Equal(t, []any{
		messages.ObstaclePartial{ID: 1, Type: 1, Payload: []byte{12}},
		messages.ObstacleFull{ID: 1, Type: 1, Payload: []byte{10}},
		messages.ObstacleFull{ID: 1, Type: 1, Payload: []byte{13}},
		messages.ObstacleFull{ID: 2, Type: 1, Payload: []byte{20}},
	}, p.sent)
	assert.Equal(t, 1, b.Peers())
}

func TestBroadcastCatchUpSingleFull(t *testing.T) {
	b := NewBroadcaster(zerolog.Nop())
	b.Publish([]messages.ObstacleUpdate{full(7, 70), partial(7, 71)})

	p := &fakePeer{id: "late"}
	b.Join(p)

	assert.Equal(t, []any{
		messages.ObstaclePartial{ID: 7, Type: 1, Payload: []byte{71}},
		messages.ObstacleFull{ID: 7, Type: 1, Payload: []byte{70}},
	}, p.sent)
}

func TestBroadcastDropsFailingPeer(t *testing.T) {
	b := NewBroadcaster(zerolog.Nop())
	good := &fakePeer{id: "good"}
	bad := &fakePeer{id: "bad"}
	b.Join(good)
	b.Join(bad)
	bad.fail = true

	b.Publish([]messages.ObstacleUpdate{full(1, 1)})
	assert.Equal(t, 1, b.Peers())
	assert.Len(t, good.sent, 1)

	b.Leave(good)
	assert.Equal(t, 0, b.Peers())
}
