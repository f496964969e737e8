package network

import (
	"sync"
	"testing"

	"github.com/automoto/obstacle-sync/shared/messages"
	"github.com/leap-fish/necs/esync"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrainUpdatesKeepsArrivalOrder(t *testing.T) {
	c := NewClient(zerolog.Nop(), 8)

	c.enqueue(messages.ObstaclePartial{ID: 1, Type: 2, Payload: []byte{1}}.Update())
	c.enqueue(messages.ObstacleFull{ID: 1, Type: 2, Payload: []byte{2}}.Update())
	c.enqueue(messages.ObstaclePartial{ID: 1, Type: 2, Payload: []byte{3}}.Update())
	c.enqueue(messages.ObstacleRemove{ID: 1}.Update())

	got := c.DrainUpdates()
	require.Len(t, got, 4)
	assert.Equal(t, []messages.UpdateKind{
		messages.UpdatePartial, messages.UpdateFull, messages.UpdatePartial, messages.UpdateRemove,
	}, []messages.UpdateKind{got[0].Kind, got[1].Kind, got[2].Kind, got[3].Kind})
	assert.Equal(t, []byte{3}, got[2].Payload)

	assert.Empty(t, c.DrainUpdates())
}

func TestDrainUpdatesConcurrent(t *testing.T) {
	c := NewClient(zerolog.Nop(), 8)

	const producers, each = 4, 250
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < each; i++ {
				c.enqueue(messages.ObstaclePartial{ID: esync.NetworkId(p), Payload: []byte{byte(i)}}.Update())
			}
		}(p)
	}

	var drained []messages.ObstacleUpdate
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		drained = append(drained, c.DrainUpdates()...)
		select {
		case <-done:
			drained = append(drained, c.DrainUpdates()...)
			assert.Len(t, drained, producers*each)

			// Per producer, updates come out in the order they went in.
			next := make(map[esync.NetworkId]byte)
			for _, u := range drained {
				assert.Equal(t, next[u.ID], u.Payload[0])
				next[u.ID]++
			}
			return
		default:
		}
	}
}

func TestJoinAcceptedChecksDefinitions(t *testing.T) {
	c := NewClient(zerolog.Nop(), 8)
	c.onJoinAccepted(messages.JoinAccepted{NetworkID: 4, ServerName: "dev", TickRate: 30, Definitions: 8})
	assert.Equal(t, StateJoinedGame, c.State())
	assert.Equal(t, esync.NetworkId(4), c.NetworkID())
	assert.Equal(t, 30, c.TickRate())

	c = NewClient(zerolog.Nop(), 8)
	c.onJoinAccepted(messages.JoinAccepted{Definitions: 9})
	assert.Equal(t, StateError, c.State())
	assert.Error(t, c.LastError())
}

func TestSendMessageNotConnected(t *testing.T) {
	c := NewClient(zerolog.Nop(), 0)
	assert.Error(t, c.SendMessage(messages.JoinRequest{}))
	assert.Equal(t, "disconnected", c.State().String())
}
