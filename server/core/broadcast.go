package core

import (
	"sync"

	"github.com/automoto/obstacle-sync/shared/messages"
	"github.com/leap-fish/necs/esync"
	"github.com/rs/zerolog"
)

// Peer is a joined client. *router.NetworkClient satisfies it.
type Peer interface {
	Id() string
	SendMessage(msg any) error
}

// cached is what a late joiner needs to rebuild one obstacle.
type cached struct {
	firstFull  *messages.ObstacleUpdate
	latestFull *messages.ObstacleUpdate
	partial    *messages.ObstacleUpdate
}

// Broadcaster fans obstacle updates out to joined peers and replays the
// current state of every live obstacle to peers that join late.
type Broadcaster struct {
	mu    sync.Mutex
	log   zerolog.Logger
	peers map[string]Peer

	order []esync.NetworkId
	state map[esync.NetworkId]*cached
}

func NewBroadcaster(log zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		log:   log.With().Str("component", "broadcast").Logger(),
		peers: make(map[string]Peer),
		state: make(map[esync.NetworkId]*cached),
	}
}

// Join sends the catch-up stream to p and subscribes it to later updates.
// For each live obstacle the latest partial goes first so the receiver
// creates it silently, then the first full (it carries the door hinge) and
// the latest full when that differs.
func (b *Broadcaster) Join(p Peer) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sent := 0
	for _, id := range b.order {
		c := b.state[id]
		for i, u := range []*messages.ObstacleUpdate{c.partial, c.firstFull, c.latestFull} {
			if u == nil || (i == 2 && c.latestFull == c.firstFull) {
				continue
			}
			if err := p.SendMessage(u.Message()); err != nil {
				b.log.Warn().Err(err).Str("peer", p.Id()).Msg("catch-up failed")
				return
			}
			sent++
		}
	}
	b.peers[p.Id()] = p
	b.log.Info().Str("peer", p.Id()).Int("obstacles", len(b.order)).Int("sent", sent).Msg("peer joined")
}

func (b *Broadcaster) Leave(p Peer) {
	b.mu.Lock()
	delete(b.peers, p.Id())
	b.mu.Unlock()
}

func (b *Broadcaster) Peers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.peers)
}

// Publish records updates and sends them, in order, to every joined peer. A
// peer that fails a send is dropped.
func (b *Broadcaster) Publish(updates []messages.ObstacleUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range updates {
		u := updates[i]
		b.remember(u)
		msg := u.Message()
		if msg == nil {
			continue
		}
		for id, p := range b.peers {
			if err := p.SendMessage(msg); err != nil {
				b.log.Warn().Err(err).Str("peer", id).Msg("dropping peer")
				delete(b.peers, id)
			}
		}
	}
}

func (b *Broadcaster) remember(u messages.ObstacleUpdate) {
	if u.Kind == messages.UpdateRemove {
		if _, ok := b.state[u.ID]; !ok {
			return
		}
		delete(b.state, u.ID)
		for i, id := range b.order {
			if id == u.ID {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
		return
	}

	c, ok := b.state[u.ID]
	if !ok {
		c = &cached{}
		b.state[u.ID] = c
		b.order = append(b.order, u.ID)
	}
	switch u.Kind {
	case messages.UpdateFull:
		if c.firstFull == nil {
			c.firstFull = &u
		}
		c.latestFull = &u
	case messages.UpdatePartial:
		c.partial = &u
	}
}
