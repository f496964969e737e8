package systems

import (
	"fmt"

	"github.com/automoto/obstacle-sync/components"
	"github.com/automoto/obstacle-sync/obstacle"
	"github.com/automoto/obstacle-sync/shared/bitstream"
	"github.com/automoto/obstacle-sync/shared/hitbox"
	"github.com/automoto/obstacle-sync/shared/messages"
	"github.com/automoto/obstacle-sync/shared/obstacledefs"
	"github.com/automoto/obstacle-sync/systems/factory"
	"github.com/leap-fish/necs/esync"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSource hands out obstacle updates in arrival order.
type UpdateSource interface {
	DrainUpdates() []messages.ObstacleUpdate
}

// SyncStats counts the updates applied by an ObstacleSync.
type SyncStats struct {
	Full    int
	Partial int
	Removed int
	Created int
}

// ObstacleSync applies queued obstacle updates to ECS entities. It is the
// only writer of obstacle records and runs on the game loop goroutine.
type ObstacleSync struct {
	defs      *obstacledefs.Registry
	source    UpdateSource
	presenter func(*donburi.Entry) obstacle.Presenter
	log       zerolog.Logger

	stats SyncStats
	err   error
}

func NewObstacleSync(
	defs *obstacledefs.Registry,
	source UpdateSource,
	presenter func(*donburi.Entry) obstacle.Presenter,
	log zerolog.Logger,
) *ObstacleSync {
	return &ObstacleSync{
		defs:      defs,
		source:    source,
		presenter: presenter,
		log:       log.With().Str("component", "obstaclesync").Logger(),
	}
}

// Update drains the source and applies every update. After the first error
// the system stops; the error is available from Err.
func (s *ObstacleSync) Update(e *ecs.ECS) {
	if s.err != nil {
		return
	}
	for _, u := range s.source.DrainUpdates() {
		if err := s.Apply(e, u); err != nil {
			s.err = err
			s.log.Error().Err(err).
				Uint("id", uint(u.ID)).
				Stringer("kind", u.Kind).
				Msg("obstacle stream is unusable")
			return
		}
	}
}

// Err returns the error that stopped the system, if any.
func (s *ObstacleSync) Err() error { return s.err }

func (s *ObstacleSync) Stats() SyncStats { return s.stats }

// Apply applies a single update. Errors are fatal for the stream: a payload
// that does not decode (obstacle.ErrProtocol) or an unknown type
// (obstacledefs.ErrUnknownDefinition).
func (s *ObstacleSync) Apply(e *ecs.ECS, u messages.ObstacleUpdate) error {
	switch u.Kind {
	case messages.UpdateRemove:
		s.remove(e, u.ID)
		return nil
	case messages.UpdateFull, messages.UpdatePartial:
	default:
		return fmt.Errorf("%w: update kind %d", obstacle.ErrProtocol, u.Kind)
	}

	entry, err := s.lookup(e, u)
	if err != nil {
		return err
	}
	obs := components.Obstacle.Get(entry)

	prevHitbox, prevDead := obs.Hitbox(), obs.Dead()

	r := bitstream.NewReader(u.Payload)
	if u.Kind == messages.UpdateFull {
		err = obs.DecodeFull(r)
		s.stats.Full++
	} else {
		err = obs.DecodePartial(r)
		s.stats.Partial++
	}
	if err != nil {
		return fmt.Errorf("obstacle %d: %w", u.ID, err)
	}

	if !hitbox.Equal(prevHitbox, obs.Hitbox()) || prevDead != obs.Dead() {
		factory.SyncCollision(e, entry)
	}
	return nil
}

// lookup returns the entity of u.ID, creating it on first sight.
func (s *ObstacleSync) lookup(e *ecs.ECS, u messages.ObstacleUpdate) (*donburi.Entry, error) {
	def, err := s.defs.ByIndex(u.Type)
	if err != nil {
		return nil, fmt.Errorf("obstacle %d: %w", u.ID, err)
	}

	entity := esync.FindByNetworkId(e.World, u.ID)
	if e.World.Valid(entity) {
		entry := e.World.Entry(entity)
		if !entry.HasComponent(components.Obstacle) {
			return nil, fmt.Errorf("%w: network id %d is not an obstacle", obstacle.ErrProtocol, u.ID)
		}
		if have := components.Obstacle.Get(entry).Definition(); have.Index != def.Index {
			return nil, fmt.Errorf("%w: obstacle %d changed type from %s to %s",
				obstacle.ErrProtocol, u.ID, have.ID, def.ID)
		}
		return entry, nil
	}

	entry := factory.CreateObstacle(e, u.ID, def, s.presenter,
		obstacle.WithLogger(s.log.With().Uint("id", uint(u.ID)).Logger()))
	s.stats.Created++
	s.log.Debug().
		Uint("id", uint(u.ID)).
		Str("type", def.ID).
		Stringer("first", u.Kind).
		Msg("obstacle created")
	return entry, nil
}

func (s *ObstacleSync) remove(e *ecs.ECS, id esync.NetworkId) {
	entity := esync.FindByNetworkId(e.World, id)
	if !e.World.Valid(entity) {
		s.log.Debug().Uint("id", uint(id)).Msg("remove for unknown obstacle")
		return
	}
	factory.DestroyObstacle(e, e.World.Entry(entity))
	s.stats.Removed++
}

// ObstacleSnapshots returns the state of every obstacle keyed by network id.
func ObstacleSnapshots(world donburi.World) map[esync.NetworkId]obstacle.Snapshot {
	out := make(map[esync.NetworkId]obstacle.Snapshot)
	components.Obstacle.Each(world, func(entry *donburi.Entry) {
		if nid := esync.GetNetworkId(entry); nid != nil {
			out[*nid] = components.Obstacle.Get(entry).Snapshot()
		}
	})
	return out
}
