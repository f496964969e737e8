package messages

import "github.com/leap-fish/necs/esync"

// ObstacleFull carries the bit-packed full state of an obstacle. It is sent
// when the obstacle is created or re-created on the server.
type ObstacleFull struct {
	ID      esync.NetworkId
	Type    uint16 // definition index
	Payload []byte
}

// ObstaclePartial carries the bit-packed per-tick state of an obstacle. Type
// is repeated so a partial that arrives before the full can still be decoded.
type ObstaclePartial struct {
	ID      esync.NetworkId
	Type    uint16
	Payload []byte
}

// ObstacleRemove is sent when the server deletes an obstacle.
type ObstacleRemove struct {
	ID esync.NetworkId
}

// UpdateKind tags an ObstacleUpdate.
type UpdateKind uint8

const (
	UpdateFull UpdateKind = iota + 1
	UpdatePartial
	UpdateRemove
)

func (k UpdateKind) String() string {
	switch k {
	case UpdateFull:
		return "full"
	case UpdatePartial:
		return "partial"
	case UpdateRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// ObstacleUpdate is the queued form of the three obstacle messages, so
// updates of every kind keep their arrival order in a single queue.
type ObstacleUpdate struct {
	Kind    UpdateKind
	ID      esync.NetworkId
	Type    uint16
	Payload []byte
}

func (m ObstacleFull) Update() ObstacleUpdate {
	return ObstacleUpdate{Kind: UpdateFull, ID: m.ID, Type: m.Type, Payload: m.Payload}
}

func (m ObstaclePartial) Update() ObstacleUpdate {
	return ObstacleUpdate{Kind: UpdatePartial, ID: m.ID, Type: m.Type, Payload: m.Payload}
}

func (m ObstacleRemove) Update() ObstacleUpdate {
	return ObstacleUpdate{Kind: UpdateRemove, ID: m.ID}
}

// Message returns the wire message of u, or nil for an unknown kind.
func (u ObstacleUpdate) Message() any {
	switch u.Kind {
	case UpdateFull:
		return ObstacleFull{ID: u.ID, Type: u.Type, Payload: u.Payload}
	case UpdatePartial:
		return ObstaclePartial{ID: u.ID, Type: u.Type, Payload: u.Payload}
	case UpdateRemove:
		return ObstacleRemove{ID: u.ID}
	default:
		return nil
	}
}
