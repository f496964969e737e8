package systems

import (
	"testing"

	"github.com/automoto/obstacle-sync/components"
	cfg "github.com/automoto/obstacle-sync/config"
	"github.com/automoto/obstacle-sync/obstacle"
	"github.com/automoto/obstacle-sync/shared/gamemath"
	"github.com/automoto/obstacle-sync/shared/messages"
	"github.com/automoto/obstacle-sync/shared/obstacledefs"
	"github.com/leap-fish/necs/esync"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObstacleWorldRunsSystemsInOrder(t *testing.T) {
	defs := obstacledefs.DefaultRegistry()
	door, err := defs.Lookup("door")
	require.NoError(t, err)

	q := &queue{}
	var played []string
	e, sync := NewObstacleWorld(WorldOptions{
		Config:      cfg.Defaults(),
		Definitions: defs,
		Source:      q,
		Log:         zerolog.Nop(),
		Play: func(req components.SoundRequest) {
			played = append(played, req.Name)
		},
		FrameRate: 10,
	})

	full, err := obstacle.EncodeFull(door, obstacle.FullUpdate{Position: gamemath.Vec2{X: 64, Y: 64}, HingeInit: true})
	require.NoError(t, err)
	partial, err := obstacle.EncodePartial(door, obstacle.PartialUpdate{Scale: 1, DoorOffset: 3})
	require.NoError(t, err)

	q.push(
		messages.ObstacleFull{ID: 1, Type: door.Index, Payload: full}.Update(),
		messages.ObstaclePartial{ID: 1, Type: door.Index, Payload: partial}.Update(),
	)
	e.Update()
	require.NoError(t, sync.Err())

	// Sync queued the open sound and the audio system played it in the same tick.
	assert.Equal(t, []string{cfg.SoundDoorOpen}, played)

	// 0.2s swing at 10 Hz: one step already ran, one more finishes it.
	e.Update()
	entry := e.World.Entry(esync.FindByNetworkId(e.World, 1))
	swing := components.DoorSwing.Get(entry)
	assert.Nil(t, swing.Tween)
	assert.InDelta(t, gamemath.OrientationToRotation(3), swing.Rotation, 1e-4)

	snaps := ObstacleSnapshots(e.World)
	require.Len(t, snaps, 1)
	assert.Equal(t, gamemath.Orientation3, snaps[1].Door.Offset)
}
