package systems

import (
	"math/rand"

	"github.com/automoto/obstacle-sync/components"
	cfg "github.com/automoto/obstacle-sync/config"
	"github.com/automoto/obstacle-sync/shared/obstacledefs"
	"github.com/automoto/obstacle-sync/systems/factory"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldOptions configures NewObstacleWorld.
type WorldOptions struct {
	Config      cfg.Config
	Definitions *obstacledefs.Registry
	Source      UpdateSource
	Log         zerolog.Logger
	Rand        *rand.Rand
	// Play receives every queued sound. Nil only logs them.
	Play func(components.SoundRequest)
	// FrameRate is how often the returned ECS is updated, in Hz.
	FrameRate int
}

// NewObstacleWorld creates the collision space and audio singleton and adds
// the sync, door swing and audio systems, in that order.
func NewObstacleWorld(o WorldOptions) (*ecs.ECS, *ObstacleSync) {
	e := ecs.NewECS(donburi.NewWorld())

	s := o.Config.Sync
	factory.CreateSpace(e, s.SpaceWidth, s.SpaceHeight, s.CellSize, s.CellSize)
	factory.CreateAudio(e)

	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	presenter := NewEntityPresenter(e.World, o.Config.Audio, o.Config.Door, rng)
	sync := NewObstacleSync(o.Definitions, o.Source, presenter, o.Log)

	frameRate := o.FrameRate
	if frameRate <= 0 {
		frameRate = s.TickRate
	}

	e.AddSystem(sync.Update)
	e.AddSystem(NewDoorSwingSystem(1 / float32(frameRate)))
	e.AddSystem(NewAudioSystem(o.Log.With().Str("component", "audio").Logger(), o.Play))

	return e, sync
}
