package archetypes

import (
	"github.com/automoto/obstacle-sync/components"
	cfg "github.com/automoto/obstacle-sync/config"
	"github.com/automoto/obstacle-sync/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Obstacle = newArchetype(
		tags.Obstacle,
		esync.NetworkIdComponent,
		components.Obstacle,
		components.Collision,
		components.Appearance,
	)
	Door = newArchetype(
		tags.Obstacle,
		tags.Door,
		esync.NetworkIdComponent,
		components.Obstacle,
		components.Collision,
		components.Appearance,
		components.DoorSwing,
	)
	Space = newArchetype(
		components.Space,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Viewer = newArchetype(
		components.Camera,
		components.Viewer,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
