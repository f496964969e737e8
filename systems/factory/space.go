package factory

import (
	"github.com/automoto/obstacle-sync/archetypes"
	"github.com/automoto/obstacle-sync/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

func CreateAudio(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Audio.Spawn(ecs)
}
