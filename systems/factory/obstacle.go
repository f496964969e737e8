package factory

import (
	"github.com/automoto/obstacle-sync/archetypes"
	"github.com/automoto/obstacle-sync/components"
	"github.com/automoto/obstacle-sync/obstacle"
	"github.com/automoto/obstacle-sync/shared/hitbox"
	"github.com/automoto/obstacle-sync/shared/obstacledefs"
	"github.com/automoto/obstacle-sync/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle spawns an uninitialized obstacle entity for a network id.
// presenter builds the presentation sink bound to the new entry; nil keeps
// the decoder silent.
func CreateObstacle(
	ecs *ecs.ECS,
	id esync.NetworkId,
	def *obstacledefs.Definition,
	presenter func(*donburi.Entry) obstacle.Presenter,
	opts ...obstacle.Option,
) *donburi.Entry {
	a := archetypes.Obstacle
	if def.IsDoor {
		a = archetypes.Door
	}
	entry := a.Spawn(ecs)
	esync.NetworkIdComponent.SetValue(entry, id)

	if presenter != nil {
		opts = append(opts, obstacle.WithPresenter(presenter(entry)))
	}
	components.Obstacle.SetValue(entry, components.ObstacleData{
		Obstacle: obstacle.New(def, opts...),
	})
	return entry
}

// SyncCollision replaces the entry's collision objects with the current
// hitbox of its obstacle and keeps the collision space in step.
func SyncCollision(ecs *ecs.ECS, entry *donburi.Entry) {
	obs := components.Obstacle.Get(entry)
	col := components.Collision.Get(entry)

	var space *components.SpaceData
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space = components.Space.Get(spaceEntry)
	}

	if space != nil && len(col.Objects) > 0 {
		space.Space.Remove(col.Objects...)
	}

	resolvTags := []string{tags.ResolvObstacle}
	if obs.Definition().IsDoor {
		resolvTags = append(resolvTags, tags.ResolvDoor)
	}
	if obs.Dead() {
		resolvTags = append(resolvTags, tags.ResolvResidue)
	}

	col.Objects = hitbox.Objects(obs.Hitbox(), resolvTags...)
	for _, obj := range col.Objects {
		obj.Data = entry
	}
	if space != nil && len(col.Objects) > 0 {
		space.Space.Add(col.Objects...)
	}
}

// DestroyObstacle removes the entry and its collision objects.
func DestroyObstacle(ecs *ecs.ECS, entry *donburi.Entry) {
	col := components.Collision.Get(entry)
	if spaceEntry, ok := components.Space.First(ecs.World); ok && len(col.Objects) > 0 {
		components.Space.Get(spaceEntry).Space.Remove(col.Objects...)
	}
	ecs.World.Remove(entry.Entity())
}
