package systems

import (
	"github.com/automoto/obstacle-sync/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewDoorSwingSystem advances door leaf tweens by dt seconds per tick.
func NewDoorSwingSystem(dt float32) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		components.DoorSwing.Each(e.World, func(entry *donburi.Entry) {
			swing := components.DoorSwing.Get(entry)
			if swing.Tween == nil {
				return
			}
			current, finished := swing.Tween.Update(dt)
			swing.Rotation = float64(current)
			if finished {
				swing.Tween = nil
			}
		})
	}
}
