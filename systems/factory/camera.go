package factory

import (
	"github.com/automoto/obstacle-sync/archetypes"
	"github.com/automoto/obstacle-sync/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateViewer spawns the camera and toggle singleton, centered on center.
func CreateViewer(ecs *ecs.ECS, center math.Vec2, settings components.ViewerData, zoom float64) *donburi.Entry {
	viewer := archetypes.Viewer.Spawn(ecs)
	if zoom <= 0 {
		zoom = 1
	}
	components.Camera.SetValue(viewer, components.CameraData{Position: center, Zoom: zoom})
	components.Viewer.SetValue(viewer, settings)
	return viewer
}
