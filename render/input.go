package render

import (
	"github.com/automoto/obstacle-sync/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

func pressed(a Action) bool {
	b := Bindings[a]
	for _, key := range b.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func justPressed(a Action) bool {
	b := Bindings[a]
	for _, key := range b.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		for _, btn := range b.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

// UpdateInput pans and zooms the camera and flips the viewer toggles.
func UpdateInput(e *ecs.ECS) {
	entry, ok := components.Viewer.First(e.World)
	if !ok {
		return
	}
	viewer := components.Viewer.Get(entry)
	camera := components.Camera.Get(entry)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	step := panSpeed / camera.Zoom
	if pressed(ActionPanLeft) {
		camera.Position.X -= step
	}
	if pressed(ActionPanRight) {
		camera.Position.X += step
	}
	if pressed(ActionPanUp) {
		camera.Position.Y -= step
	}
	if pressed(ActionPanDown) {
		camera.Position.Y += step
	}

	if justPressed(ActionZoomIn) && camera.Zoom*zoomStep <= maxZoom {
		camera.Zoom *= zoomStep
		viewer.Dirty = true
	}
	if justPressed(ActionZoomOut) && camera.Zoom/zoomStep >= minZoom {
		camera.Zoom /= zoomStep
		viewer.Dirty = true
	}
	if justPressed(ActionToggleLabels) {
		viewer.ShowLabels = !viewer.ShowLabels
		viewer.Dirty = true
	}
	if justPressed(ActionToggleResidue) {
		viewer.ShowResidue = !viewer.ShowResidue
		viewer.Dirty = true
	}
	if justPressed(ActionPause) {
		viewer.Paused = !viewer.Paused
	}
}
