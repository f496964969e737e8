package components

import "github.com/yohamta/donburi"

// ViewerData holds the viewer toggles. Zoom lives on the camera.
type ViewerData struct {
	ShowLabels  bool
	ShowResidue bool
	Paused      bool
	// Dirty marks settings that changed since the last save.
	Dirty bool
}

var Viewer = donburi.NewComponentType[ViewerData]()
