package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DoorSwingData animates a door leaf towards its hinge offset. Tween is nil
// while the leaf is at rest.
type DoorSwingData struct {
	Tween    *gween.Tween
	Rotation float64 // current leaf rotation in radians
}

var DoorSwing = donburi.NewComponentType[DoorSwingData]()
