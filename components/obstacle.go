package components

import (
	"github.com/automoto/obstacle-sync/obstacle"
	"github.com/yohamta/donburi"
)

// ObstacleData owns the entity record decoded from the update stream.
type ObstacleData struct {
	*obstacle.Obstacle
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

// AppearanceData is the latest render state reported by the decoder.
type AppearanceData struct {
	obstacle.Appearance
	// Known is false until the decoder reported an appearance.
	Known bool
}

var Appearance = donburi.NewComponentType[AppearanceData]()
