package tags

import "github.com/yohamta/donburi"

var (
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Door     = donburi.NewTag().SetName("Door")
)

// Resolv tags for obstacle collision objects
const (
	ResolvObstacle = "obstacle"
	ResolvDoor     = "door"
	ResolvResidue  = "residue"
)
