package config

import "github.com/yohamta/donburi/ecs"

// Draw layers of the ECS world.
const (
	Default ecs.LayerID = iota
	Overlay
)
