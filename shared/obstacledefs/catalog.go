package obstacledefs

import (
	"fmt"

	"github.com/automoto/obstacle-sync/shared/gamemath"
	"github.com/automoto/obstacle-sync/shared/hitbox"
)

// Builtin is the definition set used when no definitions file is
// configured. Order matters: it fixes the wire type indices.
var Builtin = []Definition{
	{
		ID:           "tree_oak",
		Hitbox:       hitbox.Circle{Radius: 5.5},
		RotationMode: RotationFull,
		Variations:   3,
		Depth:        5,
		Material:     "tree",
	},
	{
		ID:           "rock",
		Hitbox:       hitbox.Circle{Radius: 4},
		RotationMode: RotationFull,
		Variations:   7,
		Material:     "stone",
		Frames:       Frames{Particle: "rock_particle"},

		ParticleVariations: 2,
	},
	{
		ID:           "crate_regular",
		Hitbox:       hitbox.CenteredRect(9.2, 9.2),
		RotationMode: RotationNone,
		Material:     "crate",
	},
	{
		ID:           "barrel",
		Hitbox:       hitbox.Circle{Radius: 3.65},
		RotationMode: RotationFull,
		Material:     "metal",
	},
	{
		ID:           "window",
		Hitbox:       hitbox.CenteredRect(1.5, 10),
		RotationMode: RotationLimited,
		NoResidue:    true,
		Material:     "glass",
	},
	{
		ID:           "door",
		Hitbox:       hitbox.CenteredRect(10, 1.6),
		RotationMode: RotationLimited,
		IsDoor:       true,
		HingeOffset:  gamemath.Vec2{X: -5, Y: 0},
		NoResidue:    true,
		Depth:        2,
		Material:     "wood",
	},
	{
		ID:           "metal_door",
		Hitbox:       hitbox.CenteredRect(10.5, 1.6),
		RotationMode: RotationLimited,
		IsDoor:       true,
		HingeOffset:  gamemath.Vec2{X: -5.25, Y: 0},
		NoResidue:    true,
		Depth:        2,
		Material:     "metal",
		Frames:       Frames{Base: "door_metal"},
	},
	{
		ID: "house_wall",
		Hitbox: hitbox.NewGroup(
			hitbox.Rect{Min: gamemath.Vec2{X: -20, Y: -1}, Max: gamemath.Vec2{X: -4, Y: 1}},
			hitbox.Rect{Min: gamemath.Vec2{X: 4, Y: -1}, Max: gamemath.Vec2{X: 20, Y: 1}},
		),
		RotationMode: RotationLimited,
		Invisible:    true,
		Material:     "stone",
	},
}

// DefaultRegistry returns a registry holding Builtin.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, def := range Builtin {
		if _, err := r.Register(def); err != nil {
			panic(fmt.Sprintf("builtin obstacle definitions: %v", err))
		}
	}
	return r
}
