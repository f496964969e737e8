package config

import "strconv"

// AudioConfig holds the volumes of the obstacle cue sounds.
type AudioConfig struct {
	HitVolume       float64 `mapstructure:"hitVolume"`
	DoorVolume      float64 `mapstructure:"doorVolume"`
	DestroyedVolume float64 `mapstructure:"destroyedVolume"`
}

// Audio holds the default cue volumes.
var Audio = AudioConfig{
	HitVolume:       0.2,
	DoorVolume:      0.3,
	DestroyedVolume: 0.2,
}

// Sound names that do not depend on the obstacle material.
const (
	SoundDoorOpen  = "door_open"
	SoundDoorClose = "door_close"
)

// HitSound returns the hit sound of a material. variant is 1 or 2.
func HitSound(material string, variant int) string {
	if variant != 2 {
		variant = 1
	}
	return material + "_hit_" + strconv.Itoa(variant)
}

// DestroyedSound returns the destruction sound of a material.
func DestroyedSound(material string) string {
	return material + "_destroyed"
}
