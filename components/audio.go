package components

import "github.com/yohamta/donburi"

// SoundRequest is a sound queued by an obstacle cue.
type SoundRequest struct {
	Name   string
	Volume float64 // 0.0 - 1.0
}

// AudioData stores the pending obstacle sounds (singleton component). The
// audio system drains PendingSFX once per tick.
type AudioData struct {
	PendingSFX []SoundRequest
	Played     int // total sounds drained
}

var Audio = donburi.NewComponentType[AudioData]()
