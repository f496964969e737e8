package systems

import (
	"github.com/automoto/obstacle-sync/components"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi/ecs"
)

// NewAudioSystem drains the queued obstacle sounds once per tick and hands
// each to play. A nil play only logs the sounds.
func NewAudioSystem(log zerolog.Logger, play func(components.SoundRequest)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		entry, ok := components.Audio.First(e.World)
		if !ok {
			return
		}
		audioData := components.Audio.Get(entry)
		for _, req := range audioData.PendingSFX {
			log.Debug().Str("sound", req.Name).Float64("volume", req.Volume).Msg("play")
			if play != nil && req.Volume > 0 {
				play(req)
			}
		}
		audioData.Played += len(audioData.PendingSFX)
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}
