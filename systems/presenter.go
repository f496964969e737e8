package systems

import (
	"math/rand"

	"github.com/automoto/obstacle-sync/components"
	cfg "github.com/automoto/obstacle-sync/config"
	"github.com/automoto/obstacle-sync/obstacle"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// EntityPresenter turns the decoder's intents into component state: cues
// become queued sounds, appearances are stored on the entity and door
// rotations start a swing tween.
type EntityPresenter struct {
	world  donburi.World
	entity donburi.Entity

	audio         cfg.AudioConfig
	swingDuration float32
	rng           *rand.Rand
}

var _ obstacle.Presenter = (*EntityPresenter)(nil)

// NewEntityPresenter returns a presenter factory for factory.CreateObstacle.
// rng picks between the two hit sound variants.
func NewEntityPresenter(world donburi.World, audio cfg.AudioConfig, door cfg.DoorConfig, rng *rand.Rand) func(*donburi.Entry) obstacle.Presenter {
	return func(entry *donburi.Entry) obstacle.Presenter {
		return &EntityPresenter{
			world:         world,
			entity:        entry.Entity(),
			audio:         audio,
			swingDuration: float32(door.SwingDuration),
			rng:           rng,
		}
	}
}

func (p *EntityPresenter) entry() (*donburi.Entry, bool) {
	if !p.world.Valid(p.entity) {
		return nil, false
	}
	return p.world.Entry(p.entity), true
}

func (p *EntityPresenter) Cue(c obstacle.Cue) {
	var req components.SoundRequest
	switch c.Kind {
	case obstacle.CueHit:
		req = components.SoundRequest{
			Name:   cfg.HitSound(c.Material, 1+p.rng.Intn(2)),
			Volume: p.audio.HitVolume,
		}
	case obstacle.CueDoorOpen:
		req = components.SoundRequest{Name: cfg.SoundDoorOpen, Volume: p.audio.DoorVolume}
	case obstacle.CueDoorClose:
		req = components.SoundRequest{Name: cfg.SoundDoorClose, Volume: p.audio.DoorVolume}
	case obstacle.CueDestroyed:
		req = components.SoundRequest{
			Name:   cfg.DestroyedSound(c.Material),
			Volume: p.audio.DestroyedVolume,
		}
	default:
		return
	}

	audioEntry, ok := components.Audio.First(p.world)
	if !ok {
		return
	}
	audioData := components.Audio.Get(audioEntry)
	audioData.PendingSFX = append(audioData.PendingSFX, req)
}

func (p *EntityPresenter) Appearance(a obstacle.Appearance) {
	entry, ok := p.entry()
	if !ok {
		return
	}
	components.Appearance.SetValue(entry, components.AppearanceData{Appearance: a, Known: true})
}

func (p *EntityPresenter) DoorRotation(rotation float64, animate bool) {
	entry, ok := p.entry()
	if !ok || !entry.HasComponent(components.DoorSwing) {
		return
	}
	swing := components.DoorSwing.Get(entry)
	if !animate || p.swingDuration <= 0 {
		swing.Tween = nil
		swing.Rotation = rotation
		return
	}
	swing.Tween = gween.New(float32(swing.Rotation), float32(rotation), p.swingDuration, ease.OutQuad)
}
