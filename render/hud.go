package render

import (
	"fmt"

	"github.com/automoto/obstacle-sync/components"
	"github.com/automoto/obstacle-sync/fonts"
	"github.com/automoto/obstacle-sync/systems"
	"github.com/automoto/obstacle-sync/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Status is what the HUD reports besides the world itself.
type Status struct {
	Source string
	Stats  systems.SyncStats
	Ticks  int
	Err    error
}

// NewHUD returns a renderer for a one-line status bar plus the sync error,
// if any.
func NewHUD(status func() Status) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		s := status()

		var total, open, destroyed int
		tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
			total++
			obs := components.Obstacle.Get(entry)
			if obs.Dead() {
				destroyed++
			}
			if d := obs.Door(); d != nil && d.IsOpen() {
				open++
			}
		})

		paused := ""
		if entry, ok := components.Viewer.First(e.World); ok && components.Viewer.Get(entry).Paused {
			paused = " [paused]"
		}

		face := fonts.HUD.Get()
		info := fmt.Sprintf("%s tick %d - obstacles %d open %d destroyed %d - full %d partial %d removed %d%s",
			s.Source, s.Ticks, total, open, destroyed,
			s.Stats.Full, s.Stats.Partial, s.Stats.Removed, paused)
		text.Draw(screen, info, face, 4, 14, LightGreen) //nolint:staticcheck // TODO: migrate to text/v2

		if s.Err != nil {
			text.Draw(screen, s.Err.Error(), face, 4, 30, Red) //nolint:staticcheck // TODO: migrate to text/v2
		}
	}
}
