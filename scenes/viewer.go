package scenes

import (
	"image/color"
	"math/rand"
	"sync"

	"github.com/automoto/obstacle-sync/components"
	cfg "github.com/automoto/obstacle-sync/config"
	"github.com/automoto/obstacle-sync/render"
	"github.com/automoto/obstacle-sync/shared/messages"
	"github.com/automoto/obstacle-sync/shared/obstacledefs"
	"github.com/automoto/obstacle-sync/systems"
	"github.com/automoto/obstacle-sync/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Source is a replay or live update feed shown by the viewer.
type Source interface {
	systems.UpdateSource
	Done() bool
	Err() error
	Ticks() int
}

// ViewerScene draws the obstacles of an update stream as outlines.
type ViewerScene struct {
	ecs          *ecs.ECS
	obstacleSync *systems.ObstacleSync
	source       Source
	name         string
	defs         *obstacledefs.Registry
	persistence  *systems.Persistence
	log          zerolog.Logger
	once         sync.Once
}

func NewViewerScene(name string, source Source, defs *obstacledefs.Registry, p *systems.Persistence, log zerolog.Logger) *ViewerScene {
	return &ViewerScene{
		name:        name,
		source:      source,
		defs:        defs,
		persistence: p,
		log:         log.With().Str("component", "viewer").Logger(),
	}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

// Sync exposes the sync system, nil before the first Update.
func (vs *ViewerScene) Sync() *systems.ObstacleSync {
	return vs.obstacleSync
}

func (vs *ViewerScene) configure() {
	paced := &pacedSource{source: vs.source, every: ebiten.TPS() / cfg.C.Sync.TickRate}

	e, obstacleSync := systems.NewObstacleWorld(systems.WorldOptions{
		Config:      cfg.C,
		Definitions: vs.defs,
		Source:      paced,
		Log:         vs.log,
		Rand:        rand.New(rand.NewSource(rand.Int63())),
		FrameRate:   ebiten.TPS(),
	})

	center := math.Vec2{X: float64(cfg.C.Sync.SpaceWidth) / 2, Y: float64(cfg.C.Sync.SpaceHeight) / 2}
	viewer := factory.CreateViewer(e, center, components.ViewerData{ShowResidue: true}, 1)
	paced.viewer = components.Viewer.Get(viewer)

	saved, _ := vs.persistence.LoadViewerSettings()
	systems.ApplySavedViewerSettings(e, saved)

	e.AddSystem(render.UpdateInput)
	e.AddSystem(systems.NewSettingsSaver(vs.persistence))

	e.AddRenderer(cfg.Default, render.DrawObstacles)
	e.AddRenderer(cfg.Overlay, render.NewHUD(func() render.Status {
		err := obstacleSync.Err()
		if err == nil {
			err = vs.source.Err()
		}
		return render.Status{
			Source: vs.name,
			Stats:  obstacleSync.Stats(),
			Ticks:  vs.source.Ticks(),
			Err:    err,
		}
	}))

	vs.ecs = e
	vs.obstacleSync = obstacleSync
}

// pacedSource drains its source once every few frames so a capture recorded
// at the sync tick rate plays back in real time.
type pacedSource struct {
	source Source
	viewer *components.ViewerData
	every  int
	frame  int
}

func (p *pacedSource) DrainUpdates() []messages.ObstacleUpdate {
	if p.viewer != nil && p.viewer.Paused {
		return nil
	}
	p.frame++
	if p.every > 1 && p.frame%p.every != 0 {
		return nil
	}
	return p.source.DrainUpdates()
}
