package systems

import (
	"encoding/json"

	"github.com/automoto/obstacle-sync/components"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi/ecs"
)

const viewerSettingsKey = "viewer"

// SavedViewerSettings is the viewer state stored on disk.
type SavedViewerSettings struct {
	Zoom        float64 `json:"zoom"`
	ShowLabels  bool    `json:"showLabels"`
	ShowResidue bool    `json:"showResidue"`
}

// Persistence stores viewer settings through gdata. A nil or unopened
// Persistence loads nothing and saves nothing.
type Persistence struct {
	manager *gdata.Manager
	log     zerolog.Logger
}

// InitPersistence opens the gdata store for appName.
func InitPersistence(appName string, log zerolog.Logger) (*Persistence, error) {
	log = log.With().Str("component", "persistence").Logger()
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
		return &Persistence{log: log}, err
	}
	return &Persistence{manager: m, log: log}, nil
}

// LoadViewerSettings returns nil when nothing was saved yet.
func (p *Persistence) LoadViewerSettings() (*SavedViewerSettings, error) {
	if p == nil || p.manager == nil {
		return nil, nil
	}

	data, err := p.manager.LoadItem(viewerSettingsKey)
	if err != nil {
		p.log.Warn().Err(err).Msg("could not load viewer settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedViewerSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		p.log.Warn().Err(err).Msg("could not parse saved viewer settings")
		return nil, err
	}
	return &settings, nil
}

func (p *Persistence) SaveViewerSettings(s SavedViewerSettings) error {
	if p == nil || p.manager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := p.manager.SaveItem(viewerSettingsKey, data); err != nil {
		p.log.Warn().Err(err).Msg("could not save viewer settings")
		return err
	}
	return nil
}

// ApplySavedViewerSettings copies saved settings onto the viewer singleton.
func ApplySavedViewerSettings(e *ecs.ECS, saved *SavedViewerSettings) {
	if saved == nil {
		return
	}
	entry, ok := components.Viewer.First(e.World)
	if !ok {
		return
	}
	viewer := components.Viewer.Get(entry)
	viewer.ShowLabels = saved.ShowLabels
	viewer.ShowResidue = saved.ShowResidue
	if saved.Zoom > 0 {
		components.Camera.Get(entry).Zoom = saved.Zoom
	}
}

// CurrentViewerSettings captures the viewer singleton for saving.
func CurrentViewerSettings(e *ecs.ECS) (SavedViewerSettings, bool) {
	entry, ok := components.Viewer.First(e.World)
	if !ok {
		return SavedViewerSettings{}, false
	}
	viewer := components.Viewer.Get(entry)
	return SavedViewerSettings{
		Zoom:        components.Camera.Get(entry).Zoom,
		ShowLabels:  viewer.ShowLabels,
		ShowResidue: viewer.ShowResidue,
	}, true
}

// NewSettingsSaver returns a system that saves the viewer settings whenever
// they are marked dirty.
func NewSettingsSaver(p *Persistence) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		entry, ok := components.Viewer.First(e.World)
		if !ok {
			return
		}
		viewer := components.Viewer.Get(entry)
		if !viewer.Dirty {
			return
		}
		viewer.Dirty = false
		if s, ok := CurrentViewerSettings(e); ok {
			_ = p.SaveViewerSettings(s)
		}
	}
}
