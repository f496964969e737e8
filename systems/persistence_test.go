package systems

import (
	"testing"

	"github.com/automoto/obstacle-sync/components"
	"github.com/automoto/obstacle-sync/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func TestViewerSettingsApplyAndCapture(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	_, ok := CurrentViewerSettings(e)
	assert.False(t, ok)

	entry := factory.CreateViewer(e, math.Vec2{X: 512, Y: 512}, components.ViewerData{}, 0)
	assert.Equal(t, 1.0, components.Camera.Get(entry).Zoom)

	ApplySavedViewerSettings(e, &SavedViewerSettings{Zoom: 2.5, ShowLabels: true})

	got, ok := CurrentViewerSettings(e)
	require.True(t, ok)
	assert.Equal(t, SavedViewerSettings{Zoom: 2.5, ShowLabels: true}, got)

	ApplySavedViewerSettings(e, &SavedViewerSettings{Zoom: 0, ShowResidue: true})
	got, _ = CurrentViewerSettings(e)
	assert.Equal(t, 2.5, got.Zoom)
	assert.True(t, got.ShowResidue)
	assert.False(t, got.ShowLabels)
}

func TestSettingsSaverClearsDirty(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreateViewer(e, math.Vec2{}, components.ViewerData{Dirty: true}, 1)

	var p *Persistence
	NewSettingsSaver(p)(e)
	assert.False(t, components.Viewer.Get(entry).Dirty)

	settings, err := p.LoadViewerSettings()
	assert.NoError(t, err)
	assert.Nil(t, settings)
}
