package render

import (
	"image/color"
	"math"
	"strconv"

	"github.com/automoto/obstacle-sync/components"
	"github.com/automoto/obstacle-sync/fonts"
	"github.com/automoto/obstacle-sync/shared/gamemath"
	"github.com/automoto/obstacle-sync/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leap-fish/necs/esync"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// view maps world coordinates onto the screen.
type view struct {
	camera *components.CameraData
	cx, cy float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) (view, *components.ViewerData, bool) {
	entry, ok := components.Viewer.First(e.World)
	if !ok {
		return view{}, nil, false
	}
	b := screen.Bounds()
	return view{
		camera: components.Camera.Get(entry),
		cx:     float64(b.Dx()) / 2,
		cy:     float64(b.Dy()) / 2,
	}, components.Viewer.Get(entry), true
}

func (v view) point(p dmath.Vec2) (float32, float32) {
	z := v.camera.Zoom
	return float32((p.X-v.camera.Position.X)*z + v.cx), float32((p.Y-v.camera.Position.Y)*z + v.cy)
}

func objectColor(obj *resolv.Object) color.Color {
	switch {
	case obj.HasTags(tags.ResolvResidue):
		return ResidueColor
	case obj.HasTags(tags.ResolvDoor):
		return DoorColor
	default:
		return ObstacleColor
	}
}

// DrawObstacles outlines the collision objects of every obstacle and the
// leaf of every door.
func DrawObstacles(e *ecs.ECS, screen *ebiten.Image) {
	v, viewer, ok := newView(e, screen)
	if !ok {
		return
	}
	z := float32(v.camera.Zoom)

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		for _, obj := range components.Collision.Get(entry).Objects {
			if obj.HasTags(tags.ResolvResidue) && !viewer.ShowResidue {
				continue
			}
			x, y := v.point(dmath.Vec2{X: obj.X, Y: obj.Y})
			vector.StrokeRect(screen, x, y, float32(obj.W)*z, float32(obj.H)*z, 1, objectColor(obj), false)
		}
	})

	tags.Door.Each(e.World, func(entry *donburi.Entry) {
		drawLeaf(screen, v, entry)
	})

	if viewer.ShowLabels {
		drawLabels(screen, v, e)
	}
}

func drawLeaf(screen *ebiten.Image, v view, entry *donburi.Entry) {
	appearance := components.Appearance.Get(entry)
	if !appearance.Known || !appearance.Visible {
		return
	}
	swing := components.DoorSwing.Get(entry)

	hinge := add(appearance.Position, rotate(appearance.HingeOffset, appearance.Rotation))
	leaf := rotate(gamemath.Scale(appearance.HingeOffset, -2), appearance.Rotation+swing.Rotation)

	x0, y0 := v.point(hinge)
	x1, y1 := v.point(add(hinge, leaf))
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, LeafColor, false)
	vector.FillCircle(screen, x0, y0, 2, LeafColor, false)
}

func drawLabels(screen *ebiten.Image, v view, e *ecs.ECS) {
	face := fonts.Label.Get()
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		appearance := components.Appearance.Get(entry)
		if !appearance.Known {
			return
		}
		label := appearance.Frame
		if nid := esync.GetNetworkId(entry); nid != nil {
			label = strconv.Itoa(int(*nid)) + " " + label
		}
		x, y := v.point(appearance.Position)
		text.Draw(screen, label, face, int(x)+4, int(y)-4, White) //nolint:staticcheck // TODO: migrate to text/v2
	})
}

func add(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

func rotate(p dmath.Vec2, radians float64) dmath.Vec2 {
	sin, cos := math.Sincos(radians)
	return dmath.Vec2{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}
