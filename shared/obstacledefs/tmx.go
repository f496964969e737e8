package obstacledefs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/obstacle-sync/shared/gamemath"
	"github.com/automoto/obstacle-sync/shared/hitbox"
	"github.com/lafriks/go-tiled"
)

// DefinitionsLayer is the object group read by LoadTMX.
const DefinitionsLayer = "Obstacles"

// LoadTMX reads obstacle definitions authored in a Tiled map. Every object
// of the "Obstacles" object group names a definition; rectangles and
// ellipses become the hitbox. Objects sharing a name form a compound hitbox
// whose origin is the centre of the first object with that name. The first
// object carries the definition's custom properties:
//
//	rotationMode  string  none | limited | full
//	door          bool
//	hingeX/hingeY float
//	variations    int
//	noResidue     bool
//	invisible     bool
//	depth         int
//	material      string
//	frameBase, frameResidue, frameParticle  string
//	particleVariations int
//
// Definitions are registered in object order.
func LoadTMX(fsys fs.FS, tmxPath string) (*Registry, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var group *tiled.ObjectGroup
	for _, og := range levelMap.ObjectGroups {
		if og.Name == DefinitionsLayer {
			group = og
			break
		}
	}
	if group == nil {
		return nil, fmt.Errorf("load TMX %s: no %q object group", tmxPath, DefinitionsLayer)
	}

	var order []string
	byName := make(map[string][]*tiled.Object)
	for _, o := range group.Objects {
		if o.Name == "" {
			return nil, fmt.Errorf("load TMX %s: object %d has no name", tmxPath, o.ID)
		}
		if _, seen := byName[o.Name]; !seen {
			order = append(order, o.Name)
		}
		byName[o.Name] = append(byName[o.Name], o)
	}

	reg := NewRegistry()
	for _, name := range order {
		def, err := definitionFromObjects(name, byName[name])
		if err != nil {
			return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
		}
		if _, err := reg.Register(def); err != nil {
			return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
		}
	}
	return reg, nil
}

// Load returns the built-in catalog for an empty path and the definitions of
// the Tiled map at path otherwise.
func Load(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}
	return LoadTMX(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func definitionFromObjects(name string, objs []*tiled.Object) (Definition, error) {
	first := objs[0]
	origin := objectCenter(first)

	parts := make([]hitbox.Hitbox, 0, len(objs))
	for _, o := range objs {
		shape, err := objectShape(o, origin)
		if err != nil {
			return Definition{}, fmt.Errorf("%s: %w", name, err)
		}
		parts = append(parts, shape)
	}

	var shape hitbox.Hitbox = hitbox.NewGroup(parts...)
	if len(parts) == 1 {
		shape = parts[0]
	}

	props := first.Properties
	mode, err := ParseRotationMode(props.GetString("rotationMode"))
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", name, err)
	}

	return Definition{
		ID:           name,
		Hitbox:       shape,
		RotationMode: mode,
		Variations:   props.GetInt("variations"),
		IsDoor:       props.GetBool("door"),
		HingeOffset: gamemath.Vec2{
			X: props.GetFloat("hingeX"),
			Y: props.GetFloat("hingeY"),
		},
		NoResidue: props.GetBool("noResidue"),
		Invisible: props.GetBool("invisible"),
		Depth:     props.GetInt("depth"),
		Material:  props.GetString("material"),
		Frames: Frames{
			Base:     props.GetString("frameBase"),
			Residue:  props.GetString("frameResidue"),
			Particle: props.GetString("frameParticle"),
		},
		ParticleVariations: props.GetInt("particleVariations"),
	}, nil
}

func objectCenter(o *tiled.Object) gamemath.Vec2 {
	return gamemath.Vec2{X: o.X + o.Width/2, Y: o.Y + o.Height/2}
}

func objectShape(o *tiled.Object, origin gamemath.Vec2) (hitbox.Hitbox, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("object %d: shape has no area", o.ID)
	}
	if len(o.Polygons) > 0 || len(o.PolyLines) > 0 {
		return nil, fmt.Errorf("object %d: polygons are not supported", o.ID)
	}

	c := objectCenter(o)
	offset := gamemath.Vec2{X: c.X - origin.X, Y: c.Y - origin.Y}

	if len(o.Ellipses) > 0 {
		if o.Width != o.Height {
			return nil, fmt.Errorf("object %d: ellipse must be a circle", o.ID)
		}
		return hitbox.Circle{Center: offset, Radius: o.Width / 2}, nil
	}
	return hitbox.CenteredRect(o.Width, o.Height).Transform(offset, 1, gamemath.Orientation0), nil
}
