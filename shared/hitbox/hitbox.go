// Package hitbox describes obstacle collision shapes and the pure transforms
// that place a definition's local shape in the world.
package hitbox

import (
	"math"

	"github.com/automoto/obstacle-sync/shared/gamemath"
)

type Vec2 = gamemath.Vec2

// Hitbox is a collision shape. Implementations are immutable values: a
// transform always returns a new shape and never changes the receiver.
type Hitbox interface {
	// Transform places the shape at position after scaling it and turning
	// it by o quarter turns around its local origin.
	Transform(position Vec2, scale float64, o gamemath.Orientation) Hitbox
	Clone() Hitbox
	// Bounds returns the axis-aligned box enclosing the shape.
	Bounds() Rect
	Equal(other Hitbox) bool
}

// Rect is an axis-aligned rectangle with Min <= Max on both axes.
type Rect struct {
	Min, Max Vec2
}

// NewRect returns a rectangle spanning the two corners in any order.
func NewRect(a, b Vec2) Rect {
	return Rect{
		Min: Vec2{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Vec2{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// CenteredRect returns a w by h rectangle centred on the origin.
func CenteredRect(w, h float64) Rect {
	return Rect{
		Min: Vec2{X: -w / 2, Y: -h / 2},
		Max: Vec2{X: w / 2, Y: h / 2},
	}
}

func (r Rect) Transform(position Vec2, scale float64, o gamemath.Orientation) Hitbox {
	return r.TransformRect(position, scale, o)
}

// TransformRect is Transform without the interface boxing.
func (r Rect) TransformRect(position Vec2, scale float64, o gamemath.Orientation) Rect {
	a := gamemath.AddAdjust(position, gamemath.Scale(r.Min, scale), o)
	b := gamemath.AddAdjust(position, gamemath.Scale(r.Max, scale), o)
	return NewRect(a, b)
}

func (r Rect) Clone() Hitbox { return r }

func (r Rect) Bounds() Rect { return r }

func (r Rect) Equal(other Hitbox) bool {
	o, ok := other.(Rect)
	return ok && o == r
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside or on the edge of r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Circle is a disc around Center.
type Circle struct {
	Center Vec2
	Radius float64
}

func (c Circle) Transform(position Vec2, scale float64, o gamemath.Orientation) Hitbox {
	return Circle{
		Center: gamemath.AddAdjust(position, gamemath.Scale(c.Center, scale), o),
		Radius: c.Radius * scale,
	}
}

func (c Circle) Clone() Hitbox { return c }

func (c Circle) Bounds() Rect {
	return Rect{
		Min: Vec2{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Max: Vec2{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
	}
}

func (c Circle) Equal(other Hitbox) bool {
	o, ok := other.(Circle)
	return ok && o == c
}

// Group is a compound shape made of several parts sharing one origin.
type Group struct {
	Parts []Hitbox
}

func NewGroup(parts ...Hitbox) Group {
	return Group{Parts: parts}
}

func (g Group) Transform(position Vec2, scale float64, o gamemath.Orientation) Hitbox {
	parts := make([]Hitbox, len(g.Parts))
	for i, p := range g.Parts {
		parts[i] = p.Transform(position, scale, o)
	}
	return Group{Parts: parts}
}

func (g Group) Clone() Hitbox {
	parts := make([]Hitbox, len(g.Parts))
	for i, p := range g.Parts {
		parts[i] = p.Clone()
	}
	return Group{Parts: parts}
}

func (g Group) Bounds() Rect {
	if len(g.Parts) == 0 {
		return Rect{}
	}
	b := g.Parts[0].Bounds()
	for _, p := range g.Parts[1:] {
		pb := p.Bounds()
		b.Min.X = math.Min(b.Min.X, pb.Min.X)
		b.Min.Y = math.Min(b.Min.Y, pb.Min.Y)
		b.Max.X = math.Max(b.Max.X, pb.Max.X)
		b.Max.Y = math.Max(b.Max.Y, pb.Max.Y)
	}
	return b
}

func (g Group) Equal(other Hitbox) bool {
	o, ok := other.(Group)
	if !ok || len(o.Parts) != len(g.Parts) {
		return false
	}
	for i := range g.Parts {
		if !g.Parts[i].Equal(o.Parts[i]) {
			return false
		}
	}
	return true
}

// Parts flattens h into its leaf shapes.
func Parts(h Hitbox) []Hitbox {
	g, ok := h.(Group)
	if !ok {
		if h == nil {
			return nil
		}
		return []Hitbox{h}
	}
	var out []Hitbox
	for _, p := range g.Parts {
		out = append(out, Parts(p)...)
	}
	return out
}

// Transform is the free-function form of Hitbox.Transform. A nil shape
// yields nil.
func Transform(h Hitbox, position Vec2, scale float64, o gamemath.Orientation) Hitbox {
	if h == nil {
		return nil
	}
	return h.Transform(position, scale, o)
}

// Equal compares two possibly nil hitboxes.
func Equal(a, b Hitbox) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
