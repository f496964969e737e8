package hitbox

import "github.com/solarlune/resolv"

// Objects builds one axis-aligned resolv object per leaf part of h, tagged
// with tags, ready to be added to a collision space. Circles use their
// bounding box. A nil hitbox yields no objects.
func Objects(h Hitbox, tags ...string) []*resolv.Object {
	parts := Parts(h)
	objs := make([]*resolv.Object, 0, len(parts))
	for _, p := range parts {
		b := p.Bounds()
		w, ht := b.Width(), b.Height()
		obj := resolv.NewObject(b.Min.X, b.Min.Y, w, ht, tags...)
		obj.SetShape(resolv.NewRectangle(0, 0, w, ht))
		objs = append(objs, obj)
	}
	return objs
}
