package hitbox

import (
	"testing"

	"github.com/automoto/obstacle-sync/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectTransform(t *testing.T) {
	local := Rect{Min: Vec2{X: -2, Y: -1}, Max: Vec2{X: 4, Y: 1}}

	tests := []struct {
		name  string
		scale float64
		o     gamemath.Orientation
		want  Rect
	}{
		{"identity", 1, gamemath.Orientation0, Rect{Min: Vec2{X: 8, Y: 19}, Max: Vec2{X: 14, Y: 21}}},
		{"scaled", 2, gamemath.Orientation0, Rect{Min: Vec2{X: 6, Y: 18}, Max: Vec2{X: 18, Y: 22}}},
		{"quarter", 1, gamemath.Orientation1, Rect{Min: Vec2{X: 9, Y: 18}, Max: Vec2{X: 11, Y: 24}}},
		{"half", 1, gamemath.Orientation2, Rect{Min: Vec2{X: 6, Y: 19}, Max: Vec2{X: 12, Y: 21}}},
		{"three quarters", 1, gamemath.Orientation3, Rect{Min: Vec2{X: 9, Y: 16}, Max: Vec2{X: 11, Y: 22}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := local.Transform(Vec2{X: 10, Y: 20}, tt.scale, tt.o)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransformIsPure(t *testing.T) {
	local := CenteredRect(4, 2)
	a := Transform(local, Vec2{X: 1, Y: 2}, 1.5, gamemath.Orientation3)
	b := Transform(local, Vec2{X: 1, Y: 2}, 1.5, gamemath.Orientation3)

	assert.True(t, Equal(a, b))
	assert.Equal(t, CenteredRect(4, 2), local, "receiver must not change")
	assert.Nil(t, Transform(nil, Vec2{}, 1, gamemath.Orientation0))
}

func TestCircleTransform(t *testing.T) {
	c := Circle{Center: Vec2{X: 1, Y: 0}, Radius: 3}

	got := c.Transform(Vec2{X: 5, Y: 5}, 2, gamemath.Orientation1)
	assert.Equal(t, Circle{Center: Vec2{X: 5, Y: 7}, Radius: 6}, got)
	assert.Equal(t, Rect{Min: Vec2{X: -1, Y: 1}, Max: Vec2{X: 11, Y: 13}}, got.Bounds())
}

func TestGroup(t *testing.T) {
	g := NewGroup(
		CenteredRect(2, 2),
		Circle{Center: Vec2{X: 4, Y: 0}, Radius: 1},
	)

	moved := g.Transform(Vec2{X: 10, Y: 0}, 1, gamemath.Orientation0)
	assert.Equal(t, Rect{Min: Vec2{X: 9, Y: -1}, Max: Vec2{X: 15, Y: 1}}, moved.Bounds())
	assert.Len(t, Parts(moved), 2)

	clone := g.Clone()
	assert.True(t, g.Equal(clone))
	assert.False(t, g.Equal(moved))
	assert.False(t, g.Equal(CenteredRect(2, 2)))
}

func TestEqualHandlesNil(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(CenteredRect(1, 1), nil))
	assert.False(t, Equal(nil, Circle{Radius: 1}))
}

func TestDoorHitboxesPivotOnHinge(t *testing.T) {
	local := CenteredRect(10, 2)
	hinge := Vec2{X: -5, Y: 0}

	open, openAlt := DoorHitboxes(local, hinge, Vec2{}, gamemath.Orientation0)

	assert.Equal(t, Rect{Min: Vec2{X: -6, Y: 0}, Max: Vec2{X: -4, Y: 10}}, open)
	assert.Equal(t, Rect{Min: Vec2{X: -6, Y: -10}, Max: Vec2{X: -4, Y: 0}}, openAlt)

	closed := local.TransformRect(Vec2{}, 1, gamemath.Orientation0)
	for _, r := range []Rect{closed, open, openAlt} {
		assert.True(t, r.Contains(hinge), "hinge must stay on %v", r)
	}
	assert.Equal(t, closed.Width(), open.Height())
	assert.Equal(t, closed.Height(), openAlt.Width())
}

func TestDoorHitboxesFollowPlacement(t *testing.T) {
	local := CenteredRect(10, 2)
	hinge := Vec2{X: -5, Y: 0}
	position := Vec2{X: 100, Y: 50}

	for o := gamemath.Orientation0; o <= gamemath.Orientation3; o++ {
		closed := local.TransformRect(position, 1, o)
		open, openAlt := DoorHitboxes(local, hinge, position, o)
		worldHinge := gamemath.AddAdjust(position, hinge, o)

		assert.True(t, closed.Contains(worldHinge), "orientation %d closed", o)
		assert.True(t, open.Contains(worldHinge), "orientation %d open", o)
		assert.True(t, openAlt.Contains(worldHinge), "orientation %d openAlt", o)
		assert.NotEqual(t, open, openAlt)
	}
}

func TestObjects(t *testing.T) {
	objs := Objects(NewGroup(
		Rect{Min: Vec2{X: 1, Y: 2}, Max: Vec2{X: 4, Y: 6}},
		Circle{Center: Vec2{X: 10, Y: 10}, Radius: 2},
	), "obstacle")
	require.Len(t, objs, 2)

	assert.Equal(t, 1.0, objs[0].X)
	assert.Equal(t, 2.0, objs[0].Y)
	assert.Equal(t, 3.0, objs[0].W)
	assert.Equal(t, 4.0, objs[0].H)
	assert.True(t, objs[0].HasTags("obstacle"))

	assert.Equal(t, 8.0, objs[1].X)
	assert.Equal(t, 4.0, objs[1].W)

	assert.Empty(t, Objects(nil))
}
