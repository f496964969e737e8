package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientationToRotation(t *testing.T) {
	tests := []struct {
		o    Orientation
		want float64
	}{
		{Orientation0, 0},
		{Orientation1, -math.Pi / 2},
		{Orientation2, -math.Pi},
		{Orientation3, math.Pi / 2},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, OrientationToRotation(tt.o), 1e-9, "orientation %d", tt.o)
	}
}

func TestOrientationAdd(t *testing.T) {
	assert.Equal(t, Orientation1, Orientation0.Add(Orientation1))
	assert.Equal(t, Orientation0, Orientation3.Add(Orientation1))
	assert.Equal(t, Orientation2, Orientation3.Add(Orientation3))
}

func TestRotateOffset(t *testing.T) {
	v := Vec2{X: 2, Y: 1}

	assert.Equal(t, Vec2{X: 2, Y: 1}, RotateOffset(v, Orientation0))
	assert.Equal(t, Vec2{X: -1, Y: 2}, RotateOffset(v, Orientation1))
	assert.Equal(t, Vec2{X: -2, Y: -1}, RotateOffset(v, Orientation2))
	assert.Equal(t, Vec2{X: 1, Y: -2}, RotateOffset(v, Orientation3))

	// four quarter turns are the identity
	r := v
	for i := 0; i < 4; i++ {
		r = RotateOffset(r, Orientation1)
	}
	assert.Equal(t, v, r)
}

func TestAddAdjust(t *testing.T) {
	got := AddAdjust(Vec2{X: 10, Y: 20}, Vec2{X: 3, Y: 0}, Orientation1)
	assert.Equal(t, Vec2{X: 10, Y: 23}, got)
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(2*math.Pi), 1e-9)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-9)
	assert.InDelta(t, math.Pi/4, NormalizeAngle(math.Pi/4), 1e-9)
}
