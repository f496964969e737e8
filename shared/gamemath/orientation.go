// Package gamemath holds the small amount of plane math shared by the wire
// codec, the hitbox transforms and the obstacle decoder. It has no
// dependencies on ebiten or resolv so headless tools can use it.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the 2D vector used across the repository.
type Vec2 = dmath.Vec2

// Orientation is a quarter-turn rotation index in [0, 3].
type Orientation uint8

const (
	Orientation0 Orientation = iota
	Orientation1
	Orientation2
	Orientation3
)

// Add returns the orientation reached by applying other after o.
func (o Orientation) Add(other Orientation) Orientation {
	return (o + other) % 4
}

// Rotation returns the orientation expressed in radians.
func (o Orientation) Rotation() float64 {
	return OrientationToRotation(o)
}

// OrientationToRotation maps a quarter-turn index to radians in (-pi, pi].
func OrientationToRotation(o Orientation) float64 {
	return -NormalizeAngle(float64(o%4) * (math.Pi / 2))
}

// NormalizeAngle wraps radians into (-pi, pi].
func NormalizeAngle(radians float64) float64 {
	return math.Atan2(math.Sin(radians), math.Cos(radians))
}

// RotateOffset turns v by o quarter turns: (x, y) -> (-y, x) per step.
func RotateOffset(v Vec2, o Orientation) Vec2 {
	switch o % 4 {
	case Orientation1:
		return Vec2{X: -v.Y, Y: v.X}
	case Orientation2:
		return Vec2{X: -v.X, Y: -v.Y}
	case Orientation3:
		return Vec2{X: v.Y, Y: -v.X}
	default:
		return v
	}
}

// AddAdjust translates base by offset after turning offset by o.
func AddAdjust(base, offset Vec2, o Orientation) Vec2 {
	r := RotateOffset(offset, o)
	return Vec2{X: base.X + r.X, Y: base.Y + r.Y}
}

// Scale multiplies both components of v by s.
func Scale(v Vec2, s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}
