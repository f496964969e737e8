package obstacle

import (
	"github.com/automoto/obstacle-sync/shared/gamemath"
	"github.com/automoto/obstacle-sync/shared/hitbox"
	"github.com/automoto/obstacle-sync/shared/obstacledefs"
)

// Door is the hinge state of a door obstacle. The three candidate hitboxes
// are derived once, on the first full update, and only the selection among
// them changes afterwards.
//
// Offsets: 0 closed, 1 open, 2 closed (alternate), 3 open the other way.
type Door struct {
	offset gamemath.Orientation

	closed  hitbox.Hitbox
	open    hitbox.Hitbox
	openAlt hitbox.Hitbox
	active  hitbox.Hitbox
}

func (d *Door) Offset() gamemath.Orientation { return d.offset }

// IsOpen reports whether the offset selects one of the open hitboxes.
func (d *Door) IsOpen() bool {
	return d.offset == gamemath.Orientation1 || d.offset == gamemath.Orientation3
}

func (d *Door) Closed() hitbox.Hitbox  { return d.closed }
func (d *Door) Open() hitbox.Hitbox    { return d.open }
func (d *Door) OpenAlt() hitbox.Hitbox { return d.openAlt }

// Active returns the selected hitbox, nil while the door has not been placed.
func (d *Door) Active() hitbox.Hitbox { return d.active }

// Derived reports whether the hinge geometry is known.
func (d *Door) Derived() bool { return d.closed != nil }

// derive computes the closed and open hitboxes from the placement decoded by
// the first full update. Later calls are ignored.
func (d *Door) derive(def *obstacledefs.Definition, position gamemath.Vec2, scale float64, o gamemath.Orientation) bool {
	if d.Derived() {
		return false
	}
	local, ok := def.DoorRect()
	if !ok {
		return false
	}
	d.closed = local.TransformRect(position, scale, o)
	d.open, d.openAlt = hitbox.DoorHitboxes(local, def.HingeOffset, position, o)
	d.selectActive()
	return true
}

// transition stores a newly decoded offset. It reports false, and touches
// nothing, when the offset is unchanged.
func (d *Door) transition(offset gamemath.Orientation) bool {
	offset %= 4
	if offset == d.offset {
		return false
	}
	d.offset = offset
	d.selectActive()
	return true
}

func (d *Door) selectActive() {
	switch d.offset {
	case gamemath.Orientation1:
		d.active = d.open
	case gamemath.Orientation3:
		d.active = d.openAlt
	default:
		d.active = d.closed
	}
}

// LeafRotation is the rotation of the door leaf for the current offset.
func (d *Door) LeafRotation() float64 {
	return gamemath.OrientationToRotation(d.offset)
}

func (d *Door) cue() CueKind {
	if d.IsOpen() {
		return CueDoorOpen
	}
	return CueDoorClose
}

func (d *Door) snapshot() *DoorSnapshot {
	return &DoorSnapshot{
		Offset:  d.offset,
		Closed:  d.closed,
		Open:    d.open,
		OpenAlt: d.openAlt,
		Active:  d.active,
	}
}

// DoorSnapshot is a copy of a door's hinge state.
type DoorSnapshot struct {
	Offset  gamemath.Orientation
	Closed  hitbox.Hitbox
	Open    hitbox.Hitbox
	OpenAlt hitbox.Hitbox
	Active  hitbox.Hitbox
}
