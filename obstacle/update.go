package obstacle

import (
	"errors"
	"fmt"

	"github.com/automoto/obstacle-sync/shared/bitstream"
	"github.com/automoto/obstacle-sync/shared/gamemath"
	"github.com/automoto/obstacle-sync/shared/obstacledefs"
)

// ErrProtocol marks a payload that does not hold the fields its definition
// requires. The connection that produced it cannot be trusted any more.
var ErrProtocol = errors.New("protocol violation")

// PartialUpdate holds the fields of a partial update in wire order.
type PartialUpdate struct {
	Scale      float64
	Destroyed  bool
	HitEffect  uint8
	DoorOffset gamemath.Orientation // doors only
}

// FullUpdate holds the fields of a full update in wire order.
type FullUpdate struct {
	Position gamemath.Vec2
	// HingeInit is set when the update places a door for the first time.
	// The rotation field is then a plain orientation.
	HingeInit   bool
	Rotation    float64
	Orientation gamemath.Orientation
	Variation   int // only when the definition declares variations
}

// ReadPartial decodes a partial update of an obstacle of type def.
func ReadPartial(r *bitstream.Reader, def *obstacledefs.Definition) (PartialUpdate, error) {
	var (
		u   PartialUpdate
		err error
	)
	if u.Scale, err = r.ReadScale(); err != nil {
		return PartialUpdate{}, protocolError("partial", def, err)
	}
	if u.Destroyed, err = r.ReadBool(); err != nil {
		return PartialUpdate{}, protocolError("partial", def, err)
	}
	hit, err := r.ReadBits(bitstream.HitEffectBits)
	if err != nil {
		return PartialUpdate{}, protocolError("partial", def, err)
	}
	u.HitEffect = uint8(hit)

	if def.IsDoor {
		if u.DoorOffset, err = r.ReadOrientation(); err != nil {
			return PartialUpdate{}, protocolError("partial", def, err)
		}
	}
	return u, nil
}

// ReadFull decodes a full update of an obstacle of type def. first tells
// whether the receiving obstacle has not been initialized yet, which decides
// how a door encodes its rotation.
func ReadFull(r *bitstream.Reader, def *obstacledefs.Definition, first bool) (FullUpdate, error) {
	var (
		u   FullUpdate
		err error
	)
	if u.Position, err = r.ReadPosition(); err != nil {
		return FullUpdate{}, protocolError("full", def, err)
	}

	if def.IsDoor && first {
		u.HingeInit = true
		if u.Orientation, err = r.ReadOrientation(); err != nil {
			return FullUpdate{}, protocolError("full", def, err)
		}
		u.Rotation = gamemath.OrientationToRotation(u.Orientation)
	} else {
		if u.Rotation, u.Orientation, err = ReadObstacleRotation(r, def.RotationMode); err != nil {
			return FullUpdate{}, protocolError("full", def, err)
		}
	}

	if def.HasVariations() {
		if u.Variation, err = r.ReadVariation(); err != nil {
			return FullUpdate{}, protocolError("full", def, err)
		}
	}
	return u, nil
}

// ReadObstacleRotation reads a rotation encoded for mode. A limited rotation
// is a quarter-turn orientation; a full rotation is a continuous angle with
// orientation 0; RotationNone reads nothing.
func ReadObstacleRotation(r *bitstream.Reader, mode obstacledefs.RotationMode) (float64, gamemath.Orientation, error) {
	switch mode {
	case obstacledefs.RotationLimited:
		o, err := r.ReadOrientation()
		if err != nil {
			return 0, 0, err
		}
		return gamemath.OrientationToRotation(o), o, nil
	case obstacledefs.RotationFull:
		rot, err := r.ReadRotation()
		if err != nil {
			return 0, 0, err
		}
		return rot, gamemath.Orientation0, nil
	default:
		return 0, gamemath.Orientation0, nil
	}
}

func protocolError(kind string, def *obstacledefs.Definition, err error) error {
	return fmt.Errorf("%w: %s update of %s: %w", ErrProtocol, kind, def.ID, err)
}
