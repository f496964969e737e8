package obstacle

import (
	"fmt"

	"github.com/automoto/obstacle-sync/shared/bitstream"
	"github.com/automoto/obstacle-sync/shared/obstacledefs"
)

// WritePartial encodes u in the field order ReadPartial expects.
func WritePartial(w *bitstream.Writer, def *obstacledefs.Definition, u PartialUpdate) {
	w.WriteScale(u.Scale)
	w.WriteBool(u.Destroyed)
	w.WriteBits(uint64(u.HitEffect), bitstream.HitEffectBits)
	if def.IsDoor {
		w.WriteOrientation(u.DoorOffset)
	}
}

// WriteFull encodes u in the field order ReadFull expects. A door's first
// full update must have HingeInit set.
func WriteFull(w *bitstream.Writer, def *obstacledefs.Definition, u FullUpdate) {
	w.WritePosition(u.Position)

	switch {
	case def.IsDoor && u.HingeInit:
		w.WriteOrientation(u.Orientation)
	case def.RotationMode == obstacledefs.RotationLimited:
		w.WriteOrientation(u.Orientation)
	case def.RotationMode == obstacledefs.RotationFull:
		w.WriteRotation(u.Rotation)
	}

	if def.HasVariations() {
		w.WriteVariation(u.Variation)
	}
}

// EncodePartial returns the payload of a partial update.
func EncodePartial(def *obstacledefs.Definition, u PartialUpdate) ([]byte, error) {
	if u.HitEffect > 7 {
		return nil, fmt.Errorf("encode partial %s: hit effect %d out of range", def.ID, u.HitEffect)
	}
	w := bitstream.NewWriter()
	WritePartial(w, def, u)
	return w.Bytes()
}

// EncodeFull returns the payload of a full update.
func EncodeFull(def *obstacledefs.Definition, u FullUpdate) ([]byte, error) {
	if def.HasVariations() && (u.Variation < 0 || u.Variation >= def.Variations) {
		return nil, fmt.Errorf("encode full %s: variation %d out of range", def.ID, u.Variation)
	}
	w := bitstream.NewWriter()
	WriteFull(w, def, u)
	return w.Bytes()
}
