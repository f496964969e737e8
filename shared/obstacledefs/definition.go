// Package obstacledefs holds the static, per-type obstacle definitions. A
// definition is loaded once and shared read-only by every obstacle of that
// type.
package obstacledefs

import (
	"fmt"
	"strings"

	"github.com/automoto/obstacle-sync/shared/gamemath"
	"github.com/automoto/obstacle-sync/shared/hitbox"
)

// RotationMode selects how a full update encodes an obstacle's rotation.
type RotationMode uint8

const (
	RotationNone    RotationMode = iota // fixed, nothing on the wire
	RotationLimited                     // one of four orientations
	RotationFull                        // continuous angle
)

var rotationModeNames = map[RotationMode]string{
	RotationNone:    "none",
	RotationLimited: "limited",
	RotationFull:    "full",
}

func (m RotationMode) String() string {
	if name, ok := rotationModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseRotationMode accepts the names returned by String. An empty string
// means RotationNone.
func ParseRotationMode(s string) (RotationMode, error) {
	if s == "" {
		return RotationNone, nil
	}
	for mode, name := range rotationModeNames {
		if strings.EqualFold(name, s) {
			return mode, nil
		}
	}
	return RotationNone, fmt.Errorf("unknown rotation mode %q", s)
}

// Frames overrides the sprite frame names derived from the definition ID.
type Frames struct {
	Base     string
	Residue  string
	Particle string
}

type Definition struct {
	ID    string
	Index uint16 // wire type id, assigned by the registry

	Hitbox       hitbox.Hitbox
	RotationMode RotationMode
	Variations   int

	IsDoor      bool
	HingeOffset gamemath.Vec2

	NoResidue bool
	Invisible bool
	Depth     int
	Material  string

	Frames             Frames
	ParticleVariations int
}

func (d *Definition) HasVariations() bool {
	return d.Variations > 0
}

func (d *Definition) BaseFrame() string {
	if d.Frames.Base != "" {
		return d.Frames.Base
	}
	return d.ID
}

func (d *Definition) ResidueFrame() string {
	if d.Frames.Residue != "" {
		return d.Frames.Residue
	}
	return d.ID + "_residue"
}

// ParticleFrames lists the particle frames of the definition, one per
// particle variation, or the single particle frame.
func (d *Definition) ParticleFrames() []string {
	base := d.Frames.Particle
	if base == "" {
		base = d.ID + "_particle"
	}
	if d.ParticleVariations <= 0 {
		return []string{base}
	}
	frames := make([]string, d.ParticleVariations)
	for i := range frames {
		frames[i] = fmt.Sprintf("%s_%d", base, i+1)
	}
	return frames
}

// DoorRect returns the local closed rectangle of a door definition.
func (d *Definition) DoorRect() (hitbox.Rect, bool) {
	r, ok := d.Hitbox.(hitbox.Rect)
	return r, ok && d.IsDoor
}

func (d *Definition) validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidDefinition)
	}
	if d.Hitbox == nil {
		return fmt.Errorf("%w: %s: no hitbox", ErrInvalidDefinition, d.ID)
	}
	if d.IsDoor {
		if _, ok := d.Hitbox.(hitbox.Rect); !ok {
			return fmt.Errorf("%w: %s: door hitbox must be a rectangle", ErrInvalidDefinition, d.ID)
		}
	}
	if d.Variations < 0 || d.Variations > 1<<3 {
		return fmt.Errorf("%w: %s: %d variations do not fit the wire field", ErrInvalidDefinition, d.ID, d.Variations)
	}
	if _, ok := rotationModeNames[d.RotationMode]; !ok {
		return fmt.Errorf("%w: %s: rotation mode %d", ErrInvalidDefinition, d.ID, d.RotationMode)
	}
	return nil
}
