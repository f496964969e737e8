package obstacle

import "github.com/automoto/obstacle-sync/shared/gamemath"

// CueKind identifies a one-shot presentation effect.
type CueKind uint8

const (
	CueHit CueKind = iota + 1
	CueDoorOpen
	CueDoorClose
	CueDestroyed
)

func (k CueKind) String() string {
	switch k {
	case CueHit:
		return "hit"
	case CueDoorOpen:
		return "door_open"
	case CueDoorClose:
		return "door_close"
	case CueDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Cue is a fire-and-forget notification for sound and particle effects.
type Cue struct {
	Kind         CueKind
	DefinitionID string
	Material     string
}

// Appearance is the render state of an obstacle after an update.
type Appearance struct {
	Frame    string
	Visible  bool
	Position gamemath.Vec2
	Rotation float64
	// ImageScale is the sprite scale. Residue is always drawn at scale 1.
	ImageScale float64
	Depth      int
	// HingeOffset is the sprite anchor of a door relative to its position.
	HingeOffset    gamemath.Vec2
	ParticleFrames []string
}

// Presenter receives the presentation intents of an obstacle. Calls happen
// synchronously from the decode methods; implementations must not call back
// into the obstacle.
type Presenter interface {
	Cue(c Cue)
	Appearance(a Appearance)
	// DoorRotation sets the rotation of a door leaf relative to the door.
	// animate is false when the door is placed for the first time.
	DoorRotation(rotation float64, animate bool)
}

// NopPresenter discards everything.
type NopPresenter struct{}

func (NopPresenter) Cue(Cue)                    {}
func (NopPresenter) Appearance(Appearance)      {}
func (NopPresenter) DoorRotation(float64, bool) {}
