// Package obstacle reconstructs obstacle state on the receiving side of the
// update stream. An Obstacle is created empty when its network id first
// shows up, is populated by a full update and refreshed by partial updates.
// It never simulates: every field comes from the wire.
package obstacle

import (
	"fmt"

	"github.com/automoto/obstacle-sync/shared/bitstream"
	"github.com/automoto/obstacle-sync/shared/gamemath"
	"github.com/automoto/obstacle-sync/shared/hitbox"
	"github.com/automoto/obstacle-sync/shared/obstacledefs"
	"github.com/rs/zerolog"
)

// Lifecycle gates the behaviour that differs between the first full update
// and everything after it.
type Lifecycle uint8

const (
	Uninitialized Lifecycle = iota
	Initialized
)

func (l Lifecycle) String() string {
	if l == Initialized {
		return "initialized"
	}
	return "uninitialized"
}

// Obstacle is the entity record of one networked obstacle. It is owned by a
// single goroutine; no method is safe for concurrent use.
type Obstacle struct {
	def       *obstacledefs.Definition
	presenter Presenter
	log       zerolog.Logger

	lifecycle   Lifecycle
	scale       float64
	position    gamemath.Vec2
	rotation    float64
	orientation gamemath.Orientation
	variation   int
	dead        bool
	hitEffect   uint8
	hitbox      hitbox.Hitbox

	door *Door
}

type Option func(*Obstacle)

func WithPresenter(p Presenter) Option {
	return func(o *Obstacle) {
		if p != nil {
			o.presenter = p
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(o *Obstacle) {
		o.log = log
	}
}

// New returns an uninitialized obstacle of type def.
func New(def *obstacledefs.Definition, opts ...Option) *Obstacle {
	o := &Obstacle{
		def:       def,
		presenter: NopPresenter{},
		log:       zerolog.Nop(),
		scale:     1,
	}
	if def.IsDoor {
		o.door = &Door{}
	}
	for _, opt := range opts {
		opt(o)
	}
	o.log = o.log.With().Str("obstacle", def.ID).Logger()
	return o
}

func (o *Obstacle) Definition() *obstacledefs.Definition { return o.def }
func (o *Obstacle) Lifecycle() Lifecycle                 { return o.lifecycle }
func (o *Obstacle) Scale() float64                       { return o.scale }
func (o *Obstacle) Position() gamemath.Vec2              { return o.position }
func (o *Obstacle) Rotation() float64                    { return o.rotation }
func (o *Obstacle) Orientation() gamemath.Orientation    { return o.orientation }
func (o *Obstacle) Variation() int                       { return o.variation }
func (o *Obstacle) Dead() bool                           { return o.dead }
func (o *Obstacle) HitEffect() uint8                     { return o.hitEffect }

// Hitbox returns the active collision shape, nil until it can be derived.
func (o *Obstacle) Hitbox() hitbox.Hitbox { return o.hitbox }

// Door returns the hinge state, nil unless the definition is a door.
func (o *Obstacle) Door() *Door { return o.door }

// DecodePartial reads a partial update from r and applies it. On error the
// obstacle is left unchanged.
func (o *Obstacle) DecodePartial(r *bitstream.Reader) error {
	u, err := ReadPartial(r, o.def)
	if err != nil {
		return err
	}
	o.ApplyPartial(u)
	return nil
}

// DecodeFull reads a full update from r and applies it. On error the
// obstacle is left unchanged.
func (o *Obstacle) DecodeFull(r *bitstream.Reader) error {
	u, err := ReadFull(r, o.def, o.lifecycle == Uninitialized)
	if err != nil {
		return err
	}
	o.ApplyFull(u)
	return nil
}

// ApplyPartial refreshes the per-tick fields. Cues are only emitted once the
// obstacle has been initialized by a full update.
func (o *Obstacle) ApplyPartial(u PartialUpdate) {
	first := o.lifecycle == Uninitialized

	o.scale = u.Scale

	if u.HitEffect != o.hitEffect && !first && !u.Destroyed && !o.dead {
		o.emit(CueHit)
	}
	o.hitEffect = u.HitEffect

	if o.door != nil && o.door.transition(u.DoorOffset) {
		if first {
			o.presenter.DoorRotation(o.door.LeafRotation(), false)
		} else {
			o.emit(o.door.cue())
			o.presenter.DoorRotation(o.door.LeafRotation(), true)
		}
		if active := o.door.Active(); active != nil {
			o.hitbox = active
		} else if o.door.IsOpen() {
			o.log.Debug().
				Uint8("offset", uint8(u.DoorOffset)).
				Msg("door opened before it was placed")
		}
	}

	if u.Destroyed && !o.dead {
		o.dead = true
		if !first {
			o.emit(CueDestroyed)
		}
	}

	if first {
		return
	}
	if o.door == nil || o.door.Active() == nil {
		o.hitbox = hitbox.Transform(o.def.Hitbox, o.position, o.scale, o.orientation)
	}
	o.presenter.Appearance(o.Appearance())
}

// ApplyFull places the obstacle. A door's hinge geometry is derived on the
// first full update only; later full updates move nothing but the fields
// they carry. A door's rotation and orientation follow later full updates
// while its hinge hitboxes stay on the first orientation.
func (o *Obstacle) ApplyFull(u FullUpdate) {
	first := o.lifecycle == Uninitialized

	o.position = u.Position
	o.rotation = u.Rotation
	o.orientation = u.Orientation
	if o.def.HasVariations() {
		o.variation = u.Variation
	}

	if o.door != nil && first {
		o.rotation = gamemath.OrientationToRotation(u.Orientation)
		o.door.derive(o.def, o.position, o.scale, u.Orientation)
		o.hitbox = o.door.Active()
		o.presenter.DoorRotation(o.door.LeafRotation(), false)
	}

	o.lifecycle = Initialized
	if o.door == nil {
		o.hitbox = hitbox.Transform(o.def.Hitbox, o.position, o.scale, o.orientation)
	}

	if first {
		o.log.Trace().
			Float64("x", o.position.X).
			Float64("y", o.position.Y).
			Bool("dead", o.dead).
			Msg("obstacle initialized")
	}
	o.presenter.Appearance(o.Appearance())
}

// Frame returns the sprite frame for the current state.
func (o *Obstacle) Frame() string {
	if o.dead {
		return o.def.ResidueFrame()
	}
	if o.def.HasVariations() {
		return fmt.Sprintf("%s_%d", o.def.BaseFrame(), o.variation+1)
	}
	return o.def.BaseFrame()
}

// Appearance returns the render state for the current fields.
func (o *Obstacle) Appearance() Appearance {
	a := Appearance{
		Frame:          o.Frame(),
		Visible:        !o.def.Invisible && !(o.dead && o.def.NoResidue),
		Position:       o.position,
		Rotation:       o.rotation,
		ImageScale:     o.scale,
		Depth:          o.def.Depth,
		ParticleFrames: o.def.ParticleFrames(),
	}
	if o.dead {
		a.ImageScale = 1
		a.Depth = 0
	}
	if o.door != nil {
		a.HingeOffset = o.def.HingeOffset
	}
	return a
}

func (o *Obstacle) emit(kind CueKind) {
	o.presenter.Cue(Cue{Kind: kind, DefinitionID: o.def.ID, Material: o.def.Material})
}

// Snapshot is an immutable copy of an obstacle's state.
type Snapshot struct {
	DefinitionID string
	Lifecycle    Lifecycle
	Scale        float64
	Position     gamemath.Vec2
	Rotation     float64
	Orientation  gamemath.Orientation
	Variation    int
	Dead         bool
	HitEffect    uint8
	Hitbox       hitbox.Hitbox
	Door         *DoorSnapshot
}

func (o *Obstacle) Snapshot() Snapshot {
	s := Snapshot{
		DefinitionID: o.def.ID,
		Lifecycle:    o.lifecycle,
		Scale:        o.scale,
		Position:     o.position,
		Rotation:     o.rotation,
		Orientation:  o.orientation,
		Variation:    o.variation,
		Dead:         o.dead,
		HitEffect:    o.hitEffect,
		Hitbox:       o.hitbox,
	}
	if o.door != nil {
		s.Door = o.door.snapshot()
	}
	return s
}
