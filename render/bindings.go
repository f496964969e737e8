package render

import "github.com/hajimehoshi/ebiten/v2"

// Action is a viewer command.
type Action int

const (
	ActionNone Action = iota
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionZoomIn
	ActionZoomOut
	ActionToggleLabels
	ActionToggleResidue
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// Binding lists the keys and gamepad buttons that trigger an action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var Bindings = map[Action]Binding{
	ActionPanLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	ActionPanRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	ActionPanUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	ActionPanDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	ActionZoomIn: {
		Keys:                   []ebiten.Key{ebiten.KeyEqual, ebiten.KeyKPAdd},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	},
	ActionZoomOut: {
		Keys:                   []ebiten.Key{ebiten.KeyMinus, ebiten.KeyKPSubtract},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
	},
	ActionToggleLabels: {
		Keys:                   []ebiten.Key{ebiten.KeyL},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	ActionToggleResidue: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyP},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
}

const (
	panSpeed = 8.0 // screen pixels per frame
	zoomStep = 1.1
	minZoom  = 0.25
	maxZoom  = 8.0
)
