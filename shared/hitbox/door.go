package hitbox

import "github.com/automoto/obstacle-sync/shared/gamemath"

// DoorHitboxes derives the two swung-open shapes of a door from its local
// closed rectangle. hinge is the hinge point relative to the door's origin,
// position and o are the door's placement. The open shape is the closed
// shape turned one quarter around the hinge, openAlt three quarters, so the
// hinge point is shared by all three shapes.
func DoorHitboxes(local Rect, hinge, position Vec2, o gamemath.Orientation) (open, openAlt Rect) {
	openAnchor := gamemath.AddAdjust(position, Vec2{X: hinge.X + hinge.Y, Y: hinge.Y - hinge.X}, o)
	open = local.TransformRect(openAnchor, 1, o.Add(gamemath.Orientation1))

	altAnchor := gamemath.AddAdjust(position, Vec2{X: hinge.X - hinge.Y, Y: hinge.Y + hinge.X}, o)
	openAlt = local.TransformRect(altAnchor, 1, o.Add(gamemath.Orientation3))

	return open, openAlt
}
