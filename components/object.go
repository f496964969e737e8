package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CollisionData holds the resolv objects mirroring an obstacle's active
// hitbox, one per hitbox part.
type CollisionData struct {
	Objects []*resolv.Object
}

var Collision = donburi.NewComponentType[CollisionData]()
