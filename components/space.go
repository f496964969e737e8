package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the client collision space (singleton component).
type SpaceData struct {
	Space *resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
