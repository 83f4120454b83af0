package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its collision shape in the space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision space built from the level's solid tiles.
var Space = donburi.NewComponentType[resolv.Space]()
