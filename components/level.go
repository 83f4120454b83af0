package components

import (
	"github.com/automoto/pixelcam/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	World *leveldata.World
	Name  string
}

var Level = donburi.NewComponentType[LevelData]()
