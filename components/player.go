package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	// Direction is -1 when facing left and 1 when facing right.
	Direction float64
}

var Player = donburi.NewComponentType[PlayerData]()
