package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the follow camera. Position is in world units.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
}

var Camera = donburi.NewComponentType[CameraData]()
