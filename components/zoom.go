package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ZoomTweenData animates the pixel camera zoom level. Tween is nil when idle.
type ZoomTweenData struct {
	Tween  *gween.Tween
	Target float64
}

var ZoomTween = donburi.NewComponentType[ZoomTweenData]()
