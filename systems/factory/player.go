package factory

import (
	"github.com/automoto/pixelcam/archetypes"
	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet at x, y in texels.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{Direction: 1})
	components.Physics.SetValue(player, components.PhysicsData{})
	addToSpace(ecs, obj)

	return player
}
