package systems

import (
	"math"

	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns input into player speed. UpdateCollisions applies it.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		var dir float64
		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			dir--
		}
		if GetAction(input, cfg.ActionMoveRight).Pressed {
			dir++
		}

		if dir != 0 {
			player.Direction = dir
			physics.SpeedX += dir * cfg.Player.Acceleration
			physics.SpeedX = math.Max(-cfg.Player.MaxSpeed, math.Min(cfg.Player.MaxSpeed, physics.SpeedX))
		} else {
			physics.SpeedX = applyFriction(physics.SpeedX, cfg.Player.Friction)
		}

		if physics.OnGround && GetAction(input, cfg.ActionJump).JustPressed {
			physics.SpeedY = -cfg.Player.JumpSpeed
			physics.OnGround = false
		}

		physics.SpeedY = math.Min(physics.SpeedY+cfg.Player.Gravity, cfg.Player.MaxFallSpeed)
	})
}

func applyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}
