package systems

import (
	"math"

	"github.com/automoto/pixelcam/components"
	"github.com/automoto/pixelcam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontalCollision(physics, obj.Object)
		resolveVerticalCollision(physics, obj.Object)
	})
}

// resolveHorizontalCollision moves the object along X, stopping flush against walls
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solid := nearestSolid(check, object, dx, 0); solid != nil {
			dx = check.ContactWithObject(solid).X()
			physics.SpeedX = 0
		}
	}

	object.X += dx
}

// resolveVerticalCollision moves the object along Y and lands it on solids
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = false
	dy := physics.SpeedY

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	if solid := nearestSolid(check, object, 0, dy); solid != nil {
		dy = check.ContactWithObject(solid).Y()
		if physics.SpeedY >= 0 {
			physics.OnGround = true
		}
		physics.SpeedY = 0
	}

	object.Y += dy
}

// nearestSolid returns the first solid hit along the movement, ignoring solids
// that only share a cell with the object without overlapping it on the other
// axis.
func nearestSolid(check *resolv.Collision, object *resolv.Object, dx, dy float64) *resolv.Object {
	var best *resolv.Object
	bestDist := math.Inf(1)
	for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
		var dist float64
		switch {
		case dx > 0 && overlaps(object.Y, object.H, s.Y, s.H):
			dist = s.X - (object.X + object.W)
		case dx < 0 && overlaps(object.Y, object.H, s.Y, s.H):
			dist = object.X - (s.X + s.W)
		case dy >= 0 && dx == 0 && overlaps(object.X, object.W, s.X, s.W):
			dist = s.Y - (object.Y + object.H)
		case dy < 0 && overlaps(object.X, object.W, s.X, s.W):
			dist = object.Y - (s.Y + s.H)
		default:
			continue
		}
		if dist < bestDist {
			best, bestDist = s, dist
		}
	}
	return best
}

func overlaps(a, aLen, b, bLen float64) bool {
	return a+aLen > b && a < b+bLen
}
