package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/hollowblade/skirmish/collision"
	"github.com/hollowblade/skirmish/components"
)

// UpdateMovement turns per-entity velocity into a resolved world move.
// Runs after UpdatePhysics so speeds are final for the step.
func UpdateMovement(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		physics := components.Physics.Get(e)
		body := components.Body.Get(e)

		motion := dmath.Vec2{X: physics.SpeedX, Y: physics.SpeedY}
		requested := motion
		body.Move(&motion)

		// A clipped axis means something solid was in the way; kill the
		// velocity on that axis so speed does not accumulate into walls.
		if motion.X != requested.X {
			physics.SpeedX = 0
		}
		if motion.Y != requested.Y {
			physics.SpeedY = 0
		}

		physics.OnGround = groundBelow(body.Body)
	})
}

// groundBelow probes one unit down and reports the solid collider the body
// would land on, nil while airborne.
func groundBelow(body *collision.Body) collision.Collider {
	probe := dmath.Vec2{X: 0, Y: 1}
	res, hit := body.CalculateMovement(&probe)
	if hit && probe.Y < 1 {
		return res.Collider
	}
	return nil
}
