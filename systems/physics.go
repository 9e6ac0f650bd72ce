package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowblade/skirmish/components"
	cfg "github.com/hollowblade/skirmish/config"
)

func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		if physics.SpeedX > physics.Friction {
			physics.SpeedX -= physics.Friction
		} else if physics.SpeedX < -physics.Friction {
			physics.SpeedX += physics.Friction
		} else {
			physics.SpeedX = 0
		}

		if physics.SpeedX > physics.MaxSpeed {
			physics.SpeedX = physics.MaxSpeed
		} else if physics.SpeedX < -physics.MaxSpeed {
			physics.SpeedX = -physics.MaxSpeed
		}

		// Apply gravity, capped so fast falls cannot tunnel past thin
		// geometry between steps.
		physics.SpeedY += physics.Gravity
		if physics.SpeedY > cfg.MaxFallSpeed {
			physics.SpeedY = cfg.MaxFallSpeed
		}

		// Track last safe ground position for player respawn
		if e.HasComponent(components.Player) && physics.OnGround != nil {
			body := components.Body.Get(e)
			player := components.Player.Get(e)
			player.LastSafeX = body.Pos.X
			player.LastSafeY = body.Pos.Y
		}
	})
}
