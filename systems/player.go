package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/hollowblade/skirmish/components"
	cfg "github.com/hollowblade/skirmish/config"
	"github.com/hollowblade/skirmish/tags"
)

func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updateSinglePlayer(ecs, e)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	input := components.Input.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	if input.Pressed(cfg.ActionMoveLeft) {
		physics.SpeedX -= cfg.Player.Acceleration
		player.Direction.X = -1
	}
	if input.Pressed(cfg.ActionMoveRight) {
		physics.SpeedX += cfg.Player.Acceleration
		player.Direction.X = 1
	}

	if input.JustPressed(cfg.ActionJump) && physics.OnGround != nil {
		physics.SpeedY = cfg.Player.JumpSpeed
		physics.OnGround = nil
	}

	if input.JustPressed(cfg.ActionRespawn) {
		RespawnPlayer(ecs, playerEntry)
	}

	if input.JustPressed(cfg.ActionToggleDebug) {
		cfg.Debug.DrawColliders = !cfg.Debug.DrawColliders
		SaveProgress(&SavedProgress{
			DrawColliders:  cfg.Debug.DrawColliders,
			CheckpointsHit: player.CheckpointsHit,
		})
	}
}

// RespawnPlayer teleports the player back to their last safe position and
// kills their momentum.
func RespawnPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	body.Pos.X = player.LastSafeX
	body.Pos.Y = player.LastSafeY
	body.ApplyMovement(dmath.Vec2{})
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = nil

	SpawnBurst(ecs, player.LastSafeX, player.LastSafeY, burstRespawn)
}
