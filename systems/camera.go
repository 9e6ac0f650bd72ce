package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/hollowblade/skirmish/components"
	cfg "github.com/hollowblade/skirmish/config"
	"github.com/hollowblade/skirmish/tags"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Current
	if level == nil {
		return
	}

	// Only update look-ahead while the player is moving; freeze the offset
	// when idle.
	if math.Abs(physics.SpeedX) > cfg.Camera.LookAheadSpeedLimit {
		target := player.Direction.X * cfg.Camera.LookAheadDistanceX
		camera.LookAheadX += (target - camera.LookAheadX) * cfg.Camera.LookAheadSmoothing
	}

	targetX := body.Pos.X + camera.LookAheadX
	targetY := body.Pos.Y

	screenWidth := float64(cfg.C.Width)
	screenHeight := float64(cfg.C.Height)
	levelWidth := float64(level.Width)
	levelHeight := float64(level.Height)

	// Keep the view inside the level.
	minCameraX := screenWidth / 2
	maxCameraX := levelWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelHeight - screenHeight/2
	if maxCameraX < minCameraX {
		maxCameraX = minCameraX
	}
	if maxCameraY < minCameraY {
		maxCameraY = minCameraY
	}

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowSmoothing
}
