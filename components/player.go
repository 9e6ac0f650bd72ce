package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Direction dmath.Vec2
	// LastSafeX/Y is the respawn position, updated by checkpoints and by
	// safe grounding.
	LastSafeX float64
	LastSafeY float64
	// Checkpoints reached this run.
	CheckpointsHit int
}

var Player = donburi.NewComponentType[PlayerData]()
