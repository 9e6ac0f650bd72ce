package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowblade/skirmish/collision"
	"github.com/hollowblade/skirmish/components"
	cfg "github.com/hollowblade/skirmish/config"
)

// PlayerZoneListener reacts to the player entering checkpoint and hazard
// zones. Register it on the player's trigger dispatcher after spawning.
type PlayerZoneListener struct {
	ECS *ecs.ECS
}

func (l *PlayerZoneListener) OnTriggerEnter(own, other collision.Collider) {
	playerEntry := entryOf(own)
	zoneEntry := entryOf(other)
	if playerEntry == nil || zoneEntry == nil {
		return
	}

	switch {
	case zoneEntry.HasComponent(components.Checkpoint):
		activateCheckpoint(l.ECS, playerEntry, zoneEntry)
	case zoneEntry.HasComponent(components.Hazard):
		RespawnPlayer(l.ECS, playerEntry)
	}
}

func (l *PlayerZoneListener) OnTriggerStay(own, other collision.Collider) {}
func (l *PlayerZoneListener) OnTriggerExit(own, other collision.Collider) {}

func entryOf(c collision.Collider) *donburi.Entry {
	body := c.Owner()
	if body == nil {
		return nil
	}
	entry, ok := body.Data.(*donburi.Entry)
	if !ok || !entry.Valid() {
		return nil
	}
	return entry
}

func activateCheckpoint(ecs *ecs.ECS, playerEntry, zoneEntry *donburi.Entry) {
	checkpoint := components.Checkpoint.Get(zoneEntry)
	if checkpoint.Activated {
		return
	}
	checkpoint.Activated = true

	zoneBody := components.Body.Get(zoneEntry)
	player := components.Player.Get(playerEntry)
	player.LastSafeX = zoneBody.Pos.X
	player.LastSafeY = zoneBody.Pos.Y
	player.CheckpointsHit++

	SpawnBurst(ecs, zoneBody.Pos.X, zoneBody.Pos.Y, burstCheckpoint)
	SaveProgress(&SavedProgress{
		DrawColliders:  cfg.Debug.DrawColliders,
		CheckpointsHit: player.CheckpointsHit,
	})
}
