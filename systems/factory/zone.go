package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/hollowblade/skirmish/archetypes"
	"github.com/hollowblade/skirmish/collision"
	"github.com/hollowblade/skirmish/components"
	"github.com/hollowblade/skirmish/levels"
	"github.com/hollowblade/skirmish/tags"
)

// CreateCheckpoint creates a trigger zone that records player progress.
func CreateCheckpoint(ecs *ecs.ECS, zone levels.CheckpointZone) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	body := newZoneBody(ecs, checkpoint, zone.Rect)
	components.Body.SetValue(checkpoint, components.BodyData{Body: body})
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		ID: zone.ID,
	})

	return checkpoint
}

// CreateHazard creates a trigger zone that respawns the player on contact.
func CreateHazard(ecs *ecs.ECS, rect levels.Rect) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	body := newZoneBody(ecs, hazard, rect)
	components.Body.SetValue(hazard, components.BodyData{Body: body})

	return hazard
}

func newZoneBody(ecs *ecs.ECS, entry *donburi.Entry, rect levels.Rect) *collision.Body {
	body := collision.NewBody(GetSpace(ecs), dmath.Vec2{X: rect.X, Y: rect.Y})
	body.Data = entry

	box := collision.NewBox(rect.W, rect.H)
	box.SetTrigger(true)
	box.SetLayers(tags.LayerZones, collision.LayerNone)
	body.AddCollider(box)

	return body
}
