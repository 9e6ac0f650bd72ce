package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowblade/skirmish/archetypes"
	"github.com/hollowblade/skirmish/collision"
	"github.com/hollowblade/skirmish/components"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: collision.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// GetSpace returns the world's collision space, nil before CreateSpace.
func GetSpace(ecs *ecs.ECS) *collision.Space {
	if entry, ok := components.Space.First(ecs.World); ok {
		return components.Space.Get(entry).Space
	}
	return nil
}
