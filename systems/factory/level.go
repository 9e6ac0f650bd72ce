package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowblade/skirmish/archetypes"
	"github.com/hollowblade/skirmish/assets"
	"github.com/hollowblade/skirmish/components"
	"github.com/hollowblade/skirmish/levels"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	loaded, err := levels.LoadAll(assets.LevelFS(), "levels")
	if err != nil {
		panic(err)
	}
	if len(loaded) == 0 {
		panic("no levels found in assets/levels")
	}

	components.Level.SetValue(level, components.LevelData{
		Current: loaded[0],
	})

	return level
}
