package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowblade/skirmish/components"
	cfg "github.com/hollowblade/skirmish/config"
	"github.com/hollowblade/skirmish/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Physics,
		components.Input,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Platform,
		components.Body,
		components.Tween,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Body,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Body,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Particles = newArchetype(
		components.Particles,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
