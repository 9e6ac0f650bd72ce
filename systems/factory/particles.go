package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowblade/skirmish/archetypes"
	"github.com/hollowblade/skirmish/components"
	cfg "github.com/hollowblade/skirmish/config"
)

func CreateParticles(ecs *ecs.ECS) *donburi.Entry {
	particles := archetypes.Particles.Spawn(ecs)
	data := components.Particles.Get(particles)
	data.Init(cfg.Particles.PoolSize)
	return particles
}
