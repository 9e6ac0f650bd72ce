package factory

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowblade/skirmish/archetypes"
	"github.com/hollowblade/skirmish/components"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
