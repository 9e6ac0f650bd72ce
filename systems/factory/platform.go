package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/hollowblade/skirmish/archetypes"
	"github.com/hollowblade/skirmish/collision"
	"github.com/hollowblade/skirmish/components"
	"github.com/hollowblade/skirmish/levels"
	"github.com/hollowblade/skirmish/tags"
)

func CreateFloatingPlatform(ecs *ecs.ECS, path levels.PlatformPath) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	body := collision.NewBody(GetSpace(ecs), dmath.Vec2{X: path.X, Y: path.Y})
	body.Data = platform

	box := collision.NewBox(path.W, path.H)
	box.SetLayers(tags.LayerWorld, collision.LayerNone)
	body.AddCollider(box)

	components.Body.SetValue(platform, components.BodyData{Body: body})
	components.Platform.SetValue(platform, components.PlatformData{
		OriginX: path.X,
		OriginY: path.Y,
	})

	// The platform moves along a looping sequence of tweens, drifting up by
	// the path's travel distance and back down again.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(path.Y), float32(path.Y-path.Travel), float32(path.Duration), ease.Linear),
		gween.New(float32(path.Y-path.Travel), float32(path.Y), float32(path.Duration), ease.Linear),
	)
	components.Tween.Set(platform, tw)

	return platform
}
