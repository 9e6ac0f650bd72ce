package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/hollowblade/skirmish/archetypes"
	"github.com/hollowblade/skirmish/collision"
	"github.com/hollowblade/skirmish/components"
	cfg "github.com/hollowblade/skirmish/config"
	"github.com/hollowblade/skirmish/tags"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	body := collision.NewBody(GetSpace(ecs), dmath.Vec2{X: x, Y: y})
	body.Data = player

	box := collision.NewBox(cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	box.SetLayers(tags.LayerActors, tags.LayerWorld|tags.LayerZones)
	body.AddCollider(box)

	components.Body.SetValue(player, components.BodyData{Body: body})
	components.Player.SetValue(player, components.PlayerData{
		Direction: dmath.Vec2{X: 1, Y: 0},
		LastSafeX: x,
		LastSafeY: y,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})

	return player
}
