package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/hollowblade/skirmish/archetypes"
	"github.com/hollowblade/skirmish/collision"
	"github.com/hollowblade/skirmish/components"
	"github.com/hollowblade/skirmish/tags"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	body := collision.NewBody(GetSpace(ecs), dmath.Vec2{X: x, Y: y})
	body.Data = wall // Link for O(1) lookup

	box := collision.NewBox(w, h)
	box.SetLayers(tags.LayerWorld, collision.LayerNone)
	body.AddCollider(box)

	components.Body.SetValue(wall, components.BodyData{Body: body})

	return wall
}
