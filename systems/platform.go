package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/hollowblade/skirmish/components"
	"github.com/hollowblade/skirmish/tags"
)

// UpdatePlatforms advances each floating platform along its tween sequence.
// Platform motion is committed directly; platforms never resolve against
// anything.
func UpdatePlatforms(ecs *ecs.ECS) {
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		body := components.Body.Get(e)

		y, _, seqDone := tw.Update(1.0 / 60.0)
		body.ApplyMovement(dmath.Vec2{Y: float64(y) - body.Pos.Y})
		if seqDone {
			tw.Reset()
		}
	})
}
