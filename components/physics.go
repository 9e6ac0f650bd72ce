package components

import (
	"github.com/yohamta/donburi"

	"github.com/hollowblade/skirmish/collision"
)

// PhysicsData carries per-entity velocity state. Integration (friction,
// gravity, clamping) happens in the physics system; the collision body
// only ever sees the resulting per-step motion vector.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	Friction float64
	MaxSpeed float64

	// OnGround is the collider the entity landed on last step, nil while
	// airborne.
	OnGround collision.Collider
}

var Physics = donburi.NewComponentType[PhysicsData]()
