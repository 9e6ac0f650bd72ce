package collision

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Result describes a single obstruction found while resolving motion.
// The zero value (nil Collider) means no collision occurred. Results are
// stack values produced per query and never persisted.
type Result struct {
	// Collider is the obstructing collider, nil when nothing was hit.
	Collider Collider
	// MTV is the minimum translation vector that separates the shapes.
	MTV dmath.Vec2
	// Normal is the surface normal at the contact, derived from the MTV.
	Normal dmath.Vec2
	// Contact is the contact point of the intersection.
	Contact dmath.Vec2
}

// Colliding reports whether the result records an obstruction.
func (r Result) Colliding() bool {
	return r.Collider != nil
}

// RaycastHit is the outcome of a segment cast through the space.
type RaycastHit struct {
	Collider Collider
	Point    dmath.Vec2
	Normal   dmath.Vec2
}
