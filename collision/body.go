package collision

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Body is a movable owner of colliders. Moving a body resolves its motion
// against every non-trigger collider it can hit, commits the adjusted
// motion, and then re-evaluates trigger overlaps.
//
// Colliders are processed in the order they were added; that order decides
// both the final adjusted motion (corrections are cumulative) and which
// collider a single-result resolve reports. Callers must not assume
// closest-hit-wins.
//
// Bodies are single-threaded: one resolve per simulation step, no internal
// state survives between calls apart from the trigger dispatcher's
// overlap bookkeeping.
type Body struct {
	// Pos is the body's world position. NaN components mean the body has
	// not been placed yet; raycast pre-checks are skipped in that state.
	Pos dmath.Vec2

	// Data is an opaque backlink for the body's owner, typically the
	// entity it belongs to.
	Data any

	space     SpatialQuerier
	colliders []Collider
	triggers  *TriggerDispatcher
}

// NewBody creates a body attached to a spatial query provider. The trigger
// dispatcher is constructed with the body and torn down with it.
func NewBody(space SpatialQuerier, pos dmath.Vec2) *Body {
	b := &Body{Pos: pos, space: space}
	if space != nil {
		b.triggers = newTriggerDispatcher(b)
	}
	return b
}

// AddCollider registers a collider with the body and its space.
func (b *Body) AddCollider(c Collider) {
	c.attach(b, b.space)
	b.colliders = append(b.colliders, c)
	if b.space != nil {
		b.space.Add(c)
	}
}

// RemoveCollider unregisters a collider from the body and its space.
func (b *Body) RemoveCollider(c Collider) {
	for i, other := range b.colliders {
		if other == c {
			b.colliders = append(b.colliders[:i], b.colliders[i+1:]...)
			break
		}
	}
	if b.space != nil {
		b.space.Remove(c)
	}
}

// Colliders returns the body's collider list in resolution order.
func (b *Body) Colliders() []Collider { return b.colliders }

// Triggers returns the body's trigger dispatcher, nil for a detached body.
func (b *Body) Triggers() *TriggerDispatcher { return b.triggers }

// Detach removes every collider from the space and drops the trigger
// dispatcher's listeners.
func (b *Body) Detach() {
	if b.space != nil {
		for _, c := range b.colliders {
			b.space.Remove(c)
		}
	}
	if b.triggers != nil {
		b.triggers.reset()
	}
}

// CalculateMovement adjusts the motion vector in place so it respects
// every solid obstacle the body's non-trigger colliders would hit, and
// returns a representative result for the obstruction found. The returned
// bool reports whether anything obstructed the motion.
//
// Per non-trigger collider, in list order:
//
//  1. A raycast pre-check from the collider's position clips the motion to
//     the first surface the segment crosses. Skipped while the collider is
//     not spatially placed. This bounds the segment but not the shape's
//     extent; the narrow phase below accounts for that.
//  2. A swept broadphase query gathers neighbors overlapping the
//     collider's bounds translated by the (possibly clipped) motion.
//  3. Each non-trigger neighbor runs the exact shape test; every hit's MTV
//     backs the motion off, and every non-nil hit overwrites the reported
//     result. With several simultaneous hits the last one processed is the
//     one reported even though the motion accounts for all of them.
//  4. If the raycast did not fire but the collider already overlaps
//     something, the raycast runs once more against the corrected motion
//     and zeroes it on a hit. This is a fallback for starting inside an
//     obstruction.
//
// A body with no colliders or no trigger dispatcher cannot collide: the
// motion is left untouched and the zero Result is returned.
func (b *Body) CalculateMovement(motion *dmath.Vec2) (Result, bool) {
	var result Result
	if motion == nil || b.space == nil || b.triggers == nil || len(b.colliders) == 0 {
		return result, false
	}

	list := acquireColliderList()
	defer releaseColliderList(list)
	list.items = append(list.items, b.colliders...)

	for _, c := range list.items {
		if c.IsTrigger() {
			continue
		}

		original := *motion
		origin := c.AbsolutePosition()
		raycastHit := false

		if isPlaced(origin) {
			dest := dmath.Vec2{X: origin.X + motion.X, Y: origin.Y + motion.Y}
			if hit, ok := b.space.Raycast(origin, dest, c); ok {
				raycastHit = true
				motion.X = hit.Point.X - origin.X
				motion.Y = hit.Point.Y - origin.Y
				result = Result{
					Collider: hit.Collider,
					MTV:      dmath.Vec2{X: original.X - motion.X, Y: original.Y - motion.Y},
					Normal:   hit.Normal,
					Contact:  hit.Point,
				}
			}
		}

		swept := c.Bounds().Translated(*motion)
		for _, n := range b.space.BoxcastExcludingSelf(c, swept, c.CollidesWithLayers()) {
			if n.IsTrigger() {
				continue
			}
			if res := c.CollidesWith(n, *motion); res.Colliding() {
				// The MTV points out of the obstruction, so adding it
				// backs the motion off by exactly the penetration depth.
				motion.X += res.MTV.X
				motion.Y += res.MTV.Y
				result = res
			}
		}

		if !raycastHit && c.CollidesWithAny() {
			dest := dmath.Vec2{X: origin.X + motion.X, Y: origin.Y + motion.Y}
			if _, ok := b.space.Raycast(origin, dest, c); ok {
				motion.X = 0
				motion.Y = 0
			}
		}
	}

	return result, result.Colliding()
}

// AdvancedCalculateMovement runs the swept broadphase and narrow phase for
// every non-trigger collider, appending one result per hit and returning
// the hit count. The motion shrinks by every hit's MTV in iteration order.
//
// Unlike CalculateMovement there is no raycast pre-check and no
// already-overlapping fallback: this is the cheaper contract for callers
// that want exhaustive overlap reporting instead of swept-motion accuracy.
func (b *Body) AdvancedCalculateMovement(motion *dmath.Vec2, results *[]Result) int {
	if motion == nil || b.space == nil || b.triggers == nil || len(b.colliders) == 0 {
		return 0
	}

	list := acquireColliderList()
	defer releaseColliderList(list)
	list.items = append(list.items, b.colliders...)

	count := 0
	for _, c := range list.items {
		if c.IsTrigger() {
			continue
		}
		swept := c.Bounds().Translated(*motion)
		for _, n := range b.space.BoxcastExcludingSelf(c, swept, c.CollidesWithLayers()) {
			if n.IsTrigger() {
				continue
			}
			if res := c.CollidesWith(n, *motion); res.Colliding() {
				motion.X += res.MTV.X
				motion.Y += res.MTV.Y
				if results != nil {
					*results = append(*results, res)
				}
				count++
			}
		}
	}
	return count
}

// ApplyMovement commits the motion to the body's position unconditionally
// and resyncs its colliders in the space. A zero motion is a no-op add.
func (b *Body) ApplyMovement(motion dmath.Vec2) {
	b.Pos.X += motion.X
	b.Pos.Y += motion.Y
	for _, c := range b.colliders {
		c.sync()
	}
}

// Move resolves the motion, commits the adjusted vector, and runs the
// trigger pass at the new position. The returned values are those of
// CalculateMovement: triggers never affect the motion or the outcome.
// A nil motion is a no-op, matching CalculateMovement.
func (b *Body) Move(motion *dmath.Vec2) (Result, bool) {
	if motion == nil {
		return Result{}, false
	}
	result, collided := b.CalculateMovement(motion)
	b.ApplyMovement(*motion)
	if b.triggers != nil {
		b.triggers.Update()
	}
	return result, collided
}
