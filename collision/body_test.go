package collision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func blockWithMTV(mtv dmath.Vec2) func(other Collider, motion dmath.Vec2) Result {
	return func(other Collider, motion dmath.Vec2) Result {
		return Result{Collider: other, MTV: mtv, Normal: normalized(mtv)}
	}
}

func TestCalculateMovementNoObstruction(t *testing.T) {
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{X: 10, Y: 10})
	c := newFakeCollider("player")
	c.hit = blockWithMTV(dmath.Vec2{X: -1})
	body.AddCollider(c)

	motion := dmath.Vec2{X: 5, Y: -3}
	result, collided := body.CalculateMovement(&motion)

	assert.False(t, collided)
	assert.Nil(t, result.Collider)
	assert.Equal(t, dmath.Vec2{X: 5, Y: -3}, motion)
}

func TestCalculateMovementBlockingNeighbor(t *testing.T) {
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{})
	mover := newFakeCollider("mover")
	mover.hit = blockWithMTV(dmath.Vec2{X: -4})
	body.AddCollider(mover)

	wall := newFakeCollider("wall")
	space.neighbors[mover] = []Collider{wall}

	motion := dmath.Vec2{X: 10}
	result, collided := body.CalculateMovement(&motion)

	require.True(t, collided)
	assert.Same(t, wall, result.Collider)
	assert.Equal(t, dmath.Vec2{X: 6}, motion)
	assert.Equal(t, dmath.Vec2{X: -4}, result.MTV)
}

func TestCalculateMovementCumulativeWithLastResultReported(t *testing.T) {
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{})
	mover := newFakeCollider("mover")
	mover.hit = blockWithMTV(dmath.Vec2{X: -2})
	body.AddCollider(mover)

	first := newFakeCollider("first")
	second := newFakeCollider("second")
	space.neighbors[mover] = []Collider{first, second}

	motion := dmath.Vec2{X: 10}
	result, collided := body.CalculateMovement(&motion)

	require.True(t, collided)
	// Motion shrinks for every hit; the reported collider is the last
	// overwrite, not the closest hit.
	assert.Equal(t, dmath.Vec2{X: 6}, motion)
	assert.Same(t, second, result.Collider)
}

func TestCalculateMovementSkipsTriggers(t *testing.T) {
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{})

	solid := newFakeCollider("solid")
	ownTrigger := newFakeCollider("own-trigger")
	ownTrigger.trigger = true
	ownTrigger.hit = blockWithMTV(dmath.Vec2{X: -99})
	body.AddCollider(solid)
	body.AddCollider(ownTrigger)

	neighborTrigger := newFakeCollider("neighbor-trigger")
	neighborTrigger.trigger = true
	solid.hit = blockWithMTV(dmath.Vec2{X: -4})
	space.neighbors[solid] = []Collider{neighborTrigger}
	space.neighbors[ownTrigger] = []Collider{newFakeCollider("anything")}

	motion := dmath.Vec2{X: 10}
	result, collided := body.CalculateMovement(&motion)

	assert.False(t, collided)
	assert.Nil(t, result.Collider)
	assert.Equal(t, dmath.Vec2{X: 10}, motion)
}

func TestCalculateMovementRaycastClipsMotion(t *testing.T) {
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{})
	mover := newFakeCollider("mover")
	mover.position = dmath.Vec2{X: 0, Y: 0}
	body.AddCollider(mover)

	wall := newFakeCollider("wall")
	space.raycast = func(origin, dest dmath.Vec2, exclude Collider) (RaycastHit, bool) {
		return RaycastHit{Collider: wall, Point: dmath.Vec2{X: 3}, Normal: dmath.Vec2{X: -1}}, true
	}

	motion := dmath.Vec2{X: 10}
	result, collided := body.CalculateMovement(&motion)

	require.True(t, collided)
	assert.Same(t, wall, result.Collider)
	assert.Equal(t, dmath.Vec2{X: 3}, motion)
	// The pending MTV is the clipped-off remainder of the requested motion.
	assert.Equal(t, dmath.Vec2{X: 7}, result.MTV)
	assert.Equal(t, dmath.Vec2{X: 3}, result.Contact)
}

func TestCalculateMovementSkipsRaycastWhenUnplaced(t *testing.T) {
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{})
	mover := newFakeCollider("mover")
	mover.position = dmath.Vec2{X: math.NaN(), Y: math.NaN()}
	body.AddCollider(mover)

	wall := newFakeCollider("wall")
	space.neighbors[mover] = []Collider{wall}
	mover.hit = blockWithMTV(dmath.Vec2{X: -4})
	space.raycast = func(origin, dest dmath.Vec2, exclude Collider) (RaycastHit, bool) {
		t.Fatal("raycast must not run for an unplaced collider")
		return RaycastHit{}, false
	}

	motion := dmath.Vec2{X: 10}
	_, collided := body.CalculateMovement(&motion)

	// The narrow phase still runs without the raycast pre-check.
	require.True(t, collided)
	assert.Equal(t, dmath.Vec2{X: 6}, motion)
	assert.Zero(t, space.raycasts)
}

func TestCalculateMovementOverlapFallbackZeroesMotion(t *testing.T) {
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{})
	mover := newFakeCollider("mover")
	mover.overlapping = true
	body.AddCollider(mover)

	wall := newFakeCollider("wall")
	calls := 0
	space.raycast = func(origin, dest dmath.Vec2, exclude Collider) (RaycastHit, bool) {
		calls++
		if calls == 1 {
			return RaycastHit{}, false
		}
		return RaycastHit{Collider: wall, Point: origin}, true
	}

	motion := dmath.Vec2{X: 10}
	result, collided := body.CalculateMovement(&motion)

	assert.Equal(t, dmath.Vec2{}, motion)
	assert.Equal(t, 2, calls)
	// The fallback clips the motion without recording an obstruction.
	assert.False(t, collided)
	assert.Nil(t, result.Collider)
}

func TestCalculateMovementOverlapFallbackSkippedAfterRaycastHit(t *testing.T) {
	// Pins the interplay between the raycast pre-check and the
	// already-overlapping fallback: when the pre-check fires while the
	// collider starts inside an obstruction, the fallback must not run a
	// second correction.
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{})
	mover := newFakeCollider("mover")
	mover.overlapping = true
	body.AddCollider(mover)

	wall := newFakeCollider("wall")
	space.raycast = func(origin, dest dmath.Vec2, exclude Collider) (RaycastHit, bool) {
		return RaycastHit{Collider: wall, Point: dmath.Vec2{X: 2}}, true
	}

	motion := dmath.Vec2{X: 10}
	result, collided := body.CalculateMovement(&motion)

	require.True(t, collided)
	assert.Same(t, wall, result.Collider)
	assert.Equal(t, dmath.Vec2{X: 2}, motion)
	assert.Equal(t, 1, space.raycasts)
}

func TestCalculateMovementNoCollidersOrDispatcher(t *testing.T) {
	space := newFakeSpace()

	empty := NewBody(space, dmath.Vec2{})
	motion := dmath.Vec2{X: 4, Y: 4}
	result, collided := empty.CalculateMovement(&motion)
	assert.False(t, collided)
	assert.Nil(t, result.Collider)
	assert.Equal(t, dmath.Vec2{X: 4, Y: 4}, motion)

	detached := NewBody(nil, dmath.Vec2{})
	detached.AddCollider(newFakeCollider("c"))
	motion = dmath.Vec2{X: 4, Y: 4}
	_, collided = detached.CalculateMovement(&motion)
	assert.False(t, collided)
	assert.Equal(t, dmath.Vec2{X: 4, Y: 4}, motion)
}

func TestCalculateMovementIdempotent(t *testing.T) {
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{})
	mover := newFakeCollider("mover")
	mover.hit = blockWithMTV(dmath.Vec2{X: -4, Y: 1})
	body.AddCollider(mover)
	space.neighbors[mover] = []Collider{newFakeCollider("wall")}

	motionA := dmath.Vec2{X: 10, Y: -2}
	resultA, collidedA := body.CalculateMovement(&motionA)

	motionB := dmath.Vec2{X: 10, Y: -2}
	resultB, collidedB := body.CalculateMovement(&motionB)

	assert.Equal(t, collidedA, collidedB)
	assert.Equal(t, motionA, motionB)
	assert.Equal(t, resultA, resultB)
}

func TestAdvancedCalculateMovementCollectsEveryHit(t *testing.T) {
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{})
	mover := newFakeCollider("mover")
	mover.hit = blockWithMTV(dmath.Vec2{X: -2})
	body.AddCollider(mover)

	trigger := newFakeCollider("trigger")
	trigger.trigger = true
	space.neighbors[mover] = []Collider{
		newFakeCollider("a"),
		trigger,
		newFakeCollider("b"),
		newFakeCollider("c"),
	}

	motion := dmath.Vec2{X: 10}
	var results []Result
	count := body.AdvancedCalculateMovement(&motion, &results)

	assert.Equal(t, 3, count)
	assert.Len(t, results, 3)
	assert.Equal(t, dmath.Vec2{X: 4}, motion)
	for _, r := range results {
		assert.False(t, r.Collider.IsTrigger())
	}
	// No raycast clipping in the exhaustive variant.
	assert.Zero(t, space.raycasts)
}

func TestApplyMovementCommitsUnconditionally(t *testing.T) {
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{X: 100, Y: 50})

	body.ApplyMovement(dmath.Vec2{X: 6, Y: -1})
	assert.Equal(t, dmath.Vec2{X: 106, Y: 49}, body.Pos)

	body.ApplyMovement(dmath.Vec2{})
	assert.Equal(t, dmath.Vec2{X: 106, Y: 49}, body.Pos)
}

func TestMoveCommitsAdjustedMotion(t *testing.T) {
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{X: 100, Y: 50})
	mover := newFakeCollider("mover")
	mover.hit = blockWithMTV(dmath.Vec2{X: -4})
	body.AddCollider(mover)
	space.neighbors[mover] = []Collider{newFakeCollider("wall")}

	motion := dmath.Vec2{X: 10}
	_, collided := body.Move(&motion)

	require.True(t, collided)
	assert.Equal(t, dmath.Vec2{X: 106, Y: 50}, body.Pos)
}

func TestMoveWithZeroCollidersCommitsFullMotion(t *testing.T) {
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{X: 1, Y: 2})

	motion := dmath.Vec2{X: 3, Y: 4}
	result, collided := body.Move(&motion)

	assert.False(t, collided)
	assert.Nil(t, result.Collider)
	assert.Equal(t, dmath.Vec2{X: 4, Y: 6}, body.Pos)
}

func TestMoveNilMotionLeavesBodyInPlace(t *testing.T) {
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{X: 5, Y: 6})
	body.AddCollider(newFakeCollider("solid"))

	result, collided := body.Move(nil)

	assert.False(t, collided)
	assert.Nil(t, result.Collider)
	assert.Equal(t, dmath.Vec2{X: 5, Y: 6}, body.Pos)
}

func TestBoxcastMaskFiltersNeighbors(t *testing.T) {
	space := newFakeSpace()
	body := NewBody(space, dmath.Vec2{})
	mover := newFakeCollider("mover")
	mover.mask = 0x1
	mover.hit = blockWithMTV(dmath.Vec2{X: -1})
	body.AddCollider(mover)

	matching := newFakeCollider("matching")
	matching.layer = 0x1
	ignored := newFakeCollider("ignored")
	ignored.layer = 0x2
	space.neighbors[mover] = []Collider{matching, ignored}

	motion := dmath.Vec2{X: 10}
	var results []Result
	count := body.AdvancedCalculateMovement(&motion, &results)

	require.Equal(t, 1, count)
	assert.Same(t, matching, results[0].Collider)
}
