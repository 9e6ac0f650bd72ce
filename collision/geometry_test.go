package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestBoundsTranslatedAndOverlaps(t *testing.T) {
	b := Bounds{X: 10, Y: 10, W: 16, H: 16}

	moved := b.Translated(dmath.Vec2{X: 4, Y: -2})
	assert.Equal(t, Bounds{X: 14, Y: 8, W: 16, H: 16}, moved)

	assert.True(t, b.Overlaps(Bounds{X: 20, Y: 20, W: 16, H: 16}))
	assert.False(t, b.Overlaps(Bounds{X: 26, Y: 10, W: 16, H: 16}))
	assert.False(t, b.Overlaps(Bounds{X: 100, Y: 100, W: 16, H: 16}))
}

func TestLayerMatches(t *testing.T) {
	assert.True(t, LayerAll.Matches(0x4))
	assert.False(t, LayerNone.Matches(LayerAll))
	assert.True(t, Layer(0x3).Matches(0x2))
	assert.False(t, Layer(0x3).Matches(0x4))
}

func TestNormalized(t *testing.T) {
	n := normalized(dmath.Vec2{X: 3, Y: 4})
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.Equal(t, dmath.Vec2{}, normalized(dmath.Vec2{}))
}

func TestColliderListPoolResets(t *testing.T) {
	l := acquireColliderList()
	l.items = append(l.items, newFakeCollider("a"), newFakeCollider("b"))
	releaseColliderList(l)

	reused := acquireColliderList()
	defer releaseColliderList(reused)
	assert.Empty(t, reused.items)
}

func TestResultZeroValueMeansNoCollision(t *testing.T) {
	var r Result
	assert.False(t, r.Colliding())
	r.Collider = newFakeCollider("hit")
	assert.True(t, r.Colliding())
}
