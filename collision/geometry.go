package collision

import (
	"math"

	"github.com/kvartborg/vector"
	dmath "github.com/yohamta/donburi/features/math"
)

// Bounds is an axis-aligned region in world space.
type Bounds struct {
	X, Y, W, H float64
}

// Translated returns the bounds shifted along a motion vector. Used to
// project the swept region a moving collider can touch.
func (b Bounds) Translated(motion dmath.Vec2) Bounds {
	return Bounds{X: b.X + motion.X, Y: b.Y + motion.Y, W: b.W, H: b.H}
}

// Overlaps reports whether two bounds intersect.
func (b Bounds) Overlaps(other Bounds) bool {
	return b.X < other.X+other.W && b.X+b.W > other.X &&
		b.Y < other.Y+other.H && b.Y+b.H > other.Y
}

// union returns the smallest bounds containing both. The raycast uses this
// to cover a segment's extent.
func (b Bounds) union(other Bounds) Bounds {
	minX := math.Min(b.X, other.X)
	minY := math.Min(b.Y, other.Y)
	maxX := math.Max(b.X+b.W, other.X+other.W)
	maxY := math.Max(b.Y+b.H, other.Y+other.H)
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func toVec2(v vector.Vector) dmath.Vec2 {
	if len(v) < 2 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: v.X(), Y: v.Y()}
}

func magnitude(v dmath.Vec2) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func normalized(v dmath.Vec2) dmath.Vec2 {
	mag := magnitude(v)
	if mag == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: v.X / mag, Y: v.Y / mag}
}

func distanceSq(a, b dmath.Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func isPlaced(pos dmath.Vec2) bool {
	return !math.IsNaN(pos.X) && !math.IsNaN(pos.Y)
}

func nan() float64 {
	return math.NaN()
}

// unplacedPosition marks a collider that has no spatial placement yet.
func unplacedPosition() dmath.Vec2 {
	return dmath.Vec2{X: nan(), Y: nan()}
}
