package collision

import (
	"math"

	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpatialQuerier answers region and segment queries against the world's
// colliders. The motion resolver only depends on this interface; Space is
// the production implementation. Lifecycle of the provider is owned by the
// world container, never by a body.
type SpatialQuerier interface {
	// BoxcastExcludingSelf returns the colliders whose bounds overlap the
	// given region, excluding c itself, filtered by the layer mask.
	BoxcastExcludingSelf(c Collider, bounds Bounds, mask Layer) []Collider
	// Raycast casts a segment and reports the nearest non-trigger collider
	// it crosses, excluding the given collider.
	Raycast(origin, dest dmath.Vec2, exclude Collider) (RaycastHit, bool)
	// Add registers a collider with the provider.
	Add(c Collider)
	// Remove unregisters a collider.
	Remove(c Collider)
}

// Space is the broadphase spatial index, a cell grid over the level area.
type Space struct {
	space     *resolv.Space
	colliders []Collider
}

// NewSpace creates a space covering width x height world units, bucketed
// into cells of the given size.
func NewSpace(width, height, cellWidth, cellHeight int) *Space {
	return &Space{
		space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	}
}

func (s *Space) Add(c Collider) {
	s.colliders = append(s.colliders, c)
	if obj := c.object(); obj != nil {
		s.space.Add(obj)
	}
	c.sync()
}

// Colliders returns every collider registered in the space, in insertion
// order. The returned slice is the space's own; callers must not mutate it.
func (s *Space) Colliders() []Collider { return s.colliders }

func (s *Space) Remove(c Collider) {
	for i, other := range s.colliders {
		if other == c {
			s.colliders = append(s.colliders[:i], s.colliders[i+1:]...)
			break
		}
	}
	if obj := c.object(); obj != nil {
		s.space.Remove(obj)
	}
}

// BoxcastExcludingSelf runs the cell-grid query for the region, using the
// collider's registered object so the collider itself is never returned.
// A region with NaN coordinates (unplaced collider) matches nothing.
func (s *Space) BoxcastExcludingSelf(c Collider, bounds Bounds, mask Layer) []Collider {
	obj := c.object()
	if obj == nil || math.IsNaN(bounds.X) || math.IsNaN(bounds.Y) {
		return nil
	}
	check := obj.Check(bounds.X-obj.X, bounds.Y-obj.Y)
	if check == nil {
		return nil
	}
	out := make([]Collider, 0, len(check.Objects))
	for _, o := range check.Objects {
		n, ok := o.Data.(Collider)
		if !ok || n == c {
			continue
		}
		if !mask.Matches(n.Layer()) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Raycast tests the segment against every registered non-trigger collider
// whose bounds overlap the segment's extent and returns the crossing point
// nearest to the origin. Trigger colliders never obstruct a ray.
func (s *Space) Raycast(origin, dest dmath.Vec2, exclude Collider) (RaycastHit, bool) {
	if !isPlaced(origin) || !isPlaced(dest) || origin == dest {
		return RaycastHit{}, false
	}

	line := resolv.NewLine(origin.X, origin.Y, dest.X, dest.Y)

	// Pad the segment's extent so axis-aligned rays (zero width or height)
	// still pass the coarse bounds check.
	segment := Bounds{X: origin.X, Y: origin.Y}.union(Bounds{X: dest.X, Y: dest.Y})
	segment = Bounds{X: segment.X - 1, Y: segment.Y - 1, W: segment.W + 2, H: segment.H + 2}

	var best RaycastHit
	bestDist := math.Inf(1)
	found := false

	for _, c := range s.colliders {
		if c == exclude || c.IsTrigger() {
			continue
		}
		if !segment.Overlaps(c.Bounds()) {
			continue
		}
		contact := line.Intersection(0, 0, c.shape())
		if contact == nil {
			continue
		}
		for _, p := range contact.Points {
			point := toVec2(p)
			if d := distanceSq(point, origin); d < bestDist {
				bestDist = d
				best = RaycastHit{
					Collider: c,
					Point:    point,
					Normal:   normalized(toVec2(contact.MTV)),
				}
				found = true
			}
		}
	}
	return best, found
}
