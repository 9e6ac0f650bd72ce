package collision

import (
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// fakeCollider scripts narrow-phase outcomes so resolver behavior can be
// tested without real geometry.
type fakeCollider struct {
	name        string
	trigger     bool
	layer       Layer
	mask        Layer
	position    dmath.Vec2
	bounds      Bounds
	overlapping bool
	owner       *Body

	// hit, when set, is returned from CollidesWith for any neighbor.
	hit func(other Collider, motion dmath.Vec2) Result
}

func newFakeCollider(name string) *fakeCollider {
	return &fakeCollider{name: name, layer: LayerAll, mask: LayerAll}
}

func (f *fakeCollider) Bounds() Bounds                   { return f.bounds }
func (f *fakeCollider) IsTrigger() bool                  { return f.trigger }
func (f *fakeCollider) Layer() Layer                     { return f.layer }
func (f *fakeCollider) CollidesWithLayers() Layer        { return f.mask }
func (f *fakeCollider) AbsolutePosition() dmath.Vec2     { return f.position }
func (f *fakeCollider) CollidesWithAny() bool            { return f.overlapping }
func (f *fakeCollider) attach(b *Body, _ SpatialQuerier) { f.owner = b }
func (f *fakeCollider) Owner() *Body                     { return f.owner }
func (f *fakeCollider) object() *resolv.Object           { return nil }
func (f *fakeCollider) shape() resolv.IShape             { return nil }
func (f *fakeCollider) sync()                            {}

func (f *fakeCollider) CollidesWith(other Collider, motion dmath.Vec2) Result {
	if f.hit == nil {
		return Result{}
	}
	return f.hit(other, motion)
}

// fakeSpace scripts broadphase and raycast answers per collider.
type fakeSpace struct {
	neighbors map[Collider][]Collider
	raycast   func(origin, dest dmath.Vec2, exclude Collider) (RaycastHit, bool)

	boxcasts int
	raycasts int
}

func newFakeSpace() *fakeSpace {
	return &fakeSpace{neighbors: map[Collider][]Collider{}}
}

func (f *fakeSpace) BoxcastExcludingSelf(c Collider, bounds Bounds, mask Layer) []Collider {
	f.boxcasts++
	out := make([]Collider, 0, len(f.neighbors[c]))
	for _, n := range f.neighbors[c] {
		if n != c && mask.Matches(n.Layer()) {
			out = append(out, n)
		}
	}
	return out
}

func (f *fakeSpace) Raycast(origin, dest dmath.Vec2, exclude Collider) (RaycastHit, bool) {
	f.raycasts++
	if f.raycast == nil {
		return RaycastHit{}, false
	}
	return f.raycast(origin, dest, exclude)
}

func (f *fakeSpace) Add(c Collider)    {}
func (f *fakeSpace) Remove(c Collider) {}

// recordingListener captures trigger notifications in order.
type recordingListener struct {
	entered []triggerPair
	stayed  []triggerPair
	exited  []triggerPair
}

func (r *recordingListener) OnTriggerEnter(own, other Collider) {
	r.entered = append(r.entered, triggerPair{own, other})
}

func (r *recordingListener) OnTriggerStay(own, other Collider) {
	r.stayed = append(r.stayed, triggerPair{own, other})
}

func (r *recordingListener) OnTriggerExit(own, other Collider) {
	r.exited = append(r.exited, triggerPair{own, other})
}
