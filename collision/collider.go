package collision

import (
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Collider is a bounding shape owned by a Body. Non-trigger colliders block
// motion during resolution; trigger colliders only report overlaps through
// the TriggerDispatcher. The set of implementations is closed: Box and
// Circle, both backed by a resolv object registered in a Space.
type Collider interface {
	// Bounds returns the collider's axis-aligned bounds in world space.
	Bounds() Bounds
	// IsTrigger reports whether the collider only detects overlaps and
	// never blocks motion.
	IsTrigger() bool
	// Layer returns the collision group the collider belongs to.
	Layer() Layer
	// CollidesWithLayers returns the mask of groups the collider scans for.
	CollidesWithLayers() Layer
	// AbsolutePosition returns the collider's world-space anchor. Both
	// components are NaN while the owning body is not yet placed.
	AbsolutePosition() dmath.Vec2
	// CollidesWithAny reports whether the collider's bounds currently
	// overlap any non-trigger collider it can collide with.
	CollidesWithAny() bool
	// CollidesWith runs the exact shape-vs-shape test against another
	// collider, displaced by motion. The zero Result means no contact.
	CollidesWith(other Collider, motion dmath.Vec2) Result
	// Owner returns the body the collider is attached to, nil before
	// attachment.
	Owner() *Body

	attach(owner *Body, space SpatialQuerier)
	object() *resolv.Object
	shape() resolv.IShape
	sync()
}

type colliderBase struct {
	self    Collider
	owner   *Body
	space   SpatialQuerier
	obj     *resolv.Object
	shp     resolv.IShape
	offset  dmath.Vec2
	trigger bool
	layer   Layer
	mask    Layer
}

func (c *colliderBase) IsTrigger() bool           { return c.trigger }
func (c *colliderBase) SetTrigger(trigger bool)   { c.trigger = trigger }
func (c *colliderBase) Layer() Layer              { return c.layer }
func (c *colliderBase) CollidesWithLayers() Layer { return c.mask }
func (c *colliderBase) Offset() dmath.Vec2        { return c.offset }
func (c *colliderBase) SetOffset(offset dmath.Vec2) {
	c.offset = offset
}

// SetLayers assigns the collider's own group and the mask it scans for.
func (c *colliderBase) SetLayers(layer, mask Layer) {
	c.layer = layer
	c.mask = mask
}

func (c *colliderBase) attach(owner *Body, space SpatialQuerier) {
	c.owner = owner
	c.space = space
}

func (c *colliderBase) Owner() *Body           { return c.owner }
func (c *colliderBase) object() *resolv.Object { return c.obj }
func (c *colliderBase) shape() resolv.IShape   { return c.shp }

func (c *colliderBase) CollidesWith(other Collider, motion dmath.Vec2) Result {
	// Intersection rescales the MTV when handed a displacement, so it is
	// no longer the separation vector the resolver needs. Displace the
	// shape instead and test in place; the zero-delta path returns the
	// plain MTV between the displaced shape and the neighbor.
	x, y := c.shp.Position()
	c.shp.SetPosition(x+motion.X, y+motion.Y)
	contact := c.shp.Intersection(0, 0, other.shape())
	c.shp.SetPosition(x, y)
	if contact == nil {
		return Result{}
	}
	mtv := toVec2(contact.MTV)
	return Result{
		Collider: other,
		MTV:      mtv,
		Normal:   normalized(mtv),
		Contact:  toVec2(contact.Center),
	}
}

func (c *colliderBase) CollidesWithAny() bool {
	if c.space == nil {
		return false
	}
	bounds := c.self.Bounds()
	if !isPlaced(dmath.Vec2{X: bounds.X, Y: bounds.Y}) {
		return false
	}
	for _, n := range c.space.BoxcastExcludingSelf(c.self, bounds, c.mask) {
		if n.IsTrigger() {
			continue
		}
		// Shape intersection is edge-based and reports nothing when one
		// shape fully contains the other, so overlap is confirmed on
		// bounds instead.
		if bounds.Overlaps(n.Bounds()) {
			return true
		}
	}
	return false
}

// Box is an axis-aligned rectangular collider. Its offset is the
// top-left corner relative to the owning body's position.
type Box struct {
	colliderBase
	w, h float64
}

// NewBox creates a box collider of the given size. Layers default to
// LayerAll until SetLayers is called.
func NewBox(w, h float64) *Box {
	b := &Box{w: w, h: h}
	b.self = b
	b.layer = LayerAll
	b.mask = LayerAll
	b.obj = resolv.NewObject(0, 0, w, h)
	b.shp = resolv.NewRectangle(0, 0, w, h)
	b.obj.SetShape(b.shp)
	b.obj.Data = b
	return b
}

func (b *Box) Size() (w, h float64) { return b.w, b.h }

// AbsolutePosition returns the box center in world space.
func (b *Box) AbsolutePosition() dmath.Vec2 {
	if b.owner == nil {
		return unplacedPosition()
	}
	return dmath.Vec2{
		X: b.owner.Pos.X + b.offset.X + b.w/2,
		Y: b.owner.Pos.Y + b.offset.Y + b.h/2,
	}
}

func (b *Box) Bounds() Bounds {
	if b.owner == nil {
		return Bounds{X: nan(), Y: nan(), W: b.w, H: b.h}
	}
	return Bounds{
		X: b.owner.Pos.X + b.offset.X,
		Y: b.owner.Pos.Y + b.offset.Y,
		W: b.w,
		H: b.h,
	}
}

func (b *Box) sync() {
	bounds := b.Bounds()
	if !isPlaced(dmath.Vec2{X: bounds.X, Y: bounds.Y}) {
		return
	}
	b.obj.X = bounds.X
	b.obj.Y = bounds.Y
	if b.obj.Space != nil {
		b.obj.Update()
	}
	b.shp.SetPosition(bounds.X, bounds.Y)
}

// Circle is a circular collider. Its offset is the circle center relative
// to the owning body's position.
type Circle struct {
	colliderBase
	radius float64
}

// NewCircle creates a circle collider of the given radius.
func NewCircle(radius float64) *Circle {
	c := &Circle{radius: radius}
	c.self = c
	c.layer = LayerAll
	c.mask = LayerAll
	c.obj = resolv.NewObject(0, 0, radius*2, radius*2)
	c.shp = resolv.NewCircle(0, 0, radius)
	c.obj.SetShape(c.shp)
	c.obj.Data = c
	return c
}

func (c *Circle) Radius() float64 { return c.radius }

// AbsolutePosition returns the circle center in world space.
func (c *Circle) AbsolutePosition() dmath.Vec2 {
	if c.owner == nil {
		return unplacedPosition()
	}
	return dmath.Vec2{
		X: c.owner.Pos.X + c.offset.X,
		Y: c.owner.Pos.Y + c.offset.Y,
	}
}

func (c *Circle) Bounds() Bounds {
	center := c.AbsolutePosition()
	return Bounds{
		X: center.X - c.radius,
		Y: center.Y - c.radius,
		W: c.radius * 2,
		H: c.radius * 2,
	}
}

func (c *Circle) sync() {
	center := c.AbsolutePosition()
	if !isPlaced(center) {
		return
	}
	c.obj.X = center.X - c.radius
	c.obj.Y = center.Y - c.radius
	if c.obj.Space != nil {
		c.obj.Update()
	}
	// Object.Update anchors the shape at the object's top-left corner;
	// the circle shape is positioned by its center.
	c.shp.SetPosition(center.X, center.Y)
}
