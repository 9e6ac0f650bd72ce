package collision

// TriggerListener receives overlap notifications for a body's colliders.
// Own is the body's collider involved in the overlap, other the collider
// it overlaps.
type TriggerListener interface {
	OnTriggerEnter(own, other Collider)
	OnTriggerStay(own, other Collider)
	OnTriggerExit(own, other Collider)
}

type triggerPair struct {
	own   Collider
	other Collider
}

// TriggerDispatcher tracks which collider pairs involving a body overlap
// from frame to frame and fires enter/stay/exit notifications. It is the
// only part of the movement path that carries state between calls.
type TriggerDispatcher struct {
	body      *Body
	listeners []TriggerListener
	previous  map[triggerPair]struct{}
	current   map[triggerPair]struct{}
}

func newTriggerDispatcher(body *Body) *TriggerDispatcher {
	return &TriggerDispatcher{
		body:     body,
		previous: map[triggerPair]struct{}{},
		current:  map[triggerPair]struct{}{},
	}
}

// AddListener registers a listener for the body's trigger events.
func (d *TriggerDispatcher) AddListener(l TriggerListener) {
	d.listeners = append(d.listeners, l)
}

// Update re-evaluates overlap state for all of the body's colliders,
// trigger and non-trigger alike, at the body's current position. A pair
// participates when at least one side is flagged as a trigger; overlaps
// between two solid colliders are the resolver's business, not ours.
func (d *TriggerDispatcher) Update() {
	for k := range d.current {
		delete(d.current, k)
	}

	for _, own := range d.body.colliders {
		bounds := own.Bounds()
		for _, other := range d.body.space.BoxcastExcludingSelf(own, bounds, own.CollidesWithLayers()) {
			if other.Owner() == d.body {
				continue
			}
			if !own.IsTrigger() && !other.IsTrigger() {
				continue
			}
			// Bounds overlap rather than shape intersection: the edge
			// test reports nothing when a body sits fully inside a
			// zone, which is the usual case for triggers.
			if !bounds.Overlaps(other.Bounds()) {
				continue
			}
			pair := triggerPair{own: own, other: other}
			d.current[pair] = struct{}{}
			if _, seen := d.previous[pair]; seen {
				d.stay(pair)
			} else {
				d.enter(pair)
			}
		}
	}

	for pair := range d.previous {
		if _, still := d.current[pair]; !still {
			d.exit(pair)
		}
	}

	d.previous, d.current = d.current, d.previous
}

func (d *TriggerDispatcher) enter(p triggerPair) {
	for _, l := range d.listeners {
		l.OnTriggerEnter(p.own, p.other)
	}
}

func (d *TriggerDispatcher) stay(p triggerPair) {
	for _, l := range d.listeners {
		l.OnTriggerStay(p.own, p.other)
	}
}

func (d *TriggerDispatcher) exit(p triggerPair) {
	for _, l := range d.listeners {
		l.OnTriggerExit(p.own, p.other)
	}
}

func (d *TriggerDispatcher) reset() {
	d.listeners = nil
	d.previous = map[triggerPair]struct{}{}
	d.current = map[triggerPair]struct{}{}
}
