package collision

import "sync"

// colliderList is a reusable buffer of collider references. Resolution
// borrows one per call and returns it before the call ends, so per-frame
// movement never allocates for the collider snapshot.
type colliderList struct {
	items []Collider
}

var colliderListPool = sync.Pool{
	New: func() interface{} {
		return &colliderList{items: make([]Collider, 0, 8)}
	},
}

func acquireColliderList() *colliderList {
	return colliderListPool.Get().(*colliderList)
}

func releaseColliderList(l *colliderList) {
	l.items = l.items[:0]
	colliderListPool.Put(l)
}
