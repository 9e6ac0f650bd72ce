package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// Particle is one pooled burst particle. Particles live in a fixed slab
// and are recycled through a free list, so steady-state emission never
// allocates.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Color  color.RGBA
	next   int
}

// ParticlesData is the world's particle slab.
type ParticlesData struct {
	slab []Particle
	free int // head of the free list, -1 when exhausted
	live []int
}

var Particles = donburi.NewComponentType[ParticlesData]()

// Init sizes the slab and links the free list. A non-positive capacity
// leaves the pool empty and every Spawn returns nil.
func (p *ParticlesData) Init(capacity int) {
	p.live = p.live[:0]
	p.free = -1
	if capacity <= 0 {
		p.slab = nil
		return
	}
	p.slab = make([]Particle, capacity)
	for i := range p.slab {
		p.slab[i].next = i + 1
	}
	p.slab[capacity-1].next = -1
	p.free = 0
}

// Spawn takes a particle from the free list. Returns nil when the slab is
// exhausted; emission is best-effort.
func (p *ParticlesData) Spawn() *Particle {
	if p.free < 0 {
		return nil
	}
	idx := p.free
	p.free = p.slab[idx].next
	p.live = append(p.live, idx)
	return &p.slab[idx]
}

// Each visits every live particle, releasing the ones whose life has run
// out back to the free list.
func (p *ParticlesData) Each(fn func(pt *Particle)) {
	kept := p.live[:0]
	for _, idx := range p.live {
		pt := &p.slab[idx]
		if pt.Life <= 0 {
			pt.next = p.free
			p.free = idx
			continue
		}
		fn(pt)
		kept = append(kept, idx)
	}
	p.live = kept
}

// LiveCount reports how many particles are currently active.
func (p *ParticlesData) LiveCount() int { return len(p.live) }
