package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/yohamta/donburi/ecs"

	"github.com/hollowblade/skirmish/components"
	cfg "github.com/hollowblade/skirmish/config"
)

var (
	burstCheckpoint = color.RGBA{80, 220, 120, 255}
	burstRespawn    = color.RGBA{230, 90, 70, 255}
)

// SpawnBurst emits a radial burst of pooled particles at a world position.
// Emission is best-effort; when the pool is exhausted the burst is cut
// short.
func SpawnBurst(ecs *ecs.ECS, x, y float64, c color.RGBA) {
	entry, ok := components.Particles.First(ecs.World)
	if !ok {
		return
	}
	pool := components.Particles.Get(entry)

	for i := 0; i < cfg.Particles.BurstCount; i++ {
		pt := pool.Spawn()
		if pt == nil {
			return
		}
		angle := rand.Float64() * 2 * math.Pi
		speed := cfg.Particles.BurstSpeed * (0.4 + 0.6*rand.Float64())
		pt.X = x
		pt.Y = y
		pt.VX = math.Cos(angle) * speed
		pt.VY = math.Sin(angle) * speed
		pt.Life = cfg.Particles.BurstLifetime
		pt.Color = c
	}
}

// UpdateParticles integrates live particles and retires expired ones.
func UpdateParticles(ecs *ecs.ECS) {
	entry, ok := components.Particles.First(ecs.World)
	if !ok {
		return
	}
	pool := components.Particles.Get(entry)
	pool.Each(func(pt *components.Particle) {
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.VY += 0.1
		pt.Life--
	})
}
