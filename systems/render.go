package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowblade/skirmish/components"
	"github.com/hollowblade/skirmish/tags"
)

var (
	wallColor     = color.RGBA{90, 90, 100, 255}
	platformColor = color.RGBA{140, 110, 70, 255}
	playerColor   = color.RGBA{70, 130, 230, 255}
	zoneColor     = color.RGBA{60, 160, 90, 90}
	hazardColor   = color.RGBA{200, 60, 50, 110}
)

// cameraOffset returns the translation that maps world coordinates onto the
// screen for the current camera position.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// DrawLevel renders the static level geometry and trigger zones.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Current
	if level == nil {
		return
	}

	for _, w := range level.Walls {
		vector.DrawFilledRect(screen,
			float32(w.X+camX), float32(w.Y+camY),
			float32(w.W), float32(w.H), wallColor, false)
	}
	for _, h := range level.Hazards {
		vector.DrawFilledRect(screen,
			float32(h.X+camX), float32(h.Y+camY),
			float32(h.W), float32(h.H), hazardColor, false)
	}
	for _, c := range level.Checkpoints {
		vector.DrawFilledRect(screen,
			float32(c.X+camX), float32(c.Y+camY),
			float32(c.W), float32(c.H), zoneColor, false)
	}
}

// DrawSprites renders the moving bodies: platforms and the player.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		drawBodyRect(screen, e, camX, camY, platformColor)
	})
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawBodyRect(screen, e, camX, camY, playerColor)
	})
}

func drawBodyRect(screen *ebiten.Image, e *donburi.Entry, camX, camY float64, c color.RGBA) {
	body := components.Body.Get(e)
	for _, col := range body.Colliders() {
		b := col.Bounds()
		vector.DrawFilledRect(screen,
			float32(b.X+camX), float32(b.Y+camY),
			float32(b.W), float32(b.H), c, false)
	}
}

// DrawParticles renders the live particle pool as single pixels scaled up.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	entry, ok := components.Particles.First(ecs.World)
	if !ok {
		return
	}
	pool := components.Particles.Get(entry)
	pool.Each(func(pt *components.Particle) {
		vector.DrawFilledRect(screen,
			float32(pt.X+camX), float32(pt.Y+camY),
			2, 2, pt.Color, false)
	})
}
