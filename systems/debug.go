package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowblade/skirmish/components"
	cfg "github.com/hollowblade/skirmish/config"
	"github.com/hollowblade/skirmish/tags"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders {
		return
	}

	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	viewX := -camX
	viewY := -camY
	viewW := float64(width)
	viewH := float64(height)

	for _, col := range space.Colliders() {
		b := col.Bounds()
		// Cull colliders outside the viewport
		if b.X+b.W < viewX || b.X > viewX+viewW || b.Y+b.H < viewY || b.Y > viewY+viewH {
			continue
		}

		x := b.X + camX
		y := b.Y + camY

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case col.IsTrigger():
			c = color.RGBA{0, 255, 0, 255} // Green
		case col.Layer() == tags.LayerWorld:
			c = color.RGBA{100, 100, 100, 255} // Grey
		case col.Layer() == tags.LayerActors:
			c = color.RGBA{0, 0, 255, 255} // Blue
		}

		// Draw outline
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(b.W), 1, c, false)
		vector.DrawFilledRect(screen, float32(x), float32(y+b.H-1), float32(b.W), 1, c, false)
		vector.DrawFilledRect(screen, float32(x), float32(y), 1, float32(b.H), c, false)
		vector.DrawFilledRect(screen, float32(x+b.W-1), float32(y), 1, float32(b.H), c, false)
	}
}
