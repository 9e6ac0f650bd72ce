package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowblade/skirmish/components"
	"github.com/hollowblade/skirmish/fonts"
)

const (
	hudMargin  = 10
	hudLineTop = 22
)

// DrawHUD renders the checkpoint counter in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Current
	if level == nil {
		return
	}

	line := fmt.Sprintf("Checkpoints %d/%d", player.CheckpointsHit, len(level.Checkpoints))

	if face := fonts.HUD.Get(); face != nil {
		text.Draw(screen, line, face, hudMargin, hudLineTop, color.White)
		return
	}
	ebitenutil.DebugPrintAt(screen, line, hudMargin, hudMargin)
}
