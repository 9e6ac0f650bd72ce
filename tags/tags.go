package tags

import (
	"github.com/yohamta/donburi"

	"github.com/hollowblade/skirmish/collision"
)

var (
	Player           = donburi.NewTag().SetName("Player")
	Wall             = donburi.NewTag().SetName("Wall")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Checkpoint       = donburi.NewTag().SetName("Checkpoint")
	Hazard           = donburi.NewTag().SetName("Hazard")
)

// Collision layers. Level geometry lives on LayerWorld, moving actors on
// LayerActors, checkpoint and hazard zones on LayerZones.
const (
	LayerWorld  collision.Layer = 1 << 0
	LayerActors collision.Layer = 1 << 1
	LayerZones  collision.Layer = 1 << 2
)
