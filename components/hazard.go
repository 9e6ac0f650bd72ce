package components

import (
	"github.com/yohamta/donburi"
)

// HazardData marks a zone that respawns the player at their last safe
// position when entered.
type HazardData struct{}

var Hazard = donburi.NewComponentType[HazardData]()
