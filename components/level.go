package components

import (
	"github.com/yohamta/donburi"

	"github.com/hollowblade/skirmish/levels"
)

type LevelData struct {
	Current *levels.Level
}

var Level = donburi.NewComponentType[LevelData]()
