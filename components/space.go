package components

import (
	"github.com/yohamta/donburi"

	"github.com/hollowblade/skirmish/collision"
)

type SpaceData struct {
	*collision.Space
}

var Space = donburi.NewComponentType[SpaceData]()
