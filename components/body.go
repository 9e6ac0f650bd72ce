package components

import (
	"github.com/yohamta/donburi"

	"github.com/hollowblade/skirmish/collision"
)

type BodyData struct {
	*collision.Body
}

var Body = donburi.NewComponentType[BodyData]()
