package components

import (
	"github.com/yohamta/donburi"
)

// PlatformData describes a floating platform's vertical path. The tween
// component supplies the current offset along it.
type PlatformData struct {
	OriginX float64
	OriginY float64
}

var Platform = donburi.NewComponentType[PlatformData]()
