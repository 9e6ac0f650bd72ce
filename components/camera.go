package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   dmath.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
}

var Camera = donburi.NewComponentType[CameraData]()
