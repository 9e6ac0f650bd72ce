package components

import (
	"github.com/yohamta/donburi"
)

type CheckpointData struct {
	ID        int
	Activated bool
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
