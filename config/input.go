package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionRespawn
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input = InputConfig{
	Bindings: map[ActionID]InputBinding{
		ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}},
		ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}},
		ActionJump:        {Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW}},
		ActionRespawn:     {Keys: []ebiten.Key{ebiten.KeyR}},
		ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF1}},
	},
}
