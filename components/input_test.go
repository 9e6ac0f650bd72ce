package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cfg "github.com/hollowblade/skirmish/config"
)

func TestInputJustPressedEdgeDetection(t *testing.T) {
	var input InputData

	input.Current[cfg.ActionJump] = true
	assert.True(t, input.Pressed(cfg.ActionJump))
	assert.True(t, input.JustPressed(cfg.ActionJump))

	// Held across a frame swap: pressed but no longer an edge.
	input.Previous = input.Current
	assert.True(t, input.Pressed(cfg.ActionJump))
	assert.False(t, input.JustPressed(cfg.ActionJump))

	// Released.
	input.Current[cfg.ActionJump] = false
	assert.False(t, input.Pressed(cfg.ActionJump))
	assert.False(t, input.JustPressed(cfg.ActionJump))
}
