package levels

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArena(t *testing.T) {
	level, err := Load(os.DirFS("testdata"), "arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, "arena", level.Name)
	assert.Equal(t, 640, level.Width)
	assert.Equal(t, 240, level.Height)

	// Two ground rows minus the four-tile pit, one ledge, one wall column.
	assert.Len(t, level.Walls, 2*(40-4)+5+4)
	require.Len(t, level.Spawns, 1)
	assert.Equal(t, 48.0, level.Spawns[0].X)
	assert.Equal(t, 0, level.Spawns[0].Index)

	require.Len(t, level.Checkpoints, 2)
	assert.Equal(t, 1, level.Checkpoints[0].ID)
	assert.Equal(t, 2, level.Checkpoints[1].ID)
	assert.Equal(t, 32.0, level.Checkpoints[0].W)

	require.Len(t, level.Hazards, 1)
	assert.Equal(t, Rect{X: 320, Y: 224, W: 64, H: 16}, level.Hazards[0])

	require.Len(t, level.Platforms, 1)
	assert.Equal(t, 96.0, level.Platforms[0].Travel)
	assert.Equal(t, 2.0, level.Platforms[0].Duration)
}

func TestLoadAllSortsByName(t *testing.T) {
	levels, err := LoadAll(os.DirFS("."), "testdata")
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, "arena", levels[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(os.DirFS("testdata"), "nope.tmx")
	assert.Error(t, err)
}
