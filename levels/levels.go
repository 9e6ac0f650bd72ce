// Package levels loads playable level geometry from Tiled TMX maps.
package levels

// Rect is a placed rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// CheckpointZone is a trigger region that records player progress.
type CheckpointZone struct {
	Rect
	ID int
}

// PlatformPath describes a floating platform and the vertical distance it
// travels from its origin.
type PlatformPath struct {
	Rect
	Travel   float64
	Duration float64
}

// SpawnPoint is a player start position.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Level is the collision-relevant content of one map.
type Level struct {
	Name   string
	Width  int
	Height int

	Walls       []Rect
	Hazards     []Rect
	Checkpoints []CheckpointZone
	Platforms   []PlatformPath
	Spawns      []SpawnPoint
}
