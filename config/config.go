package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// GameConfig contains window and world configuration values
type GameConfig struct {
	Width  int
	Height int
	Title  string

	// Cell size of the collision space grid
	CellSize int

	// Path to the HUD font, loaded at startup when present
	FontPath string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	JumpSpeed    float64
	Acceleration float64
	MaxSpeed     float64
	Gravity      float64
	Friction     float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// CameraConfig controls player following behaviour
type CameraConfig struct {
	FollowSmoothing     float64
	LookAheadDistanceX  float64
	LookAheadSmoothing  float64
	LookAheadSpeedLimit float64
}

// ParticlesConfig sizes the pooled burst system
type ParticlesConfig struct {
	PoolSize      int
	BurstCount    int
	BurstLifetime int
	BurstSpeed    float64
}

// DebugConfig toggles development aids
type DebugConfig struct {
	DrawColliders bool
}

var C = GameConfig{
	Width:    960,
	Height:   540,
	Title:    "skirmish",
	CellSize: 16,
	FontPath: "assets/fonts/hud.ttf",
}

var Player = PlayerConfig{
	JumpSpeed:       -7.5,
	Acceleration:    0.6,
	MaxSpeed:        4.0,
	Gravity:         0.35,
	Friction:        0.4,
	CollisionWidth:  14,
	CollisionHeight: 20,
}

var Camera = CameraConfig{
	FollowSmoothing:     0.08,
	LookAheadDistanceX:  48,
	LookAheadSmoothing:  0.1,
	LookAheadSpeedLimit: 0.5,
}

var Particles = ParticlesConfig{
	PoolSize:      512,
	BurstCount:    24,
	BurstLifetime: 30,
	BurstSpeed:    3.0,
}

var Debug = DebugConfig{}

// MaxFallSpeed caps downward velocity so fast falls cannot tunnel past
// thin geometry between steps.
const MaxFallSpeed = 12.0
