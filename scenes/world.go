package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowblade/skirmish/components"
	cfg "github.com/hollowblade/skirmish/config"
	"github.com/hollowblade/skirmish/systems"
	"github.com/hollowblade/skirmish/systems/factory"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene runs the playable level.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdatePlatforms)
	ecs.AddSystem(systems.UpdateParticles)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ws.ecs = ecs

	// Create the level entity and load level data first.
	levelEntry := factory.CreateLevel(ws.ecs)
	level := components.Level.Get(levelEntry).Current

	// Now create the space for collision detection using the level's
	// dimensions.
	factory.CreateSpace(ws.ecs, level.Width, level.Height, cfg.C.CellSize, cfg.C.CellSize)

	factory.CreateCamera(ws.ecs)
	factory.CreateParticles(ws.ecs)

	for _, wall := range level.Walls {
		factory.CreateWall(ws.ecs, wall.X, wall.Y, wall.W, wall.H)
	}
	for _, zone := range level.Checkpoints {
		factory.CreateCheckpoint(ws.ecs, zone)
	}
	for _, hazard := range level.Hazards {
		factory.CreateHazard(ws.ecs, hazard)
	}
	for _, path := range level.Platforms {
		factory.CreateFloatingPlatform(ws.ecs, path)
	}

	if len(level.Spawns) == 0 {
		panic("no player spawn points defined in map")
	}
	spawn := level.Spawns[0]
	player := factory.CreatePlayer(ws.ecs, spawn.X, spawn.Y)

	// Route checkpoint and hazard overlaps to the gameplay handlers.
	body := components.Body.Get(player)
	body.Triggers().AddListener(&systems.PlayerZoneListener{ECS: ws.ecs})

	if saved, err := systems.LoadProgress(); err == nil && saved != nil {
		cfg.Debug.DrawColliders = saved.DrawColliders
	}
}
