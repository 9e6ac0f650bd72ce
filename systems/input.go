package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowblade/skirmish/components"
	cfg "github.com/hollowblade/skirmish/config"
)

// UpdateInput polls raw keyboard state into every InputData component.
// Must run before UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		input := components.Input.Get(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					input.Current[actionID] = true
					break
				}
			}
		}
	})
}
