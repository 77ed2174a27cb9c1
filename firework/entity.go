package firework

import (
	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/render"
)

// Entity is the capability set shared by particles, trails, and rockets.
// Owners prune children through Alive; no entity removes itself.
type Entity interface {
	// Update advances physics and lifecycle for one frame
	Update(clock *core.Clock)

	// Render draws the entity into the buffer at the given
	// clock-elapsed time
	Render(buf *render.RenderBuffer, now float64)

	// Alive reports whether the owner should keep this entity.
	// For a plain particle this is remaining lifetime > 0; a trail
	// stays alive until its children tree is exhausted.
	Alive(now float64) bool
}
