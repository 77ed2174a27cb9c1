package firework

import (
	"math/rand"

	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// Snapshot captures a parent's state at spawn time. Factories receive a
// value copy instead of a back-reference to the live entity.
type Snapshot struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Now      float64
}

// ChildFactory produces one new child for a trail each update.
// Pure with respect to simulation state: reads the snapshot and RNG only;
// the caller appends the result. May return nil to skip a frame.
type ChildFactory func(parent Snapshot, rng *rand.Rand) Entity

// ExplosionFactory produces the burst injected into an exploding rocket's
// own children collection
type ExplosionFactory func(parent Snapshot, rng *rand.Rand) []Entity

// Trail is a particle that owns a growing and shrinking collection of
// child entities. The trail head itself is never drawn; rendering is the
// recursive rendering of its children.
type Trail struct {
	Particle

	factory  ChildFactory
	rng      *rand.Rand
	children []Entity

	// spawned records that at least one child was ever produced, so an
	// exhausted children list means death rather than not-started-yet
	spawned bool
	alive   bool
}

// NewTrail creates a trail born at the given clock-elapsed time.
// Fails with ErrInvalidLifetime when lifetime <= 0.
func NewTrail(position, velocity vmath.Vec2, lifetime, mass float64, factory ChildFactory, rng *rand.Rand, now float64) (*Trail, error) {
	p, err := NewParticle(position, velocity, render.RGBBlack, 0, lifetime, mass, now)
	if err != nil {
		return nil, err
	}
	return &Trail{
		Particle: *p,
		factory:  factory,
		rng:      rng,
		alive:    true,
	}, nil
}

// Alive reports the trail lifecycle flag. It transitions true to false
// exactly once and never back.
func (t *Trail) Alive(now float64) bool {
	return t.alive
}

// snapshot copies the trail's live state for factory consumption
func (t *Trail) snapshot(now float64) Snapshot {
	return Snapshot{
		Position: t.Position.Clone(),
		Velocity: t.Velocity.Clone(),
		Now:      now,
	}
}

// Update integrates the trail's own physics, spawns one child while the
// trail lives, prunes expired children, then updates the survivors in
// insertion order
func (t *Trail) Update(clock *core.Clock) {
	t.Particle.Update(clock)

	now := clock.Elapsed

	if t.alive && t.Remaining(now) > 0 && t.factory != nil {
		if child := t.factory(t.snapshot(now), t.rng); child != nil {
			t.children = append(t.children, child)
			t.spawned = true
		}
	}

	live := t.children[:0]
	for _, c := range t.children {
		if c.Alive(now) {
			live = append(live, c)
		}
	}
	t.children = live

	if len(t.children) == 0 && (t.spawned || t.Remaining(now) == 0) {
		t.alive = false
	}

	for _, c := range t.children {
		c.Update(clock)
	}
}

// Render delegates purely to children; the trail head draws nothing
func (t *Trail) Render(buf *render.RenderBuffer, now float64) {
	for _, c := range t.children {
		c.Render(buf, now)
	}
}
