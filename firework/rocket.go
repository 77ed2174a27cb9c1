package firework

import (
	"math/rand"

	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/vmath"
)

// Rocket is a trail that detects its apex and replaces its ascent with
// an explosion burst. After exploding it is inert for physics but keeps
// rendering and aging its children tree until every descendant expires.
type Rocket struct {
	Trail

	explosionFactory ExplosionFactory
	exploded         bool
}

// NewRocket creates a rocket born at the given clock-elapsed time with
// the default lifetime cap
func NewRocket(position, velocity vmath.Vec2, childFactory ChildFactory, explosionFactory ExplosionFactory, rng *rand.Rand, now float64) (*Rocket, error) {
	t, err := NewTrail(position, velocity, parameter.RocketDefaultLifetime.Seconds(), parameter.RocketMass, childFactory, rng, now)
	if err != nil {
		return nil, err
	}
	t.Radius = parameter.RocketRadius
	return &Rocket{
		Trail:            *t,
		explosionFactory: explosionFactory,
	}, nil
}

// Exploded reports whether the burst has fired
func (r *Rocket) Exploded() bool {
	return r.exploded
}

// Update checks the apex trigger before the regular trail update.
// The rocket explodes on the first frame where it is still alive and no
// longer moving upward; the burst fires exactly once per rocket.
func (r *Rocket) Update(clock *core.Clock) {
	now := clock.Elapsed

	if !r.exploded && r.Remaining(now) > 0 && r.Velocity.Y >= 0 {
		r.explode(now)
	}

	r.Trail.Update(clock)
}

// explode injects the burst into the rocket's own children and forces
// the lifetime to zero so the child factory stops and physics freeze
func (r *Rocket) explode(now float64) {
	if burst := r.explosionFactory(r.snapshot(now), r.rng); len(burst) > 0 {
		r.children = append(r.children, burst...)
		r.spawned = true
	}
	r.Lifetime = 0
	r.exploded = true
}
