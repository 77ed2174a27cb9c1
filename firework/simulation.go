package firework

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// Simulation owns the rocket registry, the clock, and the RNG.
// One Tick equals one frame: clock update, full update pass, full render
// pass, then pruning of dead rockets. Single-threaded; launches and ticks
// must come from the same goroutine.
type Simulation struct {
	clock   *core.Clock
	rng     *rand.Rand
	rockets []*Rocket

	width  int
	height int
}

// NewSimulation creates a simulation for a surface of the given logical
// extent. The seed fixes all spawn randomness for reproducible runs.
func NewSimulation(width, height int, provider core.TimeProvider, seed int64) *Simulation {
	return &Simulation{
		clock:  core.NewClock(provider),
		rng:    rand.New(rand.NewSource(seed)),
		width:  width,
		height: height,
	}
}

// Launch appends a rocket at a random column along the bottom edge with
// an upward velocity chosen so the apex lands inside the visible area.
// There is no cap: every call grows the live-entity count.
func (s *Simulation) Launch() error {
	apex := randRange(s.rng, parameter.RocketApexMin, parameter.RocketApexMax) * float64(s.height)
	speed := math.Sqrt(2 * parameter.Gravitation * parameter.RocketMass * apex)

	position := vmath.Vec2{
		X: s.rng.Float64() * float64(s.width),
		Y: float64(s.height),
	}
	velocity := vmath.Vec2{
		X: randRange(s.rng, -parameter.RocketDriftSpeed, parameter.RocketDriftSpeed),
		Y: -speed,
	}

	rocket, err := NewRocket(position, velocity, LaunchTrail, NewExplosion(), s.rng, s.clock.Elapsed)
	if err != nil {
		return err
	}
	s.rockets = append(s.rockets, rocket)
	return nil
}

// Tick advances one frame: clock, update pass, render pass, prune
func (s *Simulation) Tick(buf *render.RenderBuffer) {
	s.clock.Update()

	for _, r := range s.rockets {
		r.Update(s.clock)
	}

	now := s.clock.Elapsed
	for _, r := range s.rockets {
		r.Render(buf, now)
	}

	live := s.rockets[:0]
	for _, r := range s.rockets {
		if r.Alive(now) {
			live = append(live, r)
		}
	}
	// Release dropped tails for GC
	for i := len(live); i < len(s.rockets); i++ {
		s.rockets[i] = nil
	}
	s.rockets = live
}

// Resize updates the logical surface extent used for launch placement.
// Entities already in flight are unaffected.
func (s *Simulation) Resize(width, height int) {
	s.width = width
	s.height = height
}

// RocketCount returns the number of live rockets
func (s *Simulation) RocketCount() int {
	return len(s.rockets)
}

// Elapsed returns seconds since simulation start as of the last Tick
func (s *Simulation) Elapsed() float64 {
	return s.clock.Elapsed
}
