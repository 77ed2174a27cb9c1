package firework

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// fixedLifetimeFactory returns a child factory that spawns plain
// particles with the given lifetime and records every spawn
func fixedLifetimeFactory(lifetime float64, spawnLog *[]*Particle) ChildFactory {
	return func(parent Snapshot, rng *rand.Rand) Entity {
		p, err := NewParticle(parent.Position.Clone(), vmath.Vec2{}, render.RGB{R: 255, G: 255, B: 255}, 0.5, lifetime, 1, parent.Now)
		if err != nil {
			return nil
		}
		if spawnLog != nil {
			*spawnLog = append(*spawnLog, p)
		}
		return p
	}
}

func TestNewTrailInvalidLifetime(t *testing.T) {
	_, err := NewTrail(vmath.Vec2{}, vmath.Vec2{}, 0, 1, nil, rand.New(rand.NewSource(1)), 0)
	if err != ErrInvalidLifetime {
		t.Errorf("Expected ErrInvalidLifetime, got %v", err)
	}
}

func TestTrailSpawnsOneChildPerUpdate(t *testing.T) {
	clock, mock := testClock()
	var spawned []*Particle
	trail, err := NewTrail(vmath.Vec2{}, vmath.Vec2{}, 10, 1, fixedLifetimeFactory(5, &spawned), rand.New(rand.NewSource(1)), 0)
	if err != nil {
		t.Fatalf("NewTrail: %v", err)
	}

	for i := 1; i <= 4; i++ {
		mock.Advance(50 * time.Millisecond)
		clock.Update()
		trail.Update(clock)
		if len(spawned) != i {
			t.Fatalf("Expected %d spawned children after update %d, got %d", i, i, len(spawned))
		}
	}
}

func TestTrailPrunesExpiredChildren(t *testing.T) {
	// Children live 0.1s; updates every 0.05s. After the third update the
	// first child (age 0.10s) must be gone from the children list.
	clock, mock := testClock()
	var spawned []*Particle
	trail, err := NewTrail(vmath.Vec2{}, vmath.Vec2{}, 10, 1, fixedLifetimeFactory(0.1, &spawned), rand.New(rand.NewSource(1)), 0)
	if err != nil {
		t.Fatalf("NewTrail: %v", err)
	}

	step := func() {
		mock.Advance(50 * time.Millisecond)
		clock.Update()
		trail.Update(clock)
	}

	step() // spawn A at 0.05
	step() // spawn B at 0.10; A age 0.05, kept
	if len(trail.children) != 2 {
		t.Fatalf("Expected 2 children before pruning kicks in, got %d", len(trail.children))
	}

	step() // spawn C at 0.15; A age 0.10, pruned
	if len(trail.children) != 2 {
		t.Errorf("Expected oldest child pruned leaving 2, got %d", len(trail.children))
	}
	for _, c := range trail.children {
		if c == Entity(spawned[0]) {
			t.Errorf("Expected first spawned child to be pruned")
		}
	}

	step() // spawn D at 0.20; B age 0.10, pruned
	if len(trail.children) != 2 {
		t.Errorf("Expected steady state of 2 children, got %d", len(trail.children))
	}
}

func TestTrailAliveTransitionsExactlyOnce(t *testing.T) {
	clock, mock := testClock()
	trail, err := NewTrail(vmath.Vec2{}, vmath.Vec2{}, 0.1, 1, fixedLifetimeFactory(0.1, nil), rand.New(rand.NewSource(1)), 0)
	if err != nil {
		t.Fatalf("NewTrail: %v", err)
	}

	if !trail.Alive(0) {
		t.Fatalf("Expected fresh trail to be alive")
	}

	transitions := 0
	prev := true
	for i := 0; i < 20; i++ {
		mock.Advance(50 * time.Millisecond)
		clock.Update()
		trail.Update(clock)

		alive := trail.Alive(clock.Elapsed)
		if alive != prev {
			transitions++
			if alive {
				t.Fatalf("Expected alive to never transition back to true")
			}
		}
		prev = alive
	}

	if transitions != 1 {
		t.Errorf("Expected exactly one alive transition, got %d", transitions)
	}
	if prev {
		t.Errorf("Expected trail to be dead after children exhausted")
	}
}

func TestTrailDeadOnArrival(t *testing.T) {
	// A trail whose lifetime has already elapsed never spawns and is
	// marked dead on its first update
	clock, mock := testClock()
	var spawned []*Particle
	trail, err := NewTrail(vmath.Vec2{}, vmath.Vec2{}, 0.01, 1, fixedLifetimeFactory(1, &spawned), rand.New(rand.NewSource(1)), 0)
	if err != nil {
		t.Fatalf("NewTrail: %v", err)
	}

	mock.Advance(100 * time.Millisecond)
	clock.Update()
	trail.Update(clock)

	if len(spawned) != 0 {
		t.Errorf("Expected no children spawned, got %d", len(spawned))
	}
	if trail.Alive(clock.Elapsed) {
		t.Errorf("Expected trail dead on first update")
	}
}

func TestTrailOwnPhysicsIntegrates(t *testing.T) {
	clock, mock := testClock()
	trail, err := NewTrail(vmath.Vec2{}, vmath.Vec2{X: 10, Y: 0}, 10, 1, fixedLifetimeFactory(1, nil), rand.New(rand.NewSource(1)), 0)
	if err != nil {
		t.Fatalf("NewTrail: %v", err)
	}

	mock.Advance(100 * time.Millisecond)
	clock.Update()
	trail.Update(clock)

	if trail.Position.X <= 0 {
		t.Errorf("Expected trail head to move horizontally, got x=%v", trail.Position.X)
	}
	if trail.Velocity.Y <= 0 {
		t.Errorf("Expected gravity to pull trail head down, got vy=%v", trail.Velocity.Y)
	}
}

func TestTrailRenderDrawsChildrenOnly(t *testing.T) {
	clock, mock := testClock()

	// Factory spawns stationary bright particles at a known offset
	factory := func(parent Snapshot, rng *rand.Rand) Entity {
		p, _ := NewParticle(vmath.Vec2{X: 2.5, Y: 2.5}, vmath.Vec2{}, render.RGB{R: 200, G: 200, B: 200}, 0.5, 10, 0, parent.Now)
		return p
	}
	trail, err := NewTrail(vmath.Vec2{X: 7.5, Y: 7.5}, vmath.Vec2{}, 10, 0, factory, rand.New(rand.NewSource(1)), 0)
	if err != nil {
		t.Fatalf("NewTrail: %v", err)
	}

	mock.Advance(50 * time.Millisecond)
	clock.Update()
	trail.Update(clock)

	buf := render.NewRenderBuffer(10, 10, render.RGBBlack)
	trail.Render(buf, clock.Elapsed)

	if buf.Bg(2, 2) == render.RGBBlack {
		t.Errorf("Expected child particle to be drawn")
	}
	if buf.Bg(7, 7) != render.RGBBlack {
		t.Errorf("Expected trail head to draw nothing")
	}
}
