package firework

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// Interface compliance
var (
	_ Entity = (*Particle)(nil)
	_ Entity = (*Trail)(nil)
	_ Entity = (*Rocket)(nil)
)

func testClock() (*core.Clock, *core.MockTimeProvider) {
	mock := core.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return core.NewClock(mock), mock
}

func mustParticle(t *testing.T, position, velocity vmath.Vec2, lifetime, mass, now float64) *Particle {
	t.Helper()
	p, err := NewParticle(position, velocity, render.RGB{R: 255, G: 255, B: 255}, 1, lifetime, mass, now)
	if err != nil {
		t.Fatalf("NewParticle: %v", err)
	}
	return p
}

func TestNewParticleInvalidLifetime(t *testing.T) {
	tests := []struct {
		name     string
		lifetime float64
	}{
		{"Zero", 0},
		{"Negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParticle(vmath.Vec2{}, vmath.Vec2{}, render.RGB{}, 1, tt.lifetime, 1, 0)
			if err != ErrInvalidLifetime {
				t.Errorf("Expected ErrInvalidLifetime, got %v", err)
			}
		})
	}
}

func TestRemainingFraction(t *testing.T) {
	p := mustParticle(t, vmath.Vec2{}, vmath.Vec2{}, 2.0, 1, 0)

	tests := []struct {
		name string
		now  float64
		want float64
	}{
		{"At birth", 0, 1},
		{"Quarter aged", 0.5, 0.75},
		{"Half aged", 1.0, 0.5},
		{"Exactly expired", 2.0, 0},
		{"Past expiry clamps", 5.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Remaining(tt.now); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected remaining %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRemainingNonIncreasing(t *testing.T) {
	p := mustParticle(t, vmath.Vec2{}, vmath.Vec2{}, 1.0, 1, 0)

	prev := p.Remaining(0)
	for now := 0.0; now < 1.5; now += 0.05 {
		got := p.Remaining(now)
		if got > prev {
			t.Fatalf("Expected remaining to be non-increasing, got %v after %v at now=%v", got, prev, now)
		}
		prev = got
	}
	if prev != 0 {
		t.Errorf("Expected remaining to clamp at exactly 0, got %v", prev)
	}
}

func TestParticleUpdateScenario(t *testing.T) {
	// lifetime=1, mass=1, velocity=(0,0), one update with delta=0.5:
	// remaining 0.5, velocity.y = 0.5*9.81, position.y = velocity.y*delta
	clock, mock := testClock()
	p := mustParticle(t, vmath.Vec2{}, vmath.Vec2{}, 1.0, 1, 0)

	mock.Advance(500 * time.Millisecond)
	clock.Update()
	p.Update(clock)

	if got := p.Remaining(clock.Elapsed); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected remaining 0.5, got %v", got)
	}
	if math.Abs(p.Velocity.Y-4.905) > 1e-9 {
		t.Errorf("Expected velocity.y 4.905, got %v", p.Velocity.Y)
	}
	if math.Abs(p.Position.Y-2.4525) > 1e-9 {
		t.Errorf("Expected position.y 2.4525, got %v", p.Position.Y)
	}
}

func TestParticlePhysicsFreezeOnExpiry(t *testing.T) {
	clock, mock := testClock()
	p := mustParticle(t, vmath.Vec2{X: 3, Y: 4}, vmath.Vec2{X: 1, Y: -2}, 0.1, 1, 0)

	// Age past the lifetime, then update
	mock.Advance(time.Second)
	clock.Update()

	posBefore := p.Position
	velBefore := p.Velocity
	p.Update(clock)

	if p.Position != posBefore {
		t.Errorf("Expected position unchanged after expiry, got %v", p.Position)
	}
	if p.Velocity != velBefore {
		t.Errorf("Expected velocity unchanged after expiry, got %v", p.Velocity)
	}
}

func TestParticleHeavierFallsFaster(t *testing.T) {
	clock, mock := testClock()
	light := mustParticle(t, vmath.Vec2{}, vmath.Vec2{}, 10, 1, 0)
	heavy := mustParticle(t, vmath.Vec2{}, vmath.Vec2{}, 10, 3, 0)

	mock.Advance(100 * time.Millisecond)
	clock.Update()
	light.Update(clock)
	heavy.Update(clock)

	if heavy.Velocity.Y <= light.Velocity.Y {
		t.Errorf("Expected heavier particle to gain more downward velocity, got light %v heavy %v",
			light.Velocity.Y, heavy.Velocity.Y)
	}
}

func TestParticleRenderExpiredDrawsNothing(t *testing.T) {
	buf := render.NewRenderBuffer(10, 10, render.RGBBlack)
	p := mustParticle(t, vmath.Vec2{X: 5, Y: 5}, vmath.Vec2{}, 0.1, 1, 0)

	p.Render(buf, 1.0)

	if buf.Bg(5, 5) != render.RGBBlack {
		t.Errorf("Expected expired particle to draw nothing")
	}
}

func TestParticleRenderFadesWithAge(t *testing.T) {
	p := mustParticle(t, vmath.Vec2{X: 5, Y: 5}, vmath.Vec2{}, 1.0, 1, 0)

	fresh := render.NewRenderBuffer(10, 10, render.RGBBlack)
	p.Render(fresh, 0)

	aged := render.NewRenderBuffer(10, 10, render.RGBBlack)
	p.Render(aged, 0.9)

	if aged.Bg(5, 5).R >= fresh.Bg(5, 5).R {
		t.Errorf("Expected aged particle to render dimmer, got fresh %v aged %v",
			fresh.Bg(5, 5), aged.Bg(5, 5))
	}
}
