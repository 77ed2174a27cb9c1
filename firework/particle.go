package firework

import (
	"errors"

	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// ErrInvalidLifetime rejects lifetimes that would break the remaining
// fraction computation
var ErrInvalidLifetime = errors.New("firework: lifetime must be positive")

// Gravitation is the constant downward acceleration applied to every
// particle, scaled by its mass
var Gravitation = vmath.Vec2{X: 0, Y: parameter.Gravitation}

// Particle is a point mass with a fixed lifetime. It fades and shrinks
// as it ages; once expired it is inert and waits for its owner to prune it.
type Particle struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Color    render.RGB
	Radius   float64
	Lifetime float64
	Mass     float64

	// born is the clock-elapsed timestamp at spawn
	born float64
}

// NewParticle creates a particle born at the given clock-elapsed time.
// Fails with ErrInvalidLifetime when lifetime <= 0.
func NewParticle(position, velocity vmath.Vec2, color render.RGB, radius, lifetime, mass, now float64) (*Particle, error) {
	if lifetime <= 0 {
		return nil, ErrInvalidLifetime
	}
	return &Particle{
		Position: position,
		Velocity: velocity,
		Color:    color,
		Radius:   radius,
		Lifetime: lifetime,
		Mass:     mass,
		born:     now,
	}, nil
}

// Remaining returns the normalized remaining-lifetime fraction in [0, 1].
// Monotonically non-increasing under a non-decreasing clock; exactly 0
// once the particle has outlived its lifetime. A lifetime forced to 0
// (exploded rocket) reads as fully expired.
func (p *Particle) Remaining(now float64) float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	left := p.Lifetime - (now - p.born)
	if left <= 0 {
		return 0
	}
	if left >= p.Lifetime {
		return 1
	}
	return left / p.Lifetime
}

// Alive reports whether the particle still has lifetime left
func (p *Particle) Alive(now float64) bool {
	return p.Remaining(now) > 0
}

// Update integrates one frame of physics. Velocity integrates before
// position (semi-implicit Euler). Expired particles freeze.
func (p *Particle) Update(clock *core.Clock) {
	if p.Remaining(clock.Elapsed) == 0 {
		return
	}

	pull := Gravitation.Clone()
	pull.Scale(p.Mass * clock.Delta)
	p.Velocity.Add(pull)

	step := p.Velocity.Clone()
	step.Scale(clock.Delta)
	p.Position.Add(step)
}

// Render draws a filled circle that shrinks and fades with age,
// composited additively so overlapping particles brighten
func (p *Particle) Render(buf *render.RenderBuffer, now float64) {
	remaining := p.Remaining(now)
	if remaining == 0 {
		return
	}
	buf.FillCircle(p.Position.X, p.Position.Y, p.Radius*remaining, p.Color, remaining)
}
