package firework

import (
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// hsl converts hue (degrees), saturation, and lightness to a render color
func hsl(h, s, l float64) render.RGB {
	r, g, b := colorful.Hsl(h, s, l).RGB255()
	return render.RGB{R: r, G: g, B: b}
}

// randRange returns a uniform value in [lo, hi)
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// LaunchTrail spawns one faint warm particle streaming behind a moving
// rocket: parent position, reversed-and-damped parent velocity plus
// horizontal jitter, short random lifetime
func LaunchTrail(parent Snapshot, rng *rand.Rand) Entity {
	velocity := parent.Velocity.Clone()
	velocity.Scale(parameter.TrailVelocityFactor)
	velocity.Add(vmath.Vec2{
		X: randRange(rng, -parameter.TrailJitterSpeed, parameter.TrailJitterSpeed),
	})

	color := hsl(
		randRange(rng, parameter.TrailHueMin, parameter.TrailHueMax),
		parameter.TrailSaturation,
		parameter.TrailLightness,
	)

	p, err := NewParticle(
		parent.Position.Clone(),
		velocity,
		color,
		parameter.TrailRadius,
		randRange(rng, parameter.TrailLifetimeMin, parameter.TrailLifetimeMax),
		parameter.TrailParticleMass,
		parent.Now,
	)
	if err != nil {
		return nil
	}
	return p
}

// NewExplosion returns an explosion factory that bursts into spark
// trails sharing a base hue picked per explosion
func NewExplosion() ExplosionFactory {
	return func(parent Snapshot, rng *rand.Rand) []Entity {
		baseHue := rng.Float64() * 360

		burst := make([]Entity, 0, parameter.ExplosionSparkCount)
		for i := 0; i < parameter.ExplosionSparkCount; i++ {
			velocity := vmath.FromPolar(
				rng.Float64()*2*math.Pi,
				randRange(rng, parameter.SparkTrailSpeedMin, parameter.SparkTrailSpeedMax),
			)

			trail, err := NewTrail(
				parent.Position.Clone(),
				velocity,
				randRange(rng, parameter.SparkTrailLifetimeMin, parameter.SparkTrailLifetimeMax),
				parameter.SparkTrailMass,
				SparkTrail(baseHue),
				rng,
				parent.Now,
			)
			if err != nil {
				continue
			}
			trail.Radius = parameter.SparkTrailRadius
			burst = append(burst, trail)
		}
		return burst
	}
}

// SparkTrail returns a child factory for burst debris: radially flung
// particles with fixed outward speed and fixed short lifetime, colored
// within a hue band around the explosion's base hue
func SparkTrail(baseHue float64) ChildFactory {
	return func(parent Snapshot, rng *rand.Rand) Entity {
		velocity := vmath.FromPolar(rng.Float64()*2*math.Pi, parameter.SparkSpeed)

		hue := math.Mod(baseHue+randRange(rng, -parameter.SparkHueBand, parameter.SparkHueBand)+360, 360)
		color := hsl(
			hue,
			parameter.SparkSaturation,
			randRange(rng, parameter.SparkLightnessMin, parameter.SparkLightnessMax),
		)

		p, err := NewParticle(
			parent.Position.Clone(),
			velocity,
			color,
			parameter.SparkRadius,
			parameter.SparkLifetime,
			parameter.SparkMass,
			parent.Now,
		)
		if err != nil {
			return nil
		}
		return p
	}
}
