package parameter

import "time"

// Gravity
const (
	// Gravitation is the downward acceleration magnitude in cells/sec²
	// Scaled per entity by mass, so heavier particles fall faster
	// (intentional visual simplification, not real physics)
	Gravitation = 9.81
)

// Rocket
const (
	// RocketDefaultLifetime caps ascent time; apex detection normally
	// fires well before this
	RocketDefaultLifetime = 10 * time.Second

	// RocketMass scales gravity so a rocket decelerates to apex in
	// roughly one to two seconds at launch speed
	RocketMass = 3.0

	RocketRadius = 0.8

	// RocketApexMin/Max bound apex height as a fraction of screen height
	RocketApexMin = 0.45
	RocketApexMax = 0.80

	// RocketDriftSpeed is max horizontal launch drift in cells/sec
	RocketDriftSpeed = 3.0
)

// Launch trail particles
const (
	// TrailVelocityFactor scales the parent velocity for spawned trail
	// particles; negative so the trail streams behind the rocket
	TrailVelocityFactor = -0.1

	// TrailJitterSpeed is max horizontal jitter in cells/sec
	TrailJitterSpeed = 4.0

	TrailParticleMass = 0.3
	TrailRadius       = 0.6

	TrailLifetimeMin = 0.2
	TrailLifetimeMax = 0.8
)

// Explosion sparks
const (
	// ExplosionSparkCount is the number of spark trails injected per burst
	ExplosionSparkCount = 32

	SparkTrailSpeedMin = 4.0
	SparkTrailSpeedMax = 16.0

	SparkTrailLifetimeMin = 0.8
	SparkTrailLifetimeMax = 2.4

	SparkTrailMass   = 1.0
	SparkTrailRadius = 0.7

	// SparkSpeed is the fixed outward speed of burst debris particles
	SparkSpeed = 2.5

	// SparkLifetime is the fixed lifetime of burst debris particles
	SparkLifetime = 0.6

	SparkMass   = 0.5
	SparkRadius = 0.5
)
