package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector for physics calculations
// Methods mutate the receiver in place; callers must Clone before
// combining vectors they do not own
type Vec2 struct {
	X, Y float64
}

// Add accumulates other into the receiver and returns it for chaining
func (v *Vec2) Add(other Vec2) *Vec2 {
	v.X += other.X
	v.Y += other.Y
	return v
}

// Scale multiplies both components by factor and returns the receiver
func (v *Vec2) Scale(factor float64) *Vec2 {
	v.X *= factor
	v.Y *= factor
	return v
}

// Clone returns an independent copy
func (v Vec2) Clone() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Magnitude returns vector length
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// FromPolar builds a vector from angle (radians) and magnitude
func FromPolar(angle, magnitude float64) Vec2 {
	return Vec2{
		X: math.Cos(angle) * magnitude,
		Y: math.Sin(angle) * magnitude,
	}
}
