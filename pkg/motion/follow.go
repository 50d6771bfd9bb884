// Package motion moves 2D points with spring and projectile physics.
package motion

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/vec2/pkg/math2d"
)

// Follower moves a point toward a target with one spring per axis.
type Follower struct {
	Position *math2d.Vector2
	Velocity *math2d.Vector2

	spring harmonica.Spring
	offset math2d.Vector2
}

// NewFollower creates a follower at the origin. Frequency is the spring's
// angular frequency and damping its damping ratio; 1 is critically damped
// (no overshoot).
func NewFollower(fps int, frequency, damping float64) *Follower {
	return &Follower{
		Position: math2d.New(0, 0),
		Velocity: math2d.New(0, 0),
		spring:   harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Update advances one frame toward target and returns the new position.
func (f *Follower) Update(target *math2d.Vector2) *math2d.Vector2 {
	x, vx := f.spring.Update(f.Position.X(), f.Velocity.X(), target.X())
	y, vy := f.spring.Update(f.Position.Y(), f.Velocity.Y(), target.Y())
	f.Position.SetX(x).SetY(y)
	f.Velocity.SetX(vx).SetY(vy)
	return f.Position
}

// Settled reports whether the follower is within epsilon of target and its
// speed is below epsilon.
func (f *Follower) Settled(target *math2d.Vector2, epsilon float64) bool {
	eps2 := epsilon * epsilon
	f.offset.Subtract(target, f.Position)
	return f.offset.NormSquared() < eps2 && f.Velocity.NormSquared() < eps2
}

// Reset places the follower at rest on at.
func (f *Follower) Reset(at *math2d.Vector2) {
	f.Position.CopyOf(at)
	f.Velocity.SetX(0).SetY(0)
}
