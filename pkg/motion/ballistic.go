package motion

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/vec2/pkg/math2d"
)

// Gravity returns standard gravity pointing down the y axis.
func Gravity() *math2d.Vector2 {
	return math2d.New(0, -9.81)
}

// Ballistic is a point under constant acceleration.
type Ballistic struct {
	p   *harmonica.Projectile
	pos *math2d.Vector2
	vel *math2d.Vector2
}

// NewBallistic starts a projectile at pos with velocity vel, accelerating by
// acc every second.
func NewBallistic(fps int, pos, vel, acc *math2d.Vector2) *Ballistic {
	return &Ballistic{
		p: harmonica.NewProjectile(
			harmonica.FPS(fps),
			harmonica.Point{X: pos.X(), Y: pos.Y()},
			harmonica.Vector{X: vel.X(), Y: vel.Y()},
			harmonica.Vector{X: acc.X(), Y: acc.Y()},
		),
		pos: math2d.Copy(pos),
		vel: math2d.Copy(vel),
	}
}

// Update advances one frame and returns the new position.
func (b *Ballistic) Update() *math2d.Vector2 {
	p := b.p.Update()
	v := b.p.Velocity()
	b.pos.SetX(p.X).SetY(p.Y)
	b.vel.SetX(v.X).SetY(v.Y)
	return b.pos
}

// Position returns the current position.
func (b *Ballistic) Position() *math2d.Vector2 {
	return b.pos
}

// Velocity returns the current velocity.
func (b *Ballistic) Velocity() *math2d.Vector2 {
	return b.vel
}
