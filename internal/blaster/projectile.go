package blaster

import "math"

// Projectile is a bullet travelling straight up from the launcher.
type Projectile struct {
	X, Y      float64
	Speed     float64
	Damage    int
	HalfWidth float64
	Age       int

	wobble float64
}

// NewProjectile creates a bullet at (x, y) carrying damage.
func NewProjectile(x, y float64, damage int, m Metrics, t Tuning) *Projectile {
	return &Projectile{
		X:         x,
		Y:         y,
		Speed:     m.ProjectileSpeed,
		Damage:    damage,
		HalfWidth: m.ProjectileWidth / 2,
		wobble:    t.WobbleAmplitude,
	}
}

// Advance moves the bullet up by its speed with a small horizontal wobble
// that depends only on its age and position.
func (p *Projectile) Advance() {
	p.Y -= p.Speed
	p.X += math.Sin(float64(p.Age)*0.2+p.X*0.1) * p.wobble
	p.Age++
}

// OutOfBounds reports whether the bullet has left the top of the playfield.
func (p *Projectile) OutOfBounds() bool {
	return p.Y < 0
}

// CollidesWith treats the bullet as a point with radius HalfWidth.
func (p *Projectile) CollidesWith(t *Target) bool {
	return p.distanceTo(t) < t.Radius+p.HalfWidth
}

func (p *Projectile) distanceTo(t *Target) float64 {
	return math.Hypot(p.X-t.X, p.Y-t.Y)
}
