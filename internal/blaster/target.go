package blaster

import "math"

// Contact reports which playfield boundaries a target touched during Advance.
type Contact uint8

const (
	ContactWall Contact = 1 << iota
	ContactFloor
	// ContactChip is set on a floor bounce fast enough to chip the crystal.
	ContactChip
)

// Target is a falling, bouncing crystal.
type Target struct {
	ID int

	X, Y   float64
	DX, DY float64
	Radius float64

	Health         int
	OriginalHealth int

	Gravity      float64
	BounceFactor float64
	wallDamping  float64
	radiusRatio  float64

	// Display hints. Cracks is capped at the tuning's MaxCracks; Flash and
	// Shake decay every frame.
	Cracks    int
	maxCracks int
	Flash     float64
	Shake     float64
}

// NewTarget creates a target at (x, y) with the physics of the current
// metrics. Health is clamped to at least 1.
func NewTarget(id int, x, y, radius float64, health int, m Metrics, t Tuning) *Target {
	if health < 1 {
		health = 1
	}
	return &Target{
		ID:             id,
		X:              x,
		Y:              y,
		Radius:         radius,
		Health:         health,
		OriginalHealth: health,
		Gravity:        m.Gravity,
		BounceFactor:   t.BounceFactor(),
		wallDamping:    t.WallDamping,
		radiusRatio:    radius / m.MinRadius,
		maxCracks:      t.MaxCracks,
	}
}

// Advance applies gravity, integrates one frame and resolves wall and floor
// contact.
func (t *Target) Advance(m Metrics) Contact {
	var c Contact

	t.DY += t.Gravity
	t.X += t.DX
	t.Y += t.DY

	if t.X < t.Radius || t.X > m.Width-t.Radius {
		t.DX *= -t.wallDamping
		t.X = clamp(t.X, t.Radius, m.Width-t.Radius)
		t.addCrack()
		c |= ContactWall
	}

	floor := m.FloorY(t.Radius)
	if t.Y > floor {
		if math.Abs(t.DY) < m.MinBounce {
			t.DY = -m.MinBounce
		} else {
			t.DY = -math.Abs(t.DY * t.BounceFactor)
		}
		t.Y = floor
		t.DX *= t.wallDamping
		c |= ContactFloor

		if math.Abs(t.DY) > m.CrackVelocity {
			t.addCrack()
			c |= ContactChip
		}
	}

	if t.Flash > 0 {
		t.Flash = math.Max(t.Flash-0.04, 0)
	}
	if t.Shake > 0 {
		t.Shake *= 0.9
		if t.Shake < 0.01 {
			t.Shake = 0
		}
	}
	return c
}

// HitResult is the outcome of ApplyDamage. X, Y and Radius are the target's
// last known geometry, for effect spawning after removal.
type HitResult struct {
	Destroyed bool
	X, Y      float64
	Radius    float64
}

// ApplyDamage subtracts amount from the target's health. Health saturates at
// zero and Destroyed is set iff it reaches zero.
func (t *Target) ApplyDamage(amount int, m Metrics, rng Random) HitResult {
	t.Flash = 1
	t.Shake = 4 * m.Scale

	if amount >= 3 || rng.Float64() < 0.3 {
		t.addCrack()
	}

	t.Health -= amount
	if t.Health < 0 {
		t.Health = 0
	}
	return HitResult{
		Destroyed: t.Health <= 0,
		X:         t.X,
		Y:         t.Y,
		Radius:    t.Radius,
	}
}

// HealthRatio is the remaining share of the original health, for tinting.
func (t *Target) HealthRatio() float64 {
	if t.OriginalHealth <= 0 {
		return 0
	}
	return float64(t.Health) / float64(t.OriginalHealth)
}

// Resize rescales the target from one viewport to another.
func (t *Target) Resize(from, to Metrics) {
	ratio := 1.0
	if from.Scale > 0 {
		ratio = to.Scale / from.Scale
	}
	t.Radius = to.MinRadius * t.radiusRatio
	t.Gravity = to.Gravity
	t.DX *= ratio
	t.DY *= ratio
	t.X = clamp(t.X, t.Radius, math.Max(to.Width-t.Radius, t.Radius))
	t.Y = clamp(t.Y, t.Radius, math.Max(to.FloorY(t.Radius), t.Radius))
}

func (t *Target) addCrack() {
	if t.Cracks < t.maxCracks {
		t.Cracks++
	}
}
