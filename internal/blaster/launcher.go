package blaster

import (
	"math"
	"time"
)

// Launcher is the player's cannon. It slides along the bottom of the
// playfield and fires automatically at FireRate shots per second.
type Launcher struct {
	X, Y          float64
	Width, Height float64
	BarrelLength  float64
	FireRate      float64

	lastShot time.Duration
	primed   bool

	// Display hints.
	Recoil float64
	Heat   float64
}

// NewLauncher places a launcher at the bottom centre of the playfield.
func NewLauncher(m Metrics, fireRate float64) *Launcher {
	l := &Launcher{X: m.Width / 2, FireRate: fireRate, primed: true}
	l.Resize(m)
	return l
}

// Resize re-derives the launcher's size and resting height and keeps it on
// the playfield.
func (l *Launcher) Resize(m Metrics) {
	l.Width = m.LauncherWidth
	l.Height = m.LauncherHeight
	l.BarrelLength = l.Height * 1.2
	l.Y = m.Height - l.Height/2 - m.FloorMargin
	l.Aim(l.X, m)
}

// Aim moves the launcher toward pointerX, clamped so it never leaves the
// playfield.
func (l *Launcher) Aim(pointerX float64, m Metrics) {
	l.X = clamp(pointerX, l.Width/2, math.Max(m.Width-l.Width/2, l.Width/2))
}

// Ready reports whether the fire cadence allows a shot at now.
func (l *Launcher) Ready(now time.Duration) bool {
	return l.primed || now-l.lastShot >= fireInterval(l.FireRate)
}

// Advance tracks the pointer, decays the display hints and fires if the
// cadence allows. The returned projectile is nil when no shot was fired.
func (l *Launcher) Advance(pointerX float64, now time.Duration, m Metrics, t Tuning, power int) *Projectile {
	l.Aim(pointerX, m)
	p := l.Fire(now, m, t, power)
	l.Recoil *= 0.8
	l.Heat *= 0.95
	return p
}

// Fire shoots from the barrel tip if the cadence allows.
func (l *Launcher) Fire(now time.Duration, m Metrics, t Tuning, power int) *Projectile {
	if !l.Ready(now) {
		return nil
	}
	l.lastShot = now
	l.primed = false
	return l.shoot(m, t, power)
}

// FireManual shoots on demand. It neither waits for nor resets the
// automatic cadence.
func (l *Launcher) FireManual(m Metrics, t Tuning, power int) *Projectile {
	return l.shoot(m, t, power)
}

func (l *Launcher) shoot(m Metrics, t Tuning, power int) *Projectile {
	p := NewProjectile(l.X, l.BarrelTipY(), power, m, t)
	l.Recoil = 5 * m.Scale
	l.Heat = math.Min(l.Heat+10, 100)
	return p
}

// BarrelTipY is where new projectiles appear.
func (l *Launcher) BarrelTipY() float64 {
	return l.Y - l.Height/2 - l.BarrelLength + l.Recoil
}

// CheckCollision tests the launcher's bounding box against a target circle.
func (l *Launcher) CheckCollision(t *Target) bool {
	dx := math.Abs(t.X - l.X)
	dy := math.Abs(t.Y - l.Y)
	hw, hh := l.Width/2, l.Height/2

	if dx > hw+t.Radius || dy > hh+t.Radius {
		return false
	}
	if dx <= hw || dy <= hh {
		return true
	}
	cx, cy := dx-hw, dy-hh
	return cx*cx+cy*cy <= t.Radius*t.Radius
}
