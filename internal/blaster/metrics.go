package blaster

import "math"

// Metrics is the viewport-dependent view of Tuning. Every size, speed and
// gravity value the entities use comes from here so a resize rescales them
// all by the same factor.
type Metrics struct {
	Width, Height float64
	Scale         float64

	FloorMargin float64

	LauncherWidth  float64
	LauncherHeight float64

	ProjectileSpeed float64
	ProjectileWidth float64

	MinRadius float64
	MaxRadius float64

	Gravity       float64
	MinBounce     float64
	CrackVelocity float64
}

// NewMetrics derives the scaled constants for a width x height playfield.
func NewMetrics(width, height float64, t Tuning) Metrics {
	width = math.Max(width, 1)
	height = math.Max(height, 1)
	s := math.Min(width/t.ReferenceWidth, height/t.ReferenceHeight)
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		s = 1
	}

	minR := math.Max(math.Floor(t.MinRadius*s), 1)
	maxR := math.Max(math.Floor(t.MaxRadius*s), minR)

	return Metrics{
		Width:  width,
		Height: height,
		Scale:  s,

		FloorMargin: t.FloorMargin,

		LauncherWidth:  math.Max(math.Floor(t.LauncherWidth*s), 1),
		LauncherHeight: math.Max(math.Floor(t.LauncherHeight*s), 1),

		ProjectileSpeed: math.Max(math.Floor(t.ProjectileSpeed*s), 1),
		ProjectileWidth: t.ProjectileWidth * s,

		MinRadius: minR,
		MaxRadius: maxR,

		Gravity:       t.Gravity * s * t.GravityFactor,
		MinBounce:     t.MinBounceVelocity * s,
		CrackVelocity: t.CrackVelocity * s,
	}
}

// FloorY is the lowest centre height a target of radius r may occupy.
func (m Metrics) FloorY(r float64) float64 {
	return m.Height - r - m.FloorMargin
}

// Rect is an axis-aligned rectangle given by its centre and size.
type Rect struct {
	CX, CY float64
	W, H   float64
}

// Contains reports whether (x, y) lies strictly inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x > r.CX-r.W/2 && x < r.CX+r.W/2 &&
		y > r.CY-r.H/2 && y < r.CY+r.H/2
}

// StartButton is the title-screen button region.
func (m Metrics) StartButton() Rect {
	return Rect{CX: m.Width / 2, CY: m.Height/2 + 100*m.Scale, W: 170 * m.Scale, H: 50 * m.Scale}
}

// RestartButton is the game-over button region.
func (m Metrics) RestartButton() Rect {
	return Rect{CX: m.Width / 2, CY: m.Height * 0.78, W: 170 * m.Scale, H: 50 * m.Scale}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
