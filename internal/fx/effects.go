// Package fx turns core events into cosmetic state: particles, floating
// score text, per-target crystal looks and synthesized sound clips. Nothing
// here feeds back into gameplay.
package fx

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster"
)

const (
	maxParticles = 600
	maxTexts     = 40
)

// Particle is a fading dot with a glow.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Gravity float64
	Age     int
	Life    int
	Color   color.NRGBA
}

// Alpha fades linearly over the particle's life.
func (p *Particle) Alpha() float64 {
	if p.Life <= 0 {
		return 0
	}
	return math.Max(1-float64(p.Age)/float64(p.Life), 0)
}

// Text is a floating label such as "+10" or "LEVEL 3".
type Text struct {
	X, Y  float64
	Text  string
	Size  float64
	Color color.NRGBA
	Age   int
	Life  int
	Rise  float64
}

func (t *Text) Alpha() float64 {
	if t.Life <= 0 {
		return 0
	}
	return math.Max(1-float64(t.Age)/float64(t.Life), 0)
}

// Scale pops the text in over its first few frames.
func (t *Text) Scale() float64 {
	if t.Age < 8 {
		return 0.6 + 0.6*float64(t.Age)/8
	}
	return 1.2 - 0.2*math.Min(float64(t.Age-8)/10, 1)
}

var (
	tierColors = map[blaster.Tier]color.NRGBA{
		blaster.TierSmall:  {255, 255, 150, 255},
		blaster.TierMedium: {255, 200, 50, 255},
		blaster.TierLarge:  {255, 150, 50, 255},
		blaster.TierHuge:   {255, 100, 50, 255},
		blaster.TierBonus:  {120, 255, 160, 255},
	}
	smoke = color.NRGBA{200, 200, 210, 255}
	spark = color.NRGBA{255, 240, 180, 255}
	gold  = color.NRGBA{255, 220, 60, 255}
)

// Effects holds every live particle and floating text.
type Effects struct {
	Particles []*Particle
	Texts     []*Text

	rng *rand.Rand
}

func New(rng *rand.Rand) *Effects {
	return &Effects{rng: rng}
}

// Handle spawns the effects for one core event. scale is the current
// viewport scale.
func (e *Effects) Handle(ev blaster.Event, scale float64) {
	switch ev.Kind {
	case blaster.EventShot:
		e.burst(ev.X, ev.Y, 2, 1, 2, 2, 4, 10, 20, -0.02, smoke, scale)
	case blaster.EventImpact:
		e.burst(ev.X, ev.Y, 3, 1, 3, 2, 5, 15, 30, 0.1, spark, scale)
	case blaster.EventTargetHit:
		e.burst(ev.X, ev.Y, 4, 1, 3, 2, 4, 10, 20, 0.1, spark, scale)
	case blaster.EventTargetDestroyed:
		e.blast(ev.X, ev.Y, int(math.Floor(30*scale)), scale)
	case blaster.EventGameOver:
		e.blast(ev.X, ev.Y, int(math.Floor(60*scale)), scale)
	case blaster.EventScore:
		size := 18.0
		if ev.Tier == blaster.TierBonus {
			size = 22
		}
		e.addText(&Text{
			X: ev.X, Y: ev.Y,
			Text:  fmt.Sprintf("+%d", ev.Points),
			Size:  size * scale,
			Color: tierColors[ev.Tier],
			Life:  45,
			Rise:  1.2 * scale,
		})
	case blaster.EventLevelUp:
		e.addText(&Text{
			X: ev.X, Y: ev.Y,
			Text:  fmt.Sprintf("LEVEL %d", ev.Level),
			Size:  40 * scale,
			Color: gold,
			Life:  90,
			Rise:  0.4 * scale,
		})
		e.burst(ev.X, ev.Y, 40, 2, 6, 4, 10, 30, 60, 0.05, gold, scale)
	}
}

// Update ages everything by one frame and drops what has expired.
func (e *Effects) Update() {
	particles := e.Particles[:0]
	for _, p := range e.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += p.Gravity
		p.Age++
		if p.Age < p.Life {
			particles = append(particles, p)
		}
	}
	clear(e.Particles[len(particles):])
	e.Particles = particles

	texts := e.Texts[:0]
	for _, t := range e.Texts {
		t.Y -= t.Rise
		t.Age++
		if t.Age < t.Life {
			texts = append(texts, t)
		}
	}
	clear(e.Texts[len(texts):])
	e.Texts = texts
}

// Reset drops every live effect.
func (e *Effects) Reset() {
	e.Particles = nil
	e.Texts = nil
}

// blast is the warm explosion left by a destroyed target.
func (e *Effects) blast(x, y float64, n int, scale float64) {
	for range max(n, 1) {
		c := color.NRGBA{
			R: uint8(200 + e.rng.Intn(56)),
			G: uint8(100 + e.rng.Intn(101)),
			B: uint8(e.rng.Intn(51)),
			A: 255,
		}
		e.emit(x, y, 1, 5, 5, 15, 20, 40, 0.1, c, scale)
	}
}

func (e *Effects) burst(x, y float64, n int, minSpeed, maxSpeed, minSize, maxSize float64, minLife, maxLife int, gravity float64, c color.NRGBA, scale float64) {
	for range n {
		e.emit(x, y, minSpeed, maxSpeed, minSize, maxSize, minLife, maxLife, gravity, c, scale)
	}
}

func (e *Effects) emit(x, y, minSpeed, maxSpeed, minSize, maxSize float64, minLife, maxLife int, gravity float64, c color.NRGBA, scale float64) {
	if len(e.Particles) >= maxParticles {
		return
	}
	angle := e.rng.Float64() * 2 * math.Pi
	speed := (minSpeed + e.rng.Float64()*(maxSpeed-minSpeed)) * scale
	e.Particles = append(e.Particles, &Particle{
		X: x, Y: y,
		VX:      math.Cos(angle) * speed,
		VY:      math.Sin(angle) * speed,
		Size:    (minSize + e.rng.Float64()*(maxSize-minSize)) * scale,
		Gravity: gravity * scale,
		Life:    minLife + e.rng.Intn(maxLife-minLife+1),
		Color:   c,
	})
}

func (e *Effects) addText(t *Text) {
	if len(e.Texts) >= maxTexts {
		e.Texts = e.Texts[1:]
	}
	e.Texts = append(e.Texts, t)
}
