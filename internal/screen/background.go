package screen

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster"
)

const cloudCount = 5

var (
	skyTop    = color.NRGBA{135, 206, 235, 255}
	skyBottom = color.NRGBA{70, 130, 180, 255}
)

type puff struct {
	dx, dy, size float64
}

type cloud struct {
	x, y          float64
	width, height float64
	speed         float64
	alpha         float64
	puffs         []puff
}

// sky is the drawn background used when no background image is available.
// Clouds drift left and respawn past the right edge.
type sky struct {
	rng      *rand.Rand
	clouds   []*cloud
	gradient *ebiten.Image
}

func newSky(rng *rand.Rand, m blaster.Metrics) *sky {
	s := &sky{rng: rng}
	s.reset(m)
	return s
}

func (s *sky) reset(m blaster.Metrics) {
	s.gradient = nil
	s.clouds = s.clouds[:0]
	for range cloudCount {
		c := &cloud{}
		s.respawn(c, m)
		c.x = s.rng.Float64() * m.Width
		s.clouds = append(s.clouds, c)
	}
}

func (s *sky) respawn(c *cloud, m blaster.Metrics) {
	between := func(lo, hi float64) float64 { return lo + s.rng.Float64()*(hi-lo) }

	c.x = between(m.Width, m.Width+200)
	c.y = between(50, m.Height/4)
	c.width = between(80, 150) * m.Scale
	c.height = between(40, 60) * m.Scale
	c.speed = between(0.2, 0.4) * m.Scale
	c.alpha = between(180, 220) / 255
	c.puffs = c.puffs[:0]
	for range 3 + s.rng.Intn(3) {
		c.puffs = append(c.puffs, puff{
			dx:   between(-c.width/2, c.width/2),
			dy:   between(-c.height/3, c.height/3),
			size: between(0.5, 1),
		})
	}
}

func (s *sky) update(m blaster.Metrics) {
	for _, c := range s.clouds {
		c.x -= c.speed
		if c.x < -c.width {
			s.respawn(c, m)
		}
	}
}

func (s *sky) drawGradient(screen *ebiten.Image) {
	b := screen.Bounds()
	if s.gradient == nil || s.gradient.Bounds() != b {
		s.gradient = ebiten.NewImage(b.Dx(), b.Dy())
		h := b.Dy()
		for y := range h {
			c := mix(skyTop, skyBottom, float64(y)/float64(max(h-1, 1)))
			vector.DrawFilledRect(s.gradient, 0, float32(y), float32(b.Dx()), 1, c, false)
		}
	}
	screen.DrawImage(s.gradient, nil)
}

func (s *sky) drawClouds(screen *ebiten.Image) {
	for _, c := range s.clouds {
		white := withAlpha(color.NRGBA{255, 255, 255, 255}, c.alpha)
		fillEllipse(screen, c.x, c.y, c.width/2, c.height/2, white)
		for _, p := range c.puffs {
			fillEllipse(screen, c.x+p.dx, c.y+p.dy, c.width*p.size/2, c.height*p.size/2, white)
		}
	}
}

func fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, clr color.NRGBA) {
	const n = 32
	pts := make([][2]float64, n)
	for i := range pts {
		a := float64(i) / n * 2 * math.Pi
		pts[i] = [2]float64{cx + math.Cos(a)*rx, cy + math.Sin(a)*ry}
	}
	fillPolygon(dst, pts, clr)
}
