package fx

import (
	"image/color"
	"math"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster"
)

var crystalColors = []color.NRGBA{
	{70, 130, 230, 255}, // blue
	{160, 70, 230, 255}, // purple
	{230, 70, 100, 255}, // red
	{70, 200, 170, 255}, // teal
	{200, 180, 70, 255}, // gold
}

// Crystal is the fixed look of a target, derived from its ID so it stays
// stable across frames and resizes.
type Crystal struct {
	Spokes []float64 // radius multiplier per vertex
	Cracks []Crack
	Color  color.NRGBA
	Spin   float64
	Phase  float64
}

// Crack is drawn from From to To (angles) over Length of the radius. A
// target shows as many of its crystal's cracks as it has taken.
type Crack struct {
	From, To float64
	Length   float64
}

// hashRand is splitmix64 seeded by a target ID.
type hashRand uint64

func (h *hashRand) float() float64 {
	*h += 0x9e3779b97f4a7c15
	z := uint64(*h)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return float64(z>>11) / (1 << 53)
}

func (h *hashRand) between(lo, hi float64) float64 {
	return lo + h.float()*(hi-lo)
}

// NewCrystal builds the look of target id with up to maxCracks cracks.
func NewCrystal(id, maxCracks int) *Crystal {
	h := hashRand(id)
	c := &Crystal{}

	n := 5 + int(h.float()*4)
	for range n {
		c.Spokes = append(c.Spokes, h.between(0.8, 1.2))
	}

	base := crystalColors[int(h.float()*float64(len(crystalColors)))%len(crystalColors)]
	jitter := func(v uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, float64(v)+h.between(-20, 20))))
	}
	c.Color = color.NRGBA{jitter(base.R), jitter(base.G), jitter(base.B), 255}

	c.Spin = h.between(-0.01, 0.01)
	c.Phase = h.float() * 2 * math.Pi

	for range maxCracks {
		from := h.float() * 2 * math.Pi
		c.Cracks = append(c.Cracks, Crack{From: from, To: from + h.between(-math.Pi/4, math.Pi/4), Length: h.between(0.3, 0.9)})
	}
	return c
}

// Crystals caches crystal looks by target ID.
type Crystals struct {
	maxCracks int
	byID      map[int]*Crystal
}

func NewCrystals(maxCracks int) *Crystals {
	return &Crystals{maxCracks: maxCracks, byID: make(map[int]*Crystal)}
}

// Get returns the look of target id, building it on first use.
func (c *Crystals) Get(id int) *Crystal {
	cr, ok := c.byID[id]
	if !ok {
		cr = NewCrystal(id, c.maxCracks)
		c.byID[id] = cr
	}
	return cr
}

// Handle drops the look of a destroyed target, and every look when a new
// session starts, since target IDs restart with it.
func (c *Crystals) Handle(ev blaster.Event) {
	switch ev.Kind {
	case blaster.EventTargetDestroyed:
		delete(c.byID, ev.TargetID)
	case blaster.EventSessionStarted:
		clear(c.byID)
	}
}

// Len is the number of cached looks.
func (c *Crystals) Len() int {
	return len(c.byID)
}
