package screen

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster"
	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/fx"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func (s *Screen) drawWorld(screen *ebiten.Image, m blaster.Metrics) {
	sess := s.game.Session()
	if sess == nil {
		return
	}
	frames := s.game.Clock().Seconds() * 60

	// floor line
	floorY := m.Height - m.FloorMargin
	vector.DrawFilledRect(screen, 0, float32(floorY), float32(m.Width), float32(m.FloorMargin), color.NRGBA{30, 40, 70, 140}, false)
	vector.StrokeLine(screen, 0, float32(floorY), float32(m.Width), float32(floorY), float32(2*m.Scale), color.NRGBA{150, 180, 230, 200}, true)

	for _, t := range sess.Targets {
		drawTarget(screen, t, s.crystals.Get(t.ID), frames)
	}
	for _, p := range sess.Projectiles {
		drawProjectile(screen, p)
	}
	drawLauncher(screen, sess.Launcher, m)
}

func drawTarget(screen *ebiten.Image, t *blaster.Target, c *fx.Crystal, frames float64) {
	x := t.X + math.Sin(frames*1.7+float64(t.ID))*t.Shake
	y := t.Y + math.Cos(frames*2.3+float64(t.ID))*t.Shake
	rot := c.Phase + c.Spin*frames
	pulse := 1 + 0.05*math.Sin(frames*0.1+c.Phase)

	shade := 0.55 + 0.45*t.HealthRatio()
	body := mix(scaleColor(c.Color, shade), color.NRGBA{255, 255, 255, 255}, t.Flash*0.8)

	pts := make([][2]float64, len(c.Spokes))
	inner := make([][2]float64, len(c.Spokes))
	for i, k := range c.Spokes {
		a := rot + float64(i)/float64(len(c.Spokes))*2*math.Pi
		r := t.Radius * k * pulse
		pts[i] = [2]float64{x + math.Cos(a)*r, y + math.Sin(a)*r}
		inner[i] = [2]float64{x + math.Cos(a)*r*0.5, y + math.Sin(a)*r*0.5 - t.Radius*0.1}
	}

	fillCircle(screen, x, y, t.Radius*1.25, withAlpha(body, 0.15))
	fillPolygon(screen, pts, body)
	fillPolygon(screen, inner, withAlpha(mix(body, color.NRGBA{255, 255, 255, 255}, 0.4), 0.6))
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 1.5, scaleColor(body, 1.3), true)
	}

	for _, cr := range c.Cracks[:min(t.Cracks, len(c.Cracks))] {
		r := t.Radius * cr.Length
		x0, y0 := x+math.Cos(rot+cr.From)*r*0.2, y+math.Sin(rot+cr.From)*r*0.2
		x1, y1 := x+math.Cos(rot+cr.To)*r, y+math.Sin(rot+cr.To)*r
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, color.NRGBA{20, 20, 40, 200}, true)
	}

	drawText(screen, strconv.Itoa(t.Health), x, y, math.Max(t.Radius*0.5, 10), color.NRGBA{255, 255, 255, 230}, text.AlignCenter)
}

func drawProjectile(screen *ebiten.Image, p *blaster.Projectile) {
	w := p.HalfWidth * 2
	fillCircle(screen, p.X, p.Y, p.HalfWidth*1.8, color.NRGBA{255, 220, 120, 60})
	vector.DrawFilledRect(screen, float32(p.X-p.HalfWidth/2), float32(p.Y-w), float32(p.HalfWidth), float32(w*2), color.NRGBA{255, 240, 180, 255}, true)
	fillCircle(screen, p.X, p.Y-w, p.HalfWidth/2, color.NRGBA{255, 255, 255, 255})
}

func drawLauncher(screen *ebiten.Image, l *blaster.Launcher, m blaster.Metrics) {
	heat := l.Heat / 100
	barrel := mix(color.NRGBA{90, 100, 120, 255}, color.NRGBA{255, 90, 40, 255}, heat)

	bw := l.Width * 0.3
	top := l.BarrelTipY()
	base := l.Y - l.Height/2
	vector.DrawFilledRect(screen, float32(l.X-bw/2), float32(top), float32(bw), float32(base-top+l.Recoil), barrel, true)
	vector.DrawFilledRect(screen, float32(l.X-l.Width/2), float32(base+l.Recoil/2), float32(l.Width), float32(l.Height), color.NRGBA{60, 70, 100, 255}, true)
	vector.StrokeRect(screen, float32(l.X-l.Width/2), float32(base+l.Recoil/2), float32(l.Width), float32(l.Height), float32(2*m.Scale), color.NRGBA{150, 180, 230, 255}, true)
	fillCircle(screen, l.X, l.Y+l.Recoil/2, l.Height*0.3, mix(color.NRGBA{120, 140, 200, 255}, color.NRGBA{255, 120, 60, 255}, heat))
}

func (s *Screen) drawHUD(screen *ebiten.Image, m blaster.Metrics) {
	sess := s.game.Session()
	if sess == nil {
		return
	}
	size := math.Max(16, 24*m.Scale)
	x, y := 15*m.Scale, 15*m.Scale

	drawText(screen, "SCORE", x, y+size*0.35, size*0.7, color.NRGBA{200, 200, 230, 255}, text.AlignStart)
	drawText(screen, strconv.Itoa(sess.Score), x, y+size*1.3, size, color.NRGBA{255, 230, 120, 255}, text.AlignStart)

	by := 20*m.Scale + size*2
	bw, bh := 110*m.Scale, 36*m.Scale
	vector.DrawFilledRect(screen, float32(x), float32(by), float32(bw), float32(bh), color.NRGBA{80, 100, 180, 200}, true)
	vector.StrokeRect(screen, float32(x), float32(by), float32(bw), float32(bh), float32(2*m.Scale), color.NRGBA{150, 180, 230, 255}, true)
	drawText(screen, "LEVEL", x+bw*0.35, by+bh/2, size*0.7, color.NRGBA{220, 220, 255, 255}, text.AlignCenter)
	drawText(screen, strconv.Itoa(sess.Level), x+bw*0.78, by+bh/2, size*0.9, color.NRGBA{255, 255, 255, 255}, text.AlignCenter)

	if best := s.game.BestScore(); best > 0 {
		drawText(screen, fmt.Sprintf("BEST %d", best), m.Width-x, y+size*0.35, size*0.6, color.NRGBA{200, 200, 230, 200}, text.AlignEnd)
	}
}

// --- drawing helpers ---

// drawText draws s with its vertical centre at y. size is the line height
// in pixels.
func drawText(dst *ebiten.Image, s string, x, y, size float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	m := face.Metrics()
	k := size / (m.HAscent + m.HDescent)
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	op.Filter = ebiten.FilterLinear
	text.Draw(dst, s, face, op)
}

func fillCircle(dst *ebiten.Image, x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), clr, true)
}

// fillPolygon fills a convex polygon with a flat colour.
func fillPolygon(dst *ebiten.Image, pts [][2]float64, clr color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		path.LineTo(float32(p[0]), float32(p[1]))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(clr.R) / 0xff
		vs[i].ColorG = float32(clr.G) / 0xff
		vs[i].ColorB = float32(clr.B) / 0xff
		vs[i].ColorA = float32(clr.A) / 0xff
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * math.Max(0, math.Min(1, a)))
	return c
}

func scaleColor(c color.NRGBA, k float64) color.NRGBA {
	f := func(v uint8) uint8 { return uint8(math.Min(255, float64(v)*k)) }
	return color.NRGBA{f(c.R), f(c.G), f(c.B), c.A}
}

// mix blends a toward b by t in [0, 1].
func mix(a, b color.NRGBA, t float64) color.NRGBA {
	t = math.Max(0, math.Min(1, t))
	f := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.NRGBA{f(a.R, b.R), f(a.G, b.G), f(a.B, b.B), f(a.A, b.A)}
}
