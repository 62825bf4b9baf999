package screen

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster"
)

// drawSplash draws the splash image scaled to cover the screen, or a text
// card when no image was loaded. alpha fades it out during the transition.
func (s *Screen) drawSplash(screen *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	m := s.game.Metrics()

	if s.splash != nil {
		if img := s.splash.current(); img != nil {
			b := img.Bounds()
			k := math.Max(m.Width/float64(b.Dx()), m.Height/float64(b.Dy()))
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
			op.GeoM.Scale(k, k)
			op.GeoM.Translate(m.Width/2, m.Height/2)
			op.ColorScale.ScaleAlpha(float32(alpha))
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(img, op)
			return
		}
	}

	vector.DrawFilledRect(screen, 0, 0, float32(m.Width), float32(m.Height), withAlpha(color.NRGBA{15, 20, 45, 255}, alpha), false)
	drawText(screen, "BALL BLASTER", m.Width/2, m.Height/2-20*m.Scale, 44*m.Scale, withAlpha(color.NRGBA{255, 220, 80, 255}, alpha), text.AlignCenter)
	drawText(screen, "click to continue", m.Width/2, m.Height/2+30*m.Scale, 16*m.Scale, withAlpha(color.NRGBA{200, 200, 230, 255}, alpha), text.AlignCenter)
}

func (s *Screen) drawTitle(screen *ebiten.Image) {
	m := s.game.Metrics()
	cx := m.Width / 2

	drawText(screen, "BALL BLASTER", cx, m.Height/2-90*m.Scale, 40*m.Scale, color.NRGBA{30, 30, 120, 255}, text.AlignCenter)
	drawText(screen, "Move the cannon left/right to hit the balls", cx, m.Height/2, 14*m.Scale, color.Black, text.AlignCenter)
	drawText(screen, "Destroy all balls before they hit you", cx, m.Height/2+30*m.Scale, 14*m.Scale, color.Black, text.AlignCenter)

	if best := s.game.BestScore(); best > 0 {
		drawText(screen, fmt.Sprintf("BEST %d", best), cx, m.Height/2+50*m.Scale, 14*m.Scale, color.NRGBA{30, 30, 120, 255}, text.AlignCenter)
	}

	s.drawButton(screen, m.StartButton(), "START", m.Scale)
}

func (s *Screen) drawGameOver(screen *ebiten.Image, m blaster.Metrics) {
	sess := s.game.Session()
	cx := m.Width / 2

	// reveal the lines one after another
	t := s.game.ModeElapsed().Seconds()
	reveal := func(delay float64) float64 {
		return math.Max(0, math.Min(1, (t-delay)/0.4))
	}

	title := 0.3 + 0.7*reveal(0)
	drawText(screen, "GAME OVER", cx, m.Height*0.25, 48*m.Scale*title, withAlpha(color.NRGBA{255, 80, 80, 255}, reveal(0)), text.AlignCenter)

	drawText(screen, "FINAL SCORE", cx, m.Height*0.38, 18*m.Scale, withAlpha(color.NRGBA{200, 200, 230, 255}, reveal(0.3)), text.AlignCenter)
	drawText(screen, fmt.Sprint(sess.Score), cx, m.Height*0.44, 36*m.Scale, withAlpha(color.NRGBA{255, 230, 120, 255}, reveal(0.3)), text.AlignCenter)

	drawText(screen, fmt.Sprintf("LEVEL REACHED  %d", sess.Level), cx, m.Height*0.53, 18*m.Scale, withAlpha(color.NRGBA{200, 200, 230, 255}, reveal(0.6)), text.AlignCenter)
	drawText(screen, blaster.Rank(sess.Score), cx, m.Height*0.60, 26*m.Scale, withAlpha(color.NRGBA{120, 255, 160, 255}, reveal(0.9)), text.AlignCenter)
	drawText(screen, fmt.Sprintf("ACCURACY %.0f%%   BEST %d", sess.Accuracy()*100, s.game.BestScore()), cx, m.Height*0.66, 14*m.Scale, withAlpha(color.NRGBA{200, 200, 230, 255}, reveal(1.2)), text.AlignCenter)

	if s.game.ModeElapsed() >= blaster.RestartDelay {
		s.drawButton(screen, m.RestartButton(), "PLAY AGAIN", m.Scale)
	}
}

func (s *Screen) drawButton(screen *ebiten.Image, r blaster.Rect, label string, scale float64) {
	x, y := ebiten.CursorPosition()
	hover := r.Contains(float64(x), float64(y))

	top, bottom := color.NRGBA{70, 190, 70, 255}, color.NRGBA{40, 150, 40, 255}
	if hover {
		top, bottom = mix(top, color.NRGBA{255, 255, 255, 255}, 0.2), mix(bottom, color.NRGBA{255, 255, 255, 255}, 0.2)
	}

	left := r.CX - r.W/2
	for i := range 2 {
		c := top
		if i == 1 {
			c = bottom
		}
		vector.DrawFilledRect(screen, float32(left), float32(r.CY-r.H/2+float64(i)*r.H/2), float32(r.W), float32(r.H/2), c, true)
	}
	vector.StrokeRect(screen, float32(left), float32(r.CY-r.H/2), float32(r.W), float32(r.H), float32(2*scale), color.NRGBA{100, 255, 100, 150}, true)
	drawText(screen, label, r.CX, r.CY, 22*scale, color.White, text.AlignCenter)

	if hover {
		off := 5 * math.Sin(s.game.Clock().Seconds()*10)
		a := 10 * scale
		lx := left - 15 - off
		rx := r.CX + r.W/2 + 15 + off
		arrow := color.NRGBA{255, 255, 255, 200}
		fillPolygon(screen, [][2]float64{{lx, r.CY}, {lx - a, r.CY - a}, {lx - a, r.CY + a}}, arrow)
		fillPolygon(screen, [][2]float64{{rx, r.CY}, {rx + a, r.CY - a}, {rx + a, r.CY + a}}, arrow)
	}
}
