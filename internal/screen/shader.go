package screen

import (
	_ "embed"
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

//go:embed overlay.kage
var overlaySrc []byte

// overlay darkens the playfield behind the game-over card with a red
// vignette. It falls back to a flat translucent fill when the shader does
// not compile on the current backend.
type overlay struct {
	shader *ebiten.Shader
}

func newOverlay() *overlay {
	s, err := loadShader(overlaySrc)
	if err != nil {
		log.Printf("Overlay shader unavailable, using flat fill: %v", err)
	}
	return &overlay{shader: s}
}

func loadShader(src []byte) (*ebiten.Shader, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("cannot compile shader: %w", err)
	}
	return s, nil
}

func (o *overlay) draw(screen *ebiten.Image, elapsed time.Duration) {
	strength := math.Min(elapsed.Seconds()/0.8, 1)
	b := screen.Bounds()

	if o.shader == nil {
		vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.NRGBA{10, 0, 20, uint8(200 * strength)}, false)
		return
	}

	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Size":     []float32{float32(b.Dx()), float32(b.Dy())},
		"Strength": float32(strength),
		"Tint":     []float32{0.12, 0.02, 0.06},
	}
	screen.DrawRectShader(b.Dx(), b.Dy(), o.shader, op)
}
