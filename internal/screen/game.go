package screen

import (
	"image/color"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/assets"
	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster"
	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/config"
	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/fx"
)

// Asset names understood by SetImages.
const (
	AssetSplash     = "splash"
	AssetBackground = "background"
)

var face = text.NewGoXFace(basicfont.Face7x13)

// Screen implements ebiten.Game on top of a blaster.Game. It owns every
// cosmetic concern; the core only sees Input and reports Events.
type Screen struct {
	game *blaster.Game

	width, height int

	// pending is written by the asset loader goroutine and picked up on
	// the next Update.
	pending atomic.Pointer[map[string]*assets.Image]

	splash     *sprite
	background *ebiten.Image

	sky      *sky
	effects  *fx.Effects
	crystals *fx.Crystals
	sound    *sound
	overlay  *overlay
}

// sprite is an uploaded, possibly animated, image.
type sprite struct {
	frames []*ebiten.Image
	player *assets.Player
}

func newSprite(img *assets.Image) *sprite {
	s := &sprite{player: assets.NewPlayer(img)}
	for _, f := range img.Frames {
		s.frames = append(s.frames, ebiten.NewImageFromImage(f))
	}
	return s
}

func (s *sprite) current() *ebiten.Image {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[s.player.Frame()%len(s.frames)]
}

// New creates the presenter. rng only drives cosmetics, never gameplay.
func New(game *blaster.Game, audioCfg config.Audio, rng *rand.Rand) *Screen {
	m := game.Metrics()
	s := &Screen{
		game:     game,
		width:    int(m.Width),
		height:   int(m.Height),
		crystals: fx.NewCrystals(game.Tuning().MaxCracks),
		sky:      newSky(rng, m),
		effects:  fx.New(rng),
		overlay:  newOverlay(),
	}
	if audioCfg.Enabled {
		s.sound = newSound(audioCfg, rng)
	}
	return s
}

// SetImages hands decoded assets to the screen. It is safe to call from any
// goroutine.
func (s *Screen) SetImages(images map[string]*assets.Image) {
	s.pending.Store(&images)
}

func (s *Screen) adoptImages() {
	p := s.pending.Swap(nil)
	if p == nil {
		return
	}
	if img, ok := (*p)[AssetSplash]; ok {
		s.splash = newSprite(img)
		log.Printf("Splash image ready (%d frames)", len(img.Frames))
	}
	if img, ok := (*p)[AssetBackground]; ok {
		s.background = ebiten.NewImageFromImage(img.Frames[0])
		log.Println("Background image ready")
	}
}

// Update proceeds the game state.
func (s *Screen) Update() error {
	s.adoptImages()

	m := s.game.Metrics()
	if int(m.Width) != s.width || int(m.Height) != s.height {
		s.game.Resize(float64(s.width), float64(s.height))
		m = s.game.Metrics()
		s.sky.reset(m)
		log.Printf("Resized to %dx%d (scale %.2f)", s.width, s.height, m.Scale)
	}

	elapsed := time.Second / time.Duration(ebiten.TPS())
	s.game.Tick(readInput(), elapsed)

	for _, ev := range s.game.DrainEvents() {
		s.handle(ev)
	}

	s.sky.update(m)
	s.effects.Update()
	if s.splash != nil {
		s.splash.player.Advance(float64(elapsed) / float64(time.Millisecond))
	}
	return nil
}

func (s *Screen) handle(ev blaster.Event) {
	m := s.game.Metrics()
	s.effects.Handle(ev, m.Scale)
	s.crystals.Handle(ev)
	if s.sound != nil {
		s.sound.play(ev)
	}

	switch ev.Kind {
	case blaster.EventSessionStarted:
		s.effects.Reset()
		log.Printf("Session %s started", s.game.Session().ID)
	case blaster.EventLevelUp:
		log.Printf("Level %d", ev.Level)
	case blaster.EventGameOver:
		sess := s.game.Session()
		log.Printf("Game over: score %d, level %d, rank %s, accuracy %.0f%%",
			sess.Score, sess.Level, blaster.Rank(sess.Score), sess.Accuracy()*100)
	}
}

// Draw draws the game screen.
func (s *Screen) Draw(screen *ebiten.Image) {
	m := s.game.Metrics()

	switch s.game.Mode() {
	case blaster.ModeSplash:
		s.drawSplash(screen, 1)
	case blaster.ModeTransition:
		s.drawBackground(screen)
		s.drawTitle(screen)
		s.drawSplash(screen, 1-s.game.TransitionProgress())
	case blaster.ModeTitle:
		s.drawBackground(screen)
		s.drawTitle(screen)
	case blaster.ModePlaying:
		s.drawBackground(screen)
		s.drawWorld(screen, m)
		s.drawEffects(screen)
		s.drawHUD(screen, m)
	case blaster.ModeGameOver:
		s.drawBackground(screen)
		s.drawWorld(screen, m)
		s.drawEffects(screen)
		s.overlay.draw(screen, s.game.ModeElapsed())
		s.drawGameOver(screen, m)
	}
}

// Layout keeps the logical screen the same size as the window.
func (s *Screen) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.width, s.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return s.width, s.height
}

func (s *Screen) drawBackground(screen *ebiten.Image) {
	if s.background != nil {
		op := &ebiten.DrawImageOptions{}
		b := s.background.Bounds()
		op.GeoM.Scale(float64(s.width)/float64(b.Dx()), float64(s.height)/float64(b.Dy()))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(s.background, op)
	} else {
		s.sky.drawGradient(screen)
	}
	s.sky.drawClouds(screen)
}

func (s *Screen) drawEffects(screen *ebiten.Image) {
	for _, p := range s.effects.Particles {
		a := p.Alpha()
		fillCircle(screen, p.X, p.Y, p.Size*0.75, withAlpha(p.Color, a*0.4))
		fillCircle(screen, p.X, p.Y, p.Size/2, withAlpha(p.Color, a))
		fillCircle(screen, p.X, p.Y, p.Size/4, withAlpha(color.NRGBA{255, 255, 255, 255}, a*0.7))
	}
	for _, t := range s.effects.Texts {
		drawText(screen, t.Text, t.X, t.Y, t.Size*t.Scale(), withAlpha(t.Color, t.Alpha()), text.AlignCenter)
	}
}
