package screen

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster"
	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/config"
	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/fx"
)

// sound plays the synthesized clips for core events.
type sound struct {
	ctx    *audio.Context
	clips  map[fx.Clip][]byte
	volume float64
}

func newSound(cfg config.Audio, rng *rand.Rand) *sound {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(cfg.SampleRate)
	}
	return &sound{
		ctx:    ctx,
		clips:  fx.Synthesize(ctx.SampleRate(), rng),
		volume: cfg.Volume,
	}
}

func (s *sound) play(ev blaster.Event) {
	c, ok := fx.ClipFor(ev)
	if !ok {
		return
	}
	p := s.ctx.NewPlayerFromBytes(s.clips[c])
	p.SetVolume(s.volume)
	p.Play()
}
