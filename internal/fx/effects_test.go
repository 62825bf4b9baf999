package fx

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster"
)

func TestEffects_DestroyBlastScalesWithViewport(t *testing.T) {
	e := New(rand.New(rand.NewSource(1)))
	e.Handle(blaster.Event{Kind: blaster.EventTargetDestroyed, X: 10, Y: 10}, 1)
	if len(e.Particles) != 30 {
		t.Errorf("particles = %d, want 30", len(e.Particles))
	}

	e.Reset()
	e.Handle(blaster.Event{Kind: blaster.EventTargetDestroyed, X: 10, Y: 10}, 0.5)
	if len(e.Particles) != 15 {
		t.Errorf("particles = %d, want 15", len(e.Particles))
	}
}

func TestEffects_ScoreText(t *testing.T) {
	e := New(rand.New(rand.NewSource(1)))
	e.Handle(blaster.Event{Kind: blaster.EventScore, X: 50, Y: 60, Points: 12, Tier: blaster.TierLarge}, 1)

	if len(e.Texts) != 1 {
		t.Fatalf("texts = %d, want 1", len(e.Texts))
	}
	txt := e.Texts[0]
	if txt.Text != "+12" || txt.Color != tierColors[blaster.TierLarge] {
		t.Errorf("text %q colour %v", txt.Text, txt.Color)
	}

	e.Update()
	if txt.Y >= 60 {
		t.Errorf("text did not rise: y = %v", txt.Y)
	}
}

func TestEffects_ExpireAfterLife(t *testing.T) {
	e := New(rand.New(rand.NewSource(1)))
	e.Handle(blaster.Event{Kind: blaster.EventLevelUp, X: 200, Y: 300, Level: 2}, 1)
	if len(e.Texts) != 1 || len(e.Particles) != 40 {
		t.Fatalf("texts %d particles %d", len(e.Texts), len(e.Particles))
	}
	if e.Texts[0].Text != "LEVEL 2" {
		t.Errorf("text = %q", e.Texts[0].Text)
	}

	for range 90 {
		e.Update()
	}
	if len(e.Texts) != 0 || len(e.Particles) != 0 {
		t.Errorf("texts %d particles %d left after their life", len(e.Texts), len(e.Particles))
	}
}

func TestEffects_ParticleCap(t *testing.T) {
	e := New(rand.New(rand.NewSource(1)))
	for range 100 {
		e.Handle(blaster.Event{Kind: blaster.EventTargetDestroyed}, 1)
	}
	if len(e.Particles) > maxParticles {
		t.Errorf("particles = %d exceeds the cap", len(e.Particles))
	}
}

func TestEffects_IgnoresModeChanges(t *testing.T) {
	e := New(rand.New(rand.NewSource(1)))
	e.Handle(blaster.Event{Kind: blaster.EventModeChanged, Mode: blaster.ModeTitle}, 1)
	if len(e.Particles) != 0 || len(e.Texts) != 0 {
		t.Errorf("mode change spawned effects")
	}
}

func TestSynthesize(t *testing.T) {
	clips := Synthesize(8000, rand.New(rand.NewSource(1)))
	if len(clips) != len(tones) {
		t.Fatalf("clips = %d, want %d", len(clips), len(tones))
	}

	shot := clips[ClipShot]
	// 60ms of stereo 16-bit frames at 8kHz
	if len(shot) != 480*4 {
		t.Errorf("shot is %d bytes, want %d", len(shot), 480*4)
	}
	for i := 0; i < len(shot); i += 4 {
		l := binary.LittleEndian.Uint16(shot[i:])
		r := binary.LittleEndian.Uint16(shot[i+2:])
		if l != r {
			t.Fatalf("frame %d is not centred: %d != %d", i/4, l, r)
		}
	}
}

func TestClipFor(t *testing.T) {
	if c, ok := ClipFor(blaster.Event{Kind: blaster.EventTargetDestroyed}); !ok || c != ClipBreak {
		t.Errorf("destroy maps to %v, %v", c, ok)
	}
	if _, ok := ClipFor(blaster.Event{Kind: blaster.EventScore}); ok {
		t.Errorf("score events should be silent")
	}
}
