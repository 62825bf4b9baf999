package fx

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster"
)

// Clip names a synthesized sound.
type Clip int

const (
	ClipShot Clip = iota
	ClipHit
	ClipBreak
	ClipLevelUp
	ClipGameOver
	ClipClick
)

// tone describes a sweep from From to To hertz mixed with white noise.
type tone struct {
	Duration time.Duration
	From, To float64
	Noise    float64
	Gain     float64
}

var tones = map[Clip]tone{
	ClipShot:     {Duration: 60 * time.Millisecond, From: 880, To: 440, Noise: 0.3, Gain: 0.25},
	ClipHit:      {Duration: 80 * time.Millisecond, From: 300, To: 200, Noise: 0.5, Gain: 0.4},
	ClipBreak:    {Duration: 250 * time.Millisecond, From: 200, To: 60, Noise: 0.8, Gain: 0.6},
	ClipLevelUp:  {Duration: 400 * time.Millisecond, From: 440, To: 1320, Noise: 0, Gain: 0.4},
	ClipGameOver: {Duration: 800 * time.Millisecond, From: 330, To: 55, Noise: 0.2, Gain: 0.6},
	ClipClick:    {Duration: 40 * time.Millisecond, From: 1200, To: 1000, Noise: 0, Gain: 0.3},
}

// ClipFor maps an event to the clip it plays, if any.
func ClipFor(ev blaster.Event) (Clip, bool) {
	switch ev.Kind {
	case blaster.EventShot:
		return ClipShot, true
	case blaster.EventTargetHit:
		return ClipHit, true
	case blaster.EventTargetDestroyed:
		return ClipBreak, true
	case blaster.EventLevelUp:
		return ClipLevelUp, true
	case blaster.EventGameOver:
		return ClipGameOver, true
	case blaster.EventSessionStarted:
		return ClipClick, true
	}
	return 0, false
}

// Synthesize renders every clip as 16-bit little-endian stereo PCM at
// sampleRate, the format ebiten's audio players expect.
func Synthesize(sampleRate int, rng *rand.Rand) map[Clip][]byte {
	out := make(map[Clip][]byte, len(tones))
	for c, t := range tones {
		out[c] = synth(sampleRate, t, rng)
	}
	return out
}

func synth(sampleRate int, t tone, rng *rand.Rand) []byte {
	n := int(int64(sampleRate) * int64(t.Duration) / int64(time.Second))
	buf := make([]byte, n*4)
	phase := 0.0
	for i := range n {
		p := float64(i) / float64(n)
		f := t.From + (t.To-t.From)*p
		phase += 2 * math.Pi * f / float64(sampleRate)

		v := math.Sin(phase)*(1-t.Noise) + (rng.Float64()*2-1)*t.Noise
		v *= t.Gain * (1 - p) * (1 - p)
		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
