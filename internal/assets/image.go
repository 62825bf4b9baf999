package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/gen2brain/webp"
	"github.com/kettek/apng"
)

// defaultFrameDelay is used when an animation does not specify one.
const defaultFrameDelay = 100

// Image is a decoded asset. A static image has a single frame. Frames stay
// plain image.Image values so decoding does not need a graphics context;
// the screen uploads them once they are ready.
type Image struct {
	Frames []image.Image
	Delays []int // Delay in milliseconds
}

// Animated reports whether the image has more than one frame.
func (i *Image) Animated() bool {
	return len(i.Frames) > 1
}

// Bounds is the size of the first frame.
func (i *Image) Bounds() image.Rectangle {
	if len(i.Frames) == 0 {
		return image.Rectangle{}
	}
	return i.Frames[0].Bounds()
}

// Delay returns the display time of frame n in milliseconds.
func (i *Image) Delay(n int) int {
	if n < 0 || n >= len(i.Delays) || i.Delays[n] <= 0 {
		return defaultFrameDelay
	}
	return i.Delays[n]
}

func static(img image.Image) *Image {
	return &Image{Frames: []image.Image{img}, Delays: []int{0}}
}

// compositor replays an animation's frame records onto a full-size canvas
// and snapshots the result after each one. GIF and APNG share it; they
// differ only in how their disposal codes are spelled.
type compositor struct {
	canvas *image.RGBA
	saved  *image.RGBA
}

type disposal int

const (
	disposeNone disposal = iota
	disposeBackground
	disposePrevious
)

func newCompositor(w, h int) *compositor {
	r := image.Rect(0, 0, w, h)
	return &compositor{canvas: image.NewRGBA(r), saved: image.NewRGBA(r)}
}

// frame draws src into dst and returns a copy of the canvas, then applies
// the disposal so the canvas is ready for the next record.
func (c *compositor) frame(dst image.Rectangle, src image.Image, op draw.Op, d disposal) image.Image {
	if d == disposePrevious {
		copy(c.saved.Pix, c.canvas.Pix)
	}
	draw.Draw(c.canvas, dst, src, src.Bounds().Min, op)

	snap := image.NewRGBA(c.canvas.Rect)
	copy(snap.Pix, c.canvas.Pix)

	switch d {
	case disposeBackground:
		draw.Draw(c.canvas, dst, image.Transparent, image.Point{}, draw.Src)
	case disposePrevious:
		copy(c.canvas.Pix, c.saved.Pix)
	}
	return snap
}

func composeAPNG(a *apng.APNG, w, h int) *Image {
	c := newCompositor(w, h)
	out := &Image{}
	for _, f := range a.Frames {
		// the default image is a fallback for plain PNG viewers
		if f.IsDefault {
			continue
		}
		op := draw.Over
		if f.BlendOp == apng.BLEND_OP_SOURCE {
			op = draw.Src
		}
		d := disposeNone
		switch f.DisposeOp {
		case apng.DISPOSE_OP_BACKGROUND:
			d = disposeBackground
		case apng.DISPOSE_OP_PREVIOUS:
			d = disposePrevious
		}
		b := f.Image.Bounds()
		dst := image.Rect(f.XOffset, f.YOffset, f.XOffset+b.Dx(), f.YOffset+b.Dy())

		out.Frames = append(out.Frames, c.frame(dst, f.Image, op, d))
		out.Delays = append(out.Delays, int(math.Round(f.GetDelay()*1000)))
	}
	return out
}

func composeGIF(g *gif.GIF) *Image {
	c := newCompositor(g.Config.Width, g.Config.Height)
	out := &Image{}
	for i, src := range g.Image {
		d := disposeNone
		if i < len(g.Disposal) {
			switch g.Disposal[i] {
			case gif.DisposalBackground:
				d = disposeBackground
			case gif.DisposalPrevious:
				d = disposePrevious
			}
		}
		out.Frames = append(out.Frames, c.frame(src.Bounds(), src, draw.Over, d))

		delay := 0
		if i < len(g.Delay) {
			delay = g.Delay[i] * 10 // centiseconds
		}
		out.Delays = append(out.Delays, delay)
	}
	return out
}

func composeWebP(a *webp.WEBP) *Image {
	frames := make([]image.Image, 0, len(a.Image))
	for _, f := range a.Image {
		frames = append(frames, f)
	}
	return &Image{Frames: frames, Delays: a.Delay}
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// sanitizePNG drops tRNS chunks from truecolour-with-alpha PNGs. Such files
// are invalid but common among exported sprites, and the apng decoder
// rejects them. Anything that is not a PNG is returned unchanged.
func sanitizePNG(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, pngSignature) {
		return data, nil
	}

	out := make([]byte, 0, len(data))
	out = append(out, pngSignature...)
	rgba := false

	for off := len(pngSignature); off < len(data); {
		if off+8 > len(data) {
			return nil, fmt.Errorf("png chunk header truncated at offset %d", off)
		}
		n := int(binary.BigEndian.Uint32(data[off:]))
		kind := string(data[off+4 : off+8])
		end := off + 12 + n // length, type, body, crc
		if n < 0 || end > len(data) {
			return nil, fmt.Errorf("png chunk %q overruns the file", kind)
		}

		switch kind {
		case "IHDR":
			// colour type sits 9 bytes into the header body
			rgba = n == 13 && data[off+8+9] == 6
		case "tRNS":
			if rgba {
				off = end
				continue
			}
		}
		out = append(out, data[off:end]...)
		off = end

		if kind == "IEND" {
			return append(out, data[off:]...), nil
		}
	}
	return out, nil
}

// Decode decodes a still or animated image. GIF, PNG/APNG and WebP keep
// their animation frames; everything else is decoded as a still image.
func Decode(data []byte) (*Image, error) {
	contentType := http.DetectContentType(data)

	switch {
	case strings.Contains(contentType, "gif"):
		g, err := gif.DecodeAll(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if len(g.Image) <= 1 {
			return decodeStatic(data)
		}
		return composeGIF(g), nil

	case strings.Contains(contentType, "png"):
		processed, err := sanitizePNG(data)
		if err != nil {
			log.Printf("Failed to sanitize png, decoding as is: %v", err)
			processed = data
		}

		config, err := apng.DecodeConfig(bytes.NewReader(processed))
		if err != nil {
			return nil, err
		}
		animation, err := apng.DecodeAll(bytes.NewReader(processed))
		if err != nil {
			// plain PNGs that apng cannot handle still decode as stills
			img, _, staticErr := image.Decode(bytes.NewReader(processed))
			if staticErr != nil {
				return nil, err
			}
			return static(img), nil
		}

		numFrames := 0
		for _, f := range animation.Frames {
			if !f.IsDefault {
				numFrames++
			}
		}
		if numFrames <= 1 {
			return decodeStatic(processed)
		}
		return composeAPNG(&animation, config.Width, config.Height), nil

	case strings.Contains(contentType, "webp"):
		animation, err := webp.DecodeAll(bytes.NewReader(data))
		if err != nil || len(animation.Image) <= 1 {
			img, staticErr := webp.Decode(bytes.NewReader(data))
			if staticErr != nil {
				if err != nil {
					return nil, err
				}
				return nil, staticErr
			}
			return static(img), nil
		}
		return composeWebP(animation), nil
	}

	return decodeStatic(data)
}

func decodeStatic(data []byte) (*Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return static(img), nil
}
