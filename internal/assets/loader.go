package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Cache holds decoded images by key.
type Cache struct {
	items map[string]*Image
	mu    *sync.RWMutex
}

func NewCache() *Cache {
	return &Cache{
		items: make(map[string]*Image),
		mu:    &sync.RWMutex{},
	}
}

// Get retrieves an image from the cache.
func (c *Cache) Get(key string) (*Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.items[key]
	return img, ok
}

// Set adds an image to the cache.
func (c *Cache) Set(key string, img *Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = img
}

// Loader reads and decodes image files, caching them by path.
type Loader struct {
	cache *Cache
}

func NewLoader() *Loader {
	return &Loader{cache: NewCache()}
}

// Load returns the decoded image at path. A missing file is reported with
// an error wrapping fs.ErrNotExist.
func (l *Loader) Load(path string) (*Image, error) {
	if img, ok := l.cache.Get(path); ok {
		return img, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", path, err)
	}

	l.cache.Set(path, img)
	return img, nil
}

// LoadAll loads every named path concurrently. Names with an empty path or
// a missing file are skipped, so the result only holds what could be
// loaded. The first decode failure is returned alongside whatever else did
// load.
func (l *Loader) LoadAll(ctx context.Context, paths map[string]string) (map[string]*Image, error) {
	var (
		mu  sync.Mutex
		out = make(map[string]*Image, len(paths))
	)

	g, ctx := errgroup.WithContext(ctx)
	for name, path := range paths {
		if path == "" {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := l.Load(path)
			if errors.Is(err, fs.ErrNotExist) {
				log.Printf("Asset %s not found at %s, using fallback", name, path)
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			out[name] = img
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	return out, err
}

// Player steps through an animated image in wall-clock time.
type Player struct {
	img   *Image
	frame int
	acc   float64
}

func NewPlayer(img *Image) *Player {
	return &Player{img: img}
}

// Advance moves the animation forward by elapsed milliseconds.
func (p *Player) Advance(elapsed float64) {
	if p.img == nil || !p.img.Animated() {
		return
	}
	p.acc += elapsed
	for {
		delay := float64(p.img.Delay(p.frame))
		if p.acc < delay {
			return
		}
		p.acc -= delay
		p.frame = (p.frame + 1) % len(p.img.Frames)
	}
}

// Frame is the index of the frame to show.
func (p *Player) Frame() int {
	return p.frame
}
