package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster"
)

// --- Configuration ---

// Config stores application configuration. Every field has a usable default,
// so the config file is optional and may set only what it changes.
type Config struct {
	Window Window         `toml:"window"`
	Assets Assets         `toml:"assets"`
	Audio  Audio          `toml:"audio"`
	Game   blaster.Tuning `toml:"game"`

	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64 `toml:"seed"`
}

type Window struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Resizable  bool   `toml:"resizable"`
	Fullscreen bool   `toml:"fullscreen"`
}

// Assets names the optional image files. Relative paths are resolved
// against Dir.
type Assets struct {
	Dir        string `toml:"dir"`
	Splash     string `toml:"splash"`
	Background string `toml:"background"`
}

type Audio struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "Ball Blaster",
			Width:     400,
			Height:    600,
			Resizable: true,
		},
		Assets: Assets{
			Dir:        "assets",
			Splash:     "splash.png",
			Background: "background.webp",
		},
		Audio: Audio{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Game: blaster.DefaultTuning(),
	}
}

// Load reads the TOML file at path over the defaults. Keys the file sets
// that Config does not know are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating the parent directory.
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode config: %w", err)
	}
	return f.Close()
}

// Validate reports every value the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio volume %v must be within [0, 1]", c.Audio.Volume)
	check(!c.Audio.Enabled || c.Audio.SampleRate > 0, "audio sample rate %d must be positive", c.Audio.SampleRate)

	g := c.Game
	check(g.ReferenceWidth > 0 && g.ReferenceHeight > 0, "reference size %vx%v must be positive", g.ReferenceWidth, g.ReferenceHeight)
	check(g.Gravity >= 0, "gravity %v must not be negative", g.Gravity)
	check(g.BounceDampening > 0 && g.BounceDampening < 1, "bounce dampening %v must be within (0, 1)", g.BounceDampening)
	check(g.BounceBoost > 0, "bounce boost %v must be positive", g.BounceBoost)
	check(g.WallDamping > 0 && g.WallDamping <= 1, "wall damping %v must be within (0, 1]", g.WallDamping)
	check(g.MinBounceVelocity > 0, "min bounce velocity %v must be positive", g.MinBounceVelocity)
	check(g.MinRadius > 0 && g.MaxRadius >= g.MinRadius, "radius range %v..%v is invalid", g.MinRadius, g.MaxRadius)
	check(g.LauncherWidth > 0 && g.LauncherHeight > 0, "launcher size %vx%v must be positive", g.LauncherWidth, g.LauncherHeight)
	check(g.FireRate > 0, "fire rate %v must be positive", g.FireRate)
	check(g.BulletPower > 0, "bullet power %d must be positive", g.BulletPower)
	check(g.PowerPerLevel >= 0, "power per level %d must not be negative", g.PowerPerLevel)
	check(g.ProjectileSpeed > 0 && g.ProjectileWidth > 0, "projectile speed %v and width %v must be positive", g.ProjectileSpeed, g.ProjectileWidth)
	check(g.WaveBase >= 0 && g.WaveGrowthCap >= 1, "wave base %d and growth cap %d are invalid", g.WaveBase, g.WaveGrowthCap)
	check(g.MaxCracks >= 0, "max cracks %d must not be negative", g.MaxCracks)
	check(g.SplashMillis >= 0 && g.TransitionMillis >= 0, "splash %dms and transition %dms must not be negative", g.SplashMillis, g.TransitionMillis)

	return errors.Join(errs...)
}

// Path resolves an asset file name against the asset directory.
func (a Assets) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.Dir, name)
}
