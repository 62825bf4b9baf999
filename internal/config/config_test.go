package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blaster.toml")
	data := `
seed = 42

[window]
width = 800

[game]
fire_rate = 4.0
splash_ms = 0
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 42 || cfg.Window.Width != 800 {
		t.Errorf("seed %d width %d", cfg.Seed, cfg.Window.Width)
	}
	if cfg.Window.Height != Default().Window.Height {
		t.Errorf("height %d, want the default", cfg.Window.Height)
	}
	if cfg.Game.FireRate != 4 || cfg.Game.SplashMillis != 0 {
		t.Errorf("fire rate %v splash %d", cfg.Game.FireRate, cfg.Game.SplashMillis)
	}
	if cfg.Game.MaxRadius != Default().Game.MaxRadius {
		t.Errorf("unset tuning value changed to %v", cfg.Game.MaxRadius)
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blaster.toml")
	if err := os.WriteFile(path, []byte("[game]\nfire_rat = 4.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "game.fire_rat") {
		t.Errorf("err = %v, want unknown key game.fire_rat", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Errorf("expected an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero window", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"loud", func(c *Config) { c.Audio.Volume = 2 }, "audio volume"},
		{"no boost", func(c *Config) { c.Game.BounceBoost = 0 }, "bounce boost"},
		{"radius range", func(c *Config) { c.Game.MaxRadius = 10 }, "radius range"},
		{"no fire", func(c *Config) { c.Game.FireRate = 0 }, "fire rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "blaster.toml")

	cfg := Default()
	cfg.Seed = 7
	cfg.Game.WaveBase = 3
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip changed the config:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestAssets_Path(t *testing.T) {
	a := Assets{Dir: "assets"}
	if got := a.Path("splash.png"); got != filepath.Join("assets", "splash.png") {
		t.Errorf("Path = %q", got)
	}
	if got := a.Path(""); got != "" {
		t.Errorf("empty name resolved to %q", got)
	}
}
