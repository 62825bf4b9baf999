package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/assets"
	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster"
	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/config"
	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/screen"
)

const version = "0.1.0"

var revision = "dev"

func main() {
	log.SetPrefix("[blaster] ")

	configPath := flag.String("config", "", "path to a TOML config file")
	writeConfig := flag.String("write-config", "", "write the default config to this path and exit")
	flag.Parse()

	if *writeConfig != "" {
		if err := config.Save(*writeConfig, config.Default()); err != nil {
			log.Fatalf("Configuration error: %v", err)
		}
		log.Printf("Wrote default config to %s", *writeConfig)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Configuration error: %v", err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Starting Ball Blaster v%s (revision %s, seed %d)...", version, revision, seed)

	game := blaster.NewGame(float64(cfg.Window.Width), float64(cfg.Window.Height), cfg.Game, rand.New(rand.NewSource(seed)))
	scr := screen.New(game, cfg.Audio, rand.New(rand.NewSource(seed+1)))

	// Images are optional; the screen draws its own background until they
	// arrive, or for good if they never do.
	go func() {
		images, err := assets.NewLoader().LoadAll(context.Background(), map[string]string{
			screen.AssetSplash:     cfg.Assets.Path(cfg.Assets.Splash),
			screen.AssetBackground: cfg.Assets.Path(cfg.Assets.Background),
		})
		if err != nil {
			log.Printf("Failed to load assets: %v. Using fallback art.", err)
		}
		scr.SetImages(images)
	}()

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(scr); err != nil {
		log.Fatal(err)
	}
}
