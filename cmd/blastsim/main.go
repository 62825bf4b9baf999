// Command blastsim plays Ball Blaster headlessly with a simple autopilot and
// reports how far it gets. It is handy for checking tuning changes without
// opening a window.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster"
	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/config"
)

const tick = time.Second / 60

func main() {
	log.SetPrefix("[blastsim] ")

	configPath := flag.String("config", "", "path to a TOML config file")
	games := flag.Int("games", 5, "number of games to play")
	maxFrames := flag.Int("frames", 60*60*5, "frame limit per game")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Configuration error: %v", err)
		}
	}

	total := 0
	for i := range *games {
		rng := rand.New(rand.NewSource(*seed + int64(i)))
		g := blaster.NewGame(float64(cfg.Window.Width), float64(cfg.Window.Height), cfg.Game, rng)

		r := play(g, *maxFrames)
		total += r.Score
		log.Printf("Game %d (%s): score %d, level %d, rank %s, accuracy %.0f%%, %d frames%s",
			i+1, r.ID, r.Score, r.Level, blaster.Rank(r.Score), r.Accuracy*100, r.Frames, r.note())
	}
	if *games > 0 {
		log.Printf("Average score over %d games: %d", *games, total / *games)
	}
}

type result struct {
	ID       string
	Score    int
	Level    int
	Accuracy float64
	Frames   int
	Survived bool
}

func (r result) note() string {
	if r.Survived {
		return " (frame limit)"
	}
	return ""
}

// play skips the intro, starts a session and steers the launcher under the
// lowest target until the game ends or the frame limit is hit.
func play(g *blaster.Game, maxFrames int) result {
	var r result
	for frame := 0; frame < maxFrames; frame++ {
		var in blaster.Input

		switch g.Mode() {
		case blaster.ModeSplash, blaster.ModeTransition:
			in.Trigger = blaster.Key()
		case blaster.ModeTitle:
			b := g.Metrics().StartButton()
			in.Trigger = blaster.Click(b.CX, b.CY)
		case blaster.ModePlaying:
			in.PointerX, in.HasPointer = aim(g.Session())
		case blaster.ModeGameOver:
			return summarize(g.Session(), frame, false)
		}

		g.Tick(in, tick)
		r.Frames = frame + 1
	}
	if s := g.Session(); s != nil {
		return summarize(s, r.Frames, true)
	}
	return r
}

func aim(s *blaster.Session) (float64, bool) {
	var lowest *blaster.Target
	for _, t := range s.Targets {
		if lowest == nil || t.Y > lowest.Y {
			lowest = t
		}
	}
	if lowest == nil {
		return 0, false
	}
	// lead the target a little in its direction of travel
	return lowest.X + lowest.DX*10, true
}

func summarize(s *blaster.Session, frames int, survived bool) result {
	return result{
		ID:       s.ID,
		Score:    s.Score,
		Level:    s.Level,
		Accuracy: s.Accuracy(),
		Frames:   frames,
		Survived: survived,
	}
}
