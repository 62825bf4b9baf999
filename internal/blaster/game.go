package blaster

import "time"

// RestartDelay is how long the game-over screen ignores clicks. The restart
// button is not drawn before then.
const RestartDelay = 1200 * time.Millisecond

// Mode is the screen the game is on.
type Mode int

const (
	ModeSplash Mode = iota
	ModeTransition
	ModeTitle
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeSplash:
		return "splash"
	case ModeTransition:
		return "transition"
	case ModeTitle:
		return "title"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	}
	return "unknown"
}

// Game owns the screen state machine and the current session. All timers
// are polled against the clock accumulated from Tick, so the same Game runs
// under the ebiten loop, a test or the headless simulator.
type Game struct {
	tuning  Tuning
	metrics Metrics
	rng     Random

	mode      Mode
	clock     time.Duration
	modeSince time.Duration

	session *Session
	best    int

	events eventQueue
}

// NewGame creates a game on the splash screen for a width x height viewport.
func NewGame(width, height float64, t Tuning, rng Random) *Game {
	return &Game{
		tuning:  t,
		metrics: NewMetrics(width, height, t),
		rng:     rng,
		mode:    ModeSplash,
	}
}

// Tick advances the game by one frame. elapsed is the wall-clock time since
// the previous tick and only drives timers; kinematics advance one step per
// tick.
func (g *Game) Tick(in Input, elapsed time.Duration) {
	if elapsed > 0 {
		g.clock += elapsed
	}

	switch g.mode {
	case ModeSplash:
		if in.Trigger != nil || g.ModeElapsed() >= g.tuning.splashDuration() {
			g.setMode(ModeTransition)
		}
	case ModeTransition:
		if in.Trigger != nil || g.ModeElapsed() >= g.tuning.transitionDuration() {
			g.setMode(ModeTitle)
		}
	case ModeTitle:
		if clicked(in.Trigger, g.metrics.StartButton()) {
			g.start()
		}
	case ModePlaying:
		g.session.step(g.frame(), in)
		if g.session.Over {
			g.best = max(g.best, g.session.Score)
			g.setMode(ModeGameOver)
		}
	case ModeGameOver:
		if g.ModeElapsed() >= RestartDelay && clicked(in.Trigger, g.metrics.RestartButton()) {
			g.start()
		}
	}
}

// Resize rescales the playfield and every live entity.
func (g *Game) Resize(width, height float64) {
	next := NewMetrics(width, height, g.tuning)
	if g.session != nil {
		g.session.resize(g.metrics, next)
	}
	g.metrics = next
}

// DrainEvents returns the events emitted since the previous call.
func (g *Game) DrainEvents() []Event {
	return g.events.drain()
}

func (g *Game) Mode() Mode { return g.mode }

// Session is nil until the first game starts.
func (g *Game) Session() *Session { return g.session }

func (g *Game) Metrics() Metrics { return g.metrics }

func (g *Game) Tuning() Tuning { return g.tuning }

func (g *Game) Clock() time.Duration { return g.clock }

func (g *Game) BestScore() int { return g.best }

// ModeElapsed is the time spent in the current mode.
func (g *Game) ModeElapsed() time.Duration {
	return g.clock - g.modeSince
}

// TransitionProgress is how far the splash-to-title wipe has run, in [0, 1].
func (g *Game) TransitionProgress() float64 {
	switch g.mode {
	case ModeSplash:
		return 0
	case ModeTransition:
		d := g.tuning.transitionDuration()
		if d <= 0 {
			return 1
		}
		return clamp(float64(g.ModeElapsed())/float64(d), 0, 1)
	}
	return 1
}

func (g *Game) start() {
	g.session = newSession(g.frame())
	g.events.push(Event{Kind: EventSessionStarted, Level: g.session.Level})
	g.setMode(ModePlaying)
}

func (g *Game) setMode(m Mode) {
	g.mode = m
	g.modeSince = g.clock
	g.events.push(Event{Kind: EventModeChanged, Mode: m})
}

func (g *Game) frame() frame {
	return frame{
		now:    g.clock,
		m:      g.metrics,
		t:      g.tuning,
		rng:    g.rng,
		events: &g.events,
	}
}

func clicked(tr *Trigger, r Rect) bool {
	return tr != nil && tr.Kind == TriggerClick && r.Contains(tr.X, tr.Y)
}
