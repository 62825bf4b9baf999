package blaster

import (
	"time"

	"github.com/google/uuid"
)

// Input is what the presentation layer feeds the core each tick.
type Input struct {
	// PointerX is the horizontal pointer or touch position. It is only used
	// when HasPointer is set.
	PointerX   float64
	HasPointer bool

	// Trigger is a click, tap or key press, nil when none happened this tick.
	Trigger *Trigger

	// Fire requests a manual shot while playing.
	Fire bool
}

// TriggerKind distinguishes positional triggers from key presses.
type TriggerKind int

const (
	TriggerClick TriggerKind = iota
	TriggerKey
)

// Trigger is a discrete input event. X and Y are only meaningful for clicks.
type Trigger struct {
	Kind TriggerKind
	X, Y float64
}

// Click is a convenience constructor for a click or tap trigger.
func Click(x, y float64) *Trigger {
	return &Trigger{Kind: TriggerClick, X: x, Y: y}
}

// Key is a convenience constructor for a key trigger.
func Key() *Trigger {
	return &Trigger{Kind: TriggerKey}
}

// Session is the state of one game from start to game over. It is owned by
// a single Game and only mutated inside its Tick.
type Session struct {
	ID string

	Score       int
	Level       int
	BulletPower int

	Launcher    *Launcher
	Targets     []*Target
	Projectiles []*Projectile

	ShotsFired int
	Hits       int
	Destroyed  int

	// Over latches once a target reaches the launcher.
	Over bool

	nextID int
	grid   *broadPhase
}

// frame bundles everything a session step reads besides the session itself.
type frame struct {
	now    time.Duration
	m      Metrics
	t      Tuning
	rng    Random
	events *eventQueue
}

func newSession(f frame) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		Level:       1,
		BulletPower: f.t.BulletPower,
		Launcher:    NewLauncher(f.m, f.t.FireRate),
		grid:        newBroadPhase(f.m),
	}
	s.spawnWave(f)
	return s
}

// step advances a playing session by one frame: fire, move, resolve hits,
// check the launcher, then roll the wave.
func (s *Session) step(f frame, in Input) {
	if s.Over {
		return
	}

	aim := s.Launcher.X
	if in.HasPointer {
		aim = in.PointerX
	}
	if p := s.Launcher.Advance(aim, f.now, f.m, f.t, s.BulletPower); p != nil {
		s.addProjectile(p, f)
	}
	if in.Fire {
		s.addProjectile(s.Launcher.FireManual(f.m, f.t, s.BulletPower), f)
	}

	next := make([]*Projectile, 0, len(s.Projectiles))
	for _, p := range s.Projectiles {
		p.Advance()
		if p.OutOfBounds() {
			continue
		}
		next = append(next, p)
	}
	s.Projectiles = next

	for _, t := range s.Targets {
		if c := t.Advance(f.m); c&ContactChip != 0 {
			f.events.push(Event{Kind: EventImpact, X: t.X, Y: t.Y + t.Radius, Radius: t.Radius, TargetID: t.ID})
		}
		s.grid.move(t)
	}

	s.resolve(f)

	for _, t := range s.Targets {
		if s.Launcher.CheckCollision(t) {
			s.Over = true
			f.events.push(Event{Kind: EventGameOver, X: t.X, Y: t.Y, Radius: t.Radius, TargetID: t.ID, Points: s.Score, Level: s.Level})
			return
		}
	}

	if len(s.Targets) == 0 {
		s.nextWave(f)
	}
}

func (s *Session) addProjectile(p *Projectile, f frame) {
	s.Projectiles = append(s.Projectiles, p)
	s.ShotsFired++
	f.events.push(Event{Kind: EventShot, X: p.X, Y: p.Y})
}

func (s *Session) addTarget(t *Target) {
	s.Targets = append(s.Targets, t)
	s.grid.add(t)
}

func (s *Session) removeTarget(t *Target) {
	for i, other := range s.Targets {
		if other == t {
			s.Targets = append(s.Targets[:i], s.Targets[i+1:]...)
			break
		}
	}
	s.grid.remove(t)
}

func (s *Session) award(points int, x, y float64, tier Tier, f frame) {
	s.Score += points
	f.events.push(Event{Kind: EventScore, X: x, Y: y, Points: points, Tier: tier})
}

// Accuracy is the share of fired shots that hit a target.
func (s *Session) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.ShotsFired)
}

func (s *Session) resize(from, to Metrics) {
	s.Launcher.Resize(to)
	for _, t := range s.Targets {
		t.Resize(from, to)
	}
	for _, p := range s.Projectiles {
		p.Speed = to.ProjectileSpeed
		p.HalfWidth = to.ProjectileWidth / 2
		p.X = clamp(p.X, 0, to.Width)
	}
	s.grid = newBroadPhase(to)
	for _, t := range s.Targets {
		s.grid.add(t)
	}
}
