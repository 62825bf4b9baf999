package blaster

import (
	"math"
	"testing"
	"time"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster/mocks"
	"go.uber.org/mock/gomock"
)

type fixedRandom float64

func (r fixedRandom) Float64() float64 { return float64(r) }

func still() Tuning {
	t := DefaultTuning()
	t.Gravity = 0
	return t
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTarget_FloorBounceKeepsEnergy(t *testing.T) {
	tu := still()
	m := NewMetrics(400, 600, tu)

	tg := NewTarget(0, 200, 465, 30, 3, m, tu)
	tg.DY = 10

	c := tg.Advance(m)
	if c&ContactFloor == 0 {
		t.Fatalf("expected floor contact, got %b", c)
	}
	if tg.Y != m.FloorY(30) {
		t.Errorf("y = %v, want clamped to %v", tg.Y, m.FloorY(30))
	}
	if !near(tg.DY, -10*tu.BounceFactor()) {
		t.Errorf("dy = %v, want %v", tg.DY, -10*tu.BounceFactor())
	}
	if tu.BounceFactor() <= tu.BounceDampening {
		t.Errorf("bounce factor %v does not exceed dampening", tu.BounceFactor())
	}
	if c&ContactChip == 0 || tg.Cracks != 1 {
		t.Errorf("fast bounce should chip: contact %b cracks %d", c, tg.Cracks)
	}
}

func TestTarget_SlowBounceUsesMinimum(t *testing.T) {
	tu := still()
	m := NewMetrics(400, 600, tu)

	tg := NewTarget(0, 200, 469.5, 30, 3, m, tu)
	tg.DY = 1

	c := tg.Advance(m)
	if tg.DY != -m.MinBounce {
		t.Errorf("dy = %v, want %v", tg.DY, -m.MinBounce)
	}
	if c&ContactChip != 0 {
		t.Errorf("slow bounce should not chip")
	}
}

func TestTarget_WallReflectsWithDamping(t *testing.T) {
	tu := still()
	m := NewMetrics(400, 600, tu)

	tg := NewTarget(0, 395, 100, 30, 3, m, tu)
	tg.DX = 10

	c := tg.Advance(m)
	if c&ContactWall == 0 {
		t.Fatalf("expected wall contact")
	}
	if tg.X != 370 {
		t.Errorf("x = %v, want 370", tg.X)
	}
	if !near(tg.DX, -9.9) {
		t.Errorf("dx = %v, want -9.9", tg.DX)
	}
}

func TestTarget_CracksAreCapped(t *testing.T) {
	tu := still()
	m := NewMetrics(400, 600, tu)
	tg := NewTarget(0, 200, 100, 30, 100, m, tu)

	for range 20 {
		tg.ApplyDamage(3, m, fixedRandom(0.9))
	}
	if tg.Cracks != tu.MaxCracks {
		t.Errorf("cracks = %d, want %d", tg.Cracks, tu.MaxCracks)
	}
}

func TestTarget_ApplyDamage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tu := DefaultTuning()
	m := NewMetrics(400, 600, tu)
	rng := mocks.NewMockRandom(ctrl)

	tg := NewTarget(7, 120, 80, 30, 4, m, tu)

	// a weak hit rolls for a crack
	rng.EXPECT().Float64().Return(0.1)
	res := tg.ApplyDamage(1, m, rng)
	if res.Destroyed {
		t.Fatalf("destroyed with health %d", tg.Health)
	}
	if tg.Health != 3 || tg.Cracks != 1 || tg.Flash != 1 {
		t.Errorf("health %d cracks %d flash %v", tg.Health, tg.Cracks, tg.Flash)
	}

	// a strong hit cracks without rolling
	res = tg.ApplyDamage(10, m, rng)
	if !res.Destroyed {
		t.Fatalf("expected destroyed")
	}
	if tg.Health != 0 {
		t.Errorf("health = %d, want saturated at 0", tg.Health)
	}
	if res.X != 120 || res.Y != 80 || res.Radius != 30 {
		t.Errorf("result geometry %+v", res)
	}
}

func TestNewTarget_ClampsHealth(t *testing.T) {
	tu := DefaultTuning()
	m := NewMetrics(400, 600, tu)
	if tg := NewTarget(0, 0, 0, 30, 0, m, tu); tg.Health != 1 || tg.OriginalHealth != 1 {
		t.Errorf("health = %d/%d, want 1/1", tg.Health, tg.OriginalHealth)
	}
}

func TestProjectile_AdvanceAndBounds(t *testing.T) {
	tu := DefaultTuning()
	m := NewMetrics(400, 600, tu)

	p := NewProjectile(100, 15, 5, m, tu)
	p.Advance()
	if p.Y != 5 || p.OutOfBounds() {
		t.Fatalf("y = %v, out = %v", p.Y, p.OutOfBounds())
	}
	if math.Abs(p.X-100) > tu.WobbleAmplitude {
		t.Errorf("wobble moved x to %v", p.X)
	}
	p.Advance()
	if !p.OutOfBounds() {
		t.Errorf("y = %v should be out of bounds", p.Y)
	}
}

func TestProjectile_CollidesWith(t *testing.T) {
	tu := DefaultTuning()
	m := NewMetrics(400, 600, tu)
	tg := NewTarget(0, 100, 100, 30, 1, m, tu)

	if !NewProjectile(100, 125, 1, m, tu).CollidesWith(tg) {
		t.Errorf("expected hit at distance 25")
	}
	if NewProjectile(100, 134, 1, m, tu).CollidesWith(tg) {
		t.Errorf("distance equal to radius plus half width is not a hit")
	}
}

func TestLauncher_Cadence(t *testing.T) {
	tu := DefaultTuning()
	m := NewMetrics(400, 600, tu)
	l := NewLauncher(m, tu.FireRate)

	p := l.Fire(0, m, tu, 5)
	if p == nil {
		t.Fatalf("first shot should fire immediately")
	}
	if p.X != l.X || p.Damage != 5 {
		t.Errorf("projectile %+v", p)
	}
	if l.Recoil == 0 || l.Heat != 10 {
		t.Errorf("recoil %v heat %v", l.Recoil, l.Heat)
	}
	if p = l.Fire(10*time.Millisecond, m, tu, 5); p != nil {
		t.Errorf("fired inside the interval")
	}
	if p = l.Fire(tu.FireInterval(), m, tu, 5); p == nil {
		t.Errorf("did not fire after the interval")
	}
}

func TestLauncher_FireManualIgnoresCadence(t *testing.T) {
	tu := DefaultTuning()
	m := NewMetrics(400, 600, tu)
	l := NewLauncher(m, tu.FireRate)

	if l.Fire(0, m, tu, 5) == nil {
		t.Fatalf("first shot should fire immediately")
	}
	for range 3 {
		if p := l.FireManual(m, tu, 5); p == nil || p.X != l.X {
			t.Fatalf("manual shot = %+v", p)
		}
	}
	if l.Fire(10*time.Millisecond, m, tu, 5) != nil {
		t.Errorf("manual shots opened the cadence early")
	}
	if l.Fire(tu.FireInterval(), m, tu, 5) == nil {
		t.Errorf("manual shots pushed back the cadence")
	}
}

func TestLauncher_AimClamped(t *testing.T) {
	tu := DefaultTuning()
	m := NewMetrics(400, 600, tu)
	l := NewLauncher(m, tu.FireRate)

	l.Aim(-50, m)
	if l.X != l.Width/2 {
		t.Errorf("x = %v, want %v", l.X, l.Width/2)
	}
	l.Aim(1000, m)
	if l.X != m.Width-l.Width/2 {
		t.Errorf("x = %v, want %v", l.X, m.Width-l.Width/2)
	}
}

func TestLauncher_CheckCollision(t *testing.T) {
	tu := DefaultTuning()
	m := NewMetrics(400, 600, tu)
	l := NewLauncher(m, tu.FireRate)

	tests := []struct {
		name   string
		x, y   float64
		radius float64
		want   bool
	}{
		{"above edge", l.X, l.Y - l.Height/2 - 29, 30, true},
		{"clear above", l.X, l.Y - l.Height/2 - 31, 30, false},
		{"corner inside", l.X + l.Width/2 + 20, l.Y - l.Height/2 - 20, 30, true},
		{"corner outside", l.X + l.Width/2 + 20, l.Y - l.Height/2 - 20, 28, false},
		{"far away", 0, 0, 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := NewTarget(0, tt.x, tt.y, tt.radius, 1, m, tu)
			if got := l.CheckCollision(tg); got != tt.want {
				t.Errorf("CheckCollision = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMetrics_Scale(t *testing.T) {
	tu := DefaultTuning()
	m := NewMetrics(200, 600, tu)

	if m.Scale != 0.5 {
		t.Fatalf("scale = %v, want 0.5", m.Scale)
	}
	if m.MinRadius != 15 || m.MaxRadius != 25 {
		t.Errorf("radii = %v..%v", m.MinRadius, m.MaxRadius)
	}
	if m.LauncherWidth != 25 || m.LauncherHeight != 15 || m.ProjectileSpeed != 5 {
		t.Errorf("launcher %vx%v speed %v", m.LauncherWidth, m.LauncherHeight, m.ProjectileSpeed)
	}
}

func TestRect_ContainsIsStrict(t *testing.T) {
	r := Rect{CX: 100, CY: 100, W: 20, H: 10}
	if !r.Contains(100, 100) {
		t.Errorf("centre not contained")
	}
	if r.Contains(110, 100) || r.Contains(100, 95) {
		t.Errorf("edge counted as inside")
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "ROOKIE"},
		{99, "ROOKIE"},
		{100, "NOVICE"},
		{500, "SHARP SHOOTER"},
		{1999, "MASTER BLASTER"},
		{2000, "LEGENDARY"},
	}
	for _, tt := range tests {
		if got := Rank(tt.score); got != tt.want {
			t.Errorf("Rank(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreTier(t *testing.T) {
	if ScoreTier(1) != TierSmall || ScoreTier(5) != TierMedium || ScoreTier(10) != TierLarge || ScoreTier(20) != TierHuge {
		t.Errorf("unexpected tiers")
	}
}
