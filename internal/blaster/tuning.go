package blaster

import "time"

// Tuning holds the unscaled gameplay constants. Sizes and speeds are given at
// the reference resolution and multiplied by the viewport scale in Metrics.
type Tuning struct {
	ReferenceWidth  float64 `toml:"reference_width"`
	ReferenceHeight float64 `toml:"reference_height"`

	Gravity           float64 `toml:"gravity"`
	GravityFactor     float64 `toml:"gravity_factor"`
	BounceDampening   float64 `toml:"bounce_dampening"`
	BounceBoost       float64 `toml:"bounce_boost"`
	WallDamping       float64 `toml:"wall_damping"`
	MinBounceVelocity float64 `toml:"min_bounce_velocity"`
	CrackVelocity     float64 `toml:"crack_velocity"`
	FloorMargin       float64 `toml:"floor_margin"`
	MaxCracks         int     `toml:"max_cracks"`

	MinRadius float64 `toml:"min_radius"`
	MaxRadius float64 `toml:"max_radius"`

	LauncherWidth  float64 `toml:"launcher_width"`
	LauncherHeight float64 `toml:"launcher_height"`
	FireRate       float64 `toml:"fire_rate"`
	BulletPower    int     `toml:"bullet_power"`
	PowerPerLevel  int     `toml:"power_per_level"`

	ProjectileSpeed float64 `toml:"projectile_speed"`
	ProjectileWidth float64 `toml:"projectile_width"`
	WobbleAmplitude float64 `toml:"wobble_amplitude"`

	DestroyBonus    int     `toml:"destroy_bonus"`
	SizeBonusFactor float64 `toml:"size_bonus_factor"`
	WaveBase        int     `toml:"wave_base"`
	WaveGrowthCap   int     `toml:"wave_growth_cap"`
	LevelLift       float64 `toml:"level_lift"`

	SplashMillis     int64 `toml:"splash_ms"`
	TransitionMillis int64 `toml:"transition_ms"`
}

// DefaultTuning returns the constants the game ships with.
func DefaultTuning() Tuning {
	return Tuning{
		ReferenceWidth:  400,
		ReferenceHeight: 600,

		Gravity:           0.1,
		GravityFactor:     0.8,
		BounceDampening:   0.8,
		BounceBoost:       0.05,
		WallDamping:       0.99,
		MinBounceVelocity: 3,
		CrackVelocity:     5,
		FloorMargin:       100,
		MaxCracks:         5,

		MinRadius: 30,
		MaxRadius: 50,

		LauncherWidth:  50,
		LauncherHeight: 30,
		FireRate:       8,
		BulletPower:    5,

		ProjectileSpeed: 10,
		ProjectileWidth: 8,
		WobbleAmplitude: 0.3,

		DestroyBonus:    25,
		SizeBonusFactor: 10,
		WaveBase:        2,
		WaveGrowthCap:   6,
		LevelLift:       50,

		SplashMillis:     3000,
		TransitionMillis: 1000,
	}
}

// BounceFactor is the floor rebound multiplier. It always exceeds the
// dampening constant because BounceBoost is required to be positive.
func (t Tuning) BounceFactor() float64 {
	return t.BounceDampening + t.BounceBoost
}

// FireInterval is the minimum time between two shots.
func (t Tuning) FireInterval() time.Duration {
	return fireInterval(t.FireRate)
}

func (t Tuning) splashDuration() time.Duration {
	return time.Duration(t.SplashMillis) * time.Millisecond
}

func (t Tuning) transitionDuration() time.Duration {
	return time.Duration(t.TransitionMillis) * time.Millisecond
}

func fireInterval(rate float64) time.Duration {
	if rate <= 0 {
		return time.Duration(1<<63 - 1)
	}
	return time.Duration(float64(time.Second) / rate)
}
