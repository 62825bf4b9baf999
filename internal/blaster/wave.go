package blaster

import "math"

// WaveSize is the number of targets spawned for a level.
func WaveSize(level int, t Tuning) int {
	return min(level, t.WaveGrowthCap) + t.WaveBase
}

// nextWave is called the moment the target set empties.
func (s *Session) nextWave(f frame) {
	s.Level++
	s.BulletPower += f.t.PowerPerLevel
	f.events.push(Event{Kind: EventLevelUp, X: f.m.Width / 2, Y: f.m.Height / 2, Level: s.Level})
	s.spawnWave(f)
}

// spawnWave spreads the level's targets evenly across the width with some
// jitter. Later levels start higher, which leaves less room to fall before
// the first bounce, and carry health proportional to level and size.
func (s *Session) spawnWave(f frame) {
	m, t, rng := f.m, f.t, f.rng

	n := WaveSize(s.Level, t)
	seg := m.Width / float64(n+1)
	for i := range n {
		r := between(rng, m.MinRadius, m.MaxRadius)
		x := seg*float64(i+1) + between(rng, -seg/3, seg/3)

		minY := r * 2
		maxY := math.Max(m.Height-m.FloorMargin-r*3, minY)
		y := between(rng, minY, maxY*0.3) - float64(s.Level-1)*t.LevelLift*m.Scale
		y = clamp(y, minY, maxY)

		health := int(math.Floor(between(rng, 2, 5) * float64(s.Level) * r / m.MaxRadius))

		tg := NewTarget(s.nextID, clamp(x, r, math.Max(m.Width-r, r)), y, r, health, m, t)
		tg.DY = between(rng, 0.1, 0.5) * m.Scale
		tg.DX = between(rng, 0.3, 0.8) * m.Scale * sign(rng)
		s.nextID++
		s.addTarget(tg)
	}
}
