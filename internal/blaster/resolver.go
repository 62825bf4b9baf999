package blaster

import (
	"math"

	"github.com/solarlune/resolv"
)

// tags let the grid tell target boxes from the projectile query
var (
	tagTarget = resolv.NewTag("target")
	tagQuery  = resolv.NewTag("query")
)

// broadPhase keeps the targets' bounding squares in a resolv grid so each
// projectile only runs the exact circle test against targets in nearby cells.
// The grid is padded on every side so targets and projectiles poking past the
// edge of the playfield still land in a cell. Shape positions are centres.
type broadPhase struct {
	space  *resolv.Space
	pad    float64
	query  resolv.IShape
	shapes map[*Target]resolv.IShape
	owners map[resolv.IShape]*Target
}

func newBroadPhase(m Metrics) *broadPhase {
	pad := 2 * m.MaxRadius
	cell := int(math.Max(math.Ceil(m.MaxRadius), 8))
	w := int(math.Ceil(m.Width + 2*pad))
	h := int(math.Ceil(m.Height + 2*pad))

	size := math.Max(m.ProjectileWidth, 1)
	query := resolv.NewRectangleTopLeft(0, 0, size, size)
	query.Tags().Set(tagQuery)

	b := &broadPhase{
		space:  resolv.NewSpace(w, h, cell, cell),
		pad:    pad,
		query:  query,
		shapes: make(map[*Target]resolv.IShape),
		owners: make(map[resolv.IShape]*Target),
	}
	b.space.Add(query)
	return b
}

func (b *broadPhase) add(t *Target) {
	sh := resolv.NewRectangleTopLeft(0, 0, 2*t.Radius, 2*t.Radius)
	sh.Tags().Set(tagTarget)
	sh.SetPosition(t.X+b.pad, t.Y+b.pad)
	b.space.Add(sh)
	b.shapes[t] = sh
	b.owners[sh] = t
}

func (b *broadPhase) move(t *Target) {
	if sh, ok := b.shapes[t]; ok {
		sh.SetPosition(t.X+b.pad, t.Y+b.pad)
	}
}

func (b *broadPhase) remove(t *Target) {
	sh, ok := b.shapes[t]
	if !ok {
		return
	}
	b.space.Remove(sh)
	delete(b.shapes, t)
	delete(b.owners, sh)
}

// candidates returns the targets registered in the cells around the
// projectile. A target can show up more than once when it spans several
// cells; nearestHit does not care.
func (b *broadPhase) candidates(p *Projectile) []*Target {
	b.query.SetPosition(p.X+b.pad, p.Y+b.pad)

	var out []*Target
	b.query.SelectTouchingCells(1).FilterShapes().ByTags(tagTarget).ForEach(func(sh resolv.IShape) bool {
		if t, ok := b.owners[sh]; ok {
			out = append(out, t)
		}
		return true
	})
	return out
}

// nearestHit picks the colliding target closest to the projectile, lowest
// ID first on an exact tie, so crediting never depends on container order.
func (b *broadPhase) nearestHit(p *Projectile) *Target {
	var best *Target
	bestDist := math.Inf(1)
	for _, t := range b.candidates(p) {
		if !p.CollidesWith(t) {
			continue
		}
		d := p.distanceTo(t)
		if d < bestDist || (d == bestDist && best != nil && t.ID < best.ID) {
			best, bestDist = t, d
		}
	}
	return best
}

// resolve pairs each projectile, in firing order, with at most one target.
// A hit always consumes the projectile; a destroyed target is removed before
// the next projectile is tested.
func (s *Session) resolve(f frame) {
	next := make([]*Projectile, 0, len(s.Projectiles))
	for _, p := range s.Projectiles {
		t := s.grid.nearestHit(p)
		if t == nil {
			next = append(next, p)
			continue
		}
		s.hit(p, t, f)
	}
	s.Projectiles = next
}

func (s *Session) hit(p *Projectile, t *Target, f frame) {
	res := t.ApplyDamage(p.Damage, f.m, f.rng)
	s.Hits++
	f.events.push(Event{Kind: EventTargetHit, X: res.X, Y: res.Y, Radius: res.Radius, TargetID: t.ID, Points: p.Damage})
	s.award(p.Damage, res.X, res.Y, ScoreTier(p.Damage), f)

	if !res.Destroyed {
		return
	}
	s.award(DestroyPoints(res.Radius, f.m, f.t), res.X, res.Y, TierBonus, f)
	s.removeTarget(t)
	s.Destroyed++
	f.events.push(Event{Kind: EventTargetDestroyed, X: res.X, Y: res.Y, Radius: res.Radius, TargetID: t.ID})
}

// DestroyPoints is the bonus for destroying a target of the given radius:
// a flat bonus plus a share proportional to its size.
func DestroyPoints(radius float64, m Metrics, t Tuning) int {
	return t.DestroyBonus + int(math.Floor(radius/m.MinRadius*t.SizeBonusFactor))
}
