package blaster

// EventKind identifies a cosmetic or lifecycle event.
type EventKind int

const (
	EventShot EventKind = iota
	EventImpact
	EventTargetHit
	EventTargetDestroyed
	EventScore
	EventLevelUp
	EventSessionStarted
	EventGameOver
	EventModeChanged
)

func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventImpact:
		return "impact"
	case EventTargetHit:
		return "target-hit"
	case EventTargetDestroyed:
		return "target-destroyed"
	case EventScore:
		return "score"
	case EventLevelUp:
		return "level-up"
	case EventSessionStarted:
		return "session-started"
	case EventGameOver:
		return "game-over"
	case EventModeChanged:
		return "mode-changed"
	}
	return "unknown"
}

// Tier picks the colour of a floating score indicator.
type Tier int

const (
	TierSmall Tier = iota
	TierMedium
	TierLarge
	TierHuge
	TierBonus
)

// ScoreTier maps a point value to its indicator tier.
func ScoreTier(points int) Tier {
	switch {
	case points >= 20:
		return TierHuge
	case points >= 10:
		return TierLarge
	case points >= 5:
		return TierMedium
	}
	return TierSmall
}

// Event is emitted by the core for the presentation layer. Fields not
// relevant to a kind are zero. Dropping events never affects gameplay.
type Event struct {
	Kind EventKind

	X, Y   float64
	Radius float64

	TargetID int
	Points   int
	Tier     Tier
	Level    int
	Mode     Mode
}

type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(e Event) {
	q.events = append(q.events, e)
}

func (q *eventQueue) drain() []Event {
	out := q.events
	q.events = nil
	return out
}
