package fx

import (
	"reflect"
	"testing"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster"
)

func TestNewCrystal_StablePerID(t *testing.T) {
	a, b := NewCrystal(3, 5), NewCrystal(3, 5)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same id gave different crystals")
	}
	if reflect.DeepEqual(a, NewCrystal(4, 5)) {
		t.Errorf("different ids gave the same crystal")
	}
	if n := len(a.Spokes); n < 5 || n > 8 {
		t.Errorf("%d spokes, want 5..8", n)
	}
	if len(a.Cracks) != 5 {
		t.Errorf("%d cracks, want 5", len(a.Cracks))
	}
	for _, k := range a.Spokes {
		if k < 0.8 || k > 1.2 {
			t.Errorf("spoke %v outside 0.8..1.2", k)
		}
	}
}

func TestCrystals_Cache(t *testing.T) {
	c := NewCrystals(5)

	first := c.Get(1)
	if c.Get(1) != first {
		t.Errorf("look rebuilt on the second frame")
	}
	c.Get(2)
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}

	c.Handle(blaster.Event{Kind: blaster.EventTargetHit, TargetID: 1})
	if c.Len() != 2 {
		t.Errorf("a hit dropped a look")
	}
	c.Handle(blaster.Event{Kind: blaster.EventTargetDestroyed, TargetID: 1})
	if c.Len() != 1 {
		t.Errorf("destroyed target kept its look")
	}
	c.Handle(blaster.Event{Kind: blaster.EventSessionStarted})
	if c.Len() != 0 {
		t.Errorf("new session kept %d looks", c.Len())
	}
}
