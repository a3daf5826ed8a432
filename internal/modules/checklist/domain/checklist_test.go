package domain_test

import (
	"testing"

	"gateprep/internal/modules/checklist/domain"
)

func TestProgressEmptyIsZero(t *testing.T) {
	t.Parallel()
	p := domain.NewProgress(0, 0)
	if p.Percent != 0 || p.Total != 0 {
		t.Fatalf("expected zero progress, got %+v", p)
	}
}

func TestProgressRoundsHalfUp(t *testing.T) {
	t.Parallel()
	cases := []struct{ done, total, want int }{
		{1, 3, 33}, {2, 3, 67}, {1, 8, 13}, {5, 5, 100}, {0, 7, 0},
	}
	for _, c := range cases {
		if got := domain.NewProgress(c.done, c.total).Percent; got != c.want {
			t.Fatalf("%d/%d: expected %d%%, got %d%%", c.done, c.total, c.want, got)
		}
	}
}

func TestSetReturnsCopy(t *testing.T) {
	t.Parallel()
	base := domain.State{"ml_0": true}
	next := base.Set("ml_1", true).Set("ml_0", false)
	if !base.Done("ml_0") || base.Done("ml_1") {
		t.Fatalf("base state mutated: %+v", base)
	}
	if next.Done("ml_0") || !next.Done("ml_1") {
		t.Fatalf("unexpected next state: %+v", next)
	}
	if _, ok := next["ml_0"]; !ok {
		t.Fatalf("explicit false must be kept")
	}
	p := domain.Measure(next, []string{"ml_0", "ml_1", "ml_2", "ml_3"})
	if p.Done != 1 || p.Total != 4 || p.Percent != 25 {
		t.Fatalf("unexpected progress %+v", p)
	}
}
