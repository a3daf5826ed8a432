package domain_test

import (
	"testing"

	"gateprep/internal/modules/planner/domain"
)

// Same rows and order as the DA weightage table.
var daSubjects = []domain.Subject{
	{ID: "prob_stats", Marks: 17, Difficulty: 2},
	{ID: "prog_dsa", Marks: 17, Difficulty: 2},
	{ID: "ml", Marks: 11, Difficulty: 2},
	{ID: "linear_algebra", Marks: 10, Difficulty: 2},
	{ID: "db_warehousing", Marks: 8, Difficulty: 1},
	{ID: "calculus_opt", Marks: 8, Difficulty: 3},
	{ID: "ai", Marks: 11, Difficulty: 3},
	{ID: "ga", Marks: 15, Difficulty: 1},
}

func TestPlanDAForSixty(t *testing.T) {
	t.Parallel()
	plan := domain.Plan(60, daSubjects)
	want := []struct {
		id        string
		allocated int
		priority  domain.Priority
	}{
		{"ga", 12, domain.PriorityHigh},
		{"prob_stats", 14, domain.PriorityHigh},
		{"prog_dsa", 14, domain.PriorityHigh},
		{"db_warehousing", 6, domain.PriorityHigh},
		{"ml", 9, domain.PriorityHigh},
		{"linear_algebra", 5, domain.PriorityHigh},
		{"ai", 0, domain.PriorityOptional},
		{"calculus_opt", 0, domain.PriorityOptional},
	}
	if len(plan) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(plan))
	}
	for i, w := range want {
		got := plan[i]
		if got.Subject.ID != w.id || got.Allocated != w.allocated || got.Priority != w.priority {
			t.Fatalf("row %d: expected %s %d %s, got %s %d %s", i, w.id, w.allocated, w.priority, got.Subject.ID, got.Allocated, got.Priority)
		}
	}
	summary := domain.Summarize(60, plan)
	if summary.TotalAllocated != 60 || summary.SafetyNote || summary.Shortfall != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestPlanNeverOverAllocatesAndZeroesTrail(t *testing.T) {
	t.Parallel()
	for target := 1; target <= 120; target++ {
		plan := domain.Plan(target, daSubjects)
		if len(plan) != len(daSubjects) {
			t.Fatalf("target %d: every subject must appear once", target)
		}
		sum := 0
		seenZero := false
		for _, a := range plan {
			sum += a.Allocated
			if a.Allocated > a.Subject.MaxSafe() {
				t.Fatalf("target %d: %s over its safe maximum", target, a.Subject.ID)
			}
			if a.Allocated == 0 {
				seenZero = true
				if a.Priority != domain.PriorityOptional {
					t.Fatalf("target %d: zero allocation must be optional", target)
				}
			} else if seenZero {
				t.Fatalf("target %d: %s allocated after a zero row", target, a.Subject.ID)
			}
		}
		if sum > target {
			t.Fatalf("target %d: allocated %d", target, sum)
		}
	}
}

func TestPlanIsMonotonic(t *testing.T) {
	t.Parallel()
	prev := map[string]int{}
	for target := 30; target <= 100; target++ {
		for _, a := range domain.Plan(target, daSubjects) {
			if a.Allocated < prev[a.Subject.ID] {
				t.Fatalf("target %d: %s dropped from %d to %d", target, a.Subject.ID, prev[a.Subject.ID], a.Allocated)
			}
			prev[a.Subject.ID] = a.Allocated
		}
	}
}

func TestPlanShortfallAboveSafeCapacity(t *testing.T) {
	t.Parallel()
	plan := domain.Plan(100, daSubjects)
	summary := domain.Summarize(100, plan)
	if summary.TotalAllocated != 78 || summary.Shortfall != 22 || !summary.SafetyNote {
		t.Fatalf("unexpected summary %+v", summary)
	}
	for _, a := range plan {
		if a.Allocated != a.Subject.MaxSafe() {
			t.Fatalf("%s should be at its safe maximum", a.Subject.ID)
		}
	}
	if got := plan[0].Share(100); got != 12 {
		t.Fatalf("expected ga share 12%%, got %v", got)
	}
}

func TestPlanNonPositiveTargetHasNoPlan(t *testing.T) {
	t.Parallel()
	if plan := domain.Plan(0, daSubjects); plan != nil {
		t.Fatalf("expected no plan for 0, got %+v", plan)
	}
	if plan := domain.Plan(-10, daSubjects); plan != nil {
		t.Fatalf("expected no plan for -10, got %+v", plan)
	}
}
