package domain_test

import (
	"testing"
	"time"

	"gateprep/internal/modules/timeline/domain"
)

func TestPickTemplateBoundaries(t *testing.T) {
	t.Parallel()
	cases := []struct {
		months float64
		want   domain.Template
	}{
		{36, domain.TwoYear},
		{24.0, domain.TwoYear},
		{23.9, domain.OneYear},
		{12, domain.OneYear},
		{11.9, domain.NineMonth},
		{6, domain.NineMonth},
		{5.99, domain.Crash},
		{0, domain.Crash},
	}
	for _, c := range cases {
		if got := domain.PickTemplate(c.months); got != c.want {
			t.Fatalf("PickTemplate(%v) = %s, want %s", c.months, got, c.want)
		}
	}
}

func TestMonthsBetween(t *testing.T) {
	t.Parallel()
	d := func(y int, m time.Month, day int) time.Time { return time.Date(y, m, day, 12, 0, 0, 0, time.UTC) }
	cases := []struct {
		start, end time.Time
		want       float64
	}{
		{d(2025, 1, 15), d(2027, 2, 1), 25},
		{d(2025, 1, 1), d(2027, 2, 1), 25},
		{d(2025, 1, 1), d(2027, 2, 20), 25.3},
		{d(2026, 3, 10), d(2026, 2, 1), 0},
		{d(2026, 2, 1), d(2026, 2, 1), 0},
	}
	for _, c := range cases {
		if got := domain.MonthsBetween(c.start, c.end); got != c.want {
			t.Fatalf("MonthsBetween(%s, %s) = %v, want %v", c.start.Format("2006-01-02"), c.end.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestEveryTemplateHasThreePhases(t *testing.T) {
	t.Parallel()
	for _, tpl := range []domain.Template{domain.TwoYear, domain.OneYear, domain.NineMonth, domain.Crash} {
		phases := domain.Phases(tpl)
		if len(phases) != 3 {
			t.Fatalf("%s: expected 3 phases, got %d", tpl, len(phases))
		}
		for _, p := range phases {
			if p.Title == "" || p.Period == "" || len(p.Focus) == 0 {
				t.Fatalf("%s: incomplete phase %+v", tpl, p)
			}
		}
		if domain.Headline(tpl) == "" {
			t.Fatalf("%s: missing headline", tpl)
		}
	}
	phases := domain.Phases(domain.TwoYear)
	phases[0].Focus[0] = "mutated"
	if domain.Phases(domain.TwoYear)[0].Focus[0] == "mutated" {
		t.Fatalf("phases must be returned as copies")
	}
}
