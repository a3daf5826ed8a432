package usecase_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"gateprep/internal/modules/timeline/usecase"
	"gateprep/internal/platform/clock"
	apperrors "gateprep/internal/platform/errors"
)

func TestPlanPicksTemplateFromToday(t *testing.T) {
	t.Parallel()
	today := clock.Fixed(time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC))
	uc := usecase.NewInteractor(today)

	cases := []struct {
		year     int
		template string
		months   float64
	}{
		{2026, "crash", 4},
		{2027, "one_year", 16},
		{2028, "two_year", 28},
	}
	for _, c := range cases {
		out, err := uc.Plan(context.Background(), c.year)
		if err != nil {
			t.Fatalf("plan %d: %v", c.year, err)
		}
		if out.Template != c.template || out.MonthsLeft != c.months || len(out.Phases) != 3 {
			t.Fatalf("year %d: expected %s at %v months, got %s at %v", c.year, c.template, c.months, out.Template, out.MonthsLeft)
		}
		if !strings.HasSuffix(out.Heading, "for GATE "+strconv.Itoa(c.year)) {
			t.Fatalf("unexpected heading %q", out.Heading)
		}
	}
}

func TestPlanRejectsYearsOutsideRange(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(clock.Fixed(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)))
	for _, year := range []int{2025, 2036} {
		if _, err := uc.Plan(context.Background(), year); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("year %d: expected invalid input, got %v", year, err)
		}
	}
}

func TestPlanRejectsClosedWindow(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(clock.Fixed(time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)))
	if _, err := uc.Plan(context.Background(), 2026); !errors.Is(err, apperrors.ErrExamWindowClosed) {
		t.Fatalf("expected closed window, got %v", err)
	}
}
