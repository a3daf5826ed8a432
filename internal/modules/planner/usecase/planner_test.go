package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gateprep/internal/modules/planner/usecase"
	syllabusout "gateprep/internal/modules/syllabus/adapter/out"
	syllabusdomain "gateprep/internal/modules/syllabus/domain"
	syllabusin "gateprep/internal/modules/syllabus/port/in"
	syllabusservice "gateprep/internal/modules/syllabus/service"
	syllabususecase "gateprep/internal/modules/syllabus/usecase"
	apperrors "gateprep/internal/platform/errors"
	"gateprep/internal/platform/kv"
)

func newSyllabus() syllabusin.Usecase {
	return syllabususecase.NewInteractor(syllabusservice.NewSyllabusService(
		syllabusout.NewEmbeddedCatalogSource(),
		syllabusout.NewKVModeStore(kv.NewMemoryStore()),
		syllabusdomain.ModeDA,
		nil,
	))
}

func TestPlanRejectsGoalsOutsideRange(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(newSyllabus(), nil)
	for _, goal := range []int{0, 29, 101, -5} {
		_, err := uc.Plan(context.Background(), goal)
		var verr *apperrors.ValidationError
		if !errors.As(err, &verr) || verr.Field != "goal marks" {
			t.Fatalf("goal %d: expected goal validation error, got %v", goal, err)
		}
	}
}

func TestPlanUsesActiveModeWeightage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	syllabus := newSyllabus()
	uc := usecase.NewInteractor(syllabus, nil)

	da, err := uc.Plan(ctx, 60)
	if err != nil {
		t.Fatalf("plan da: %v", err)
	}
	if da.Mode != "da" || len(da.Rows) != 8 || da.Rows[0].ID != "ga" || da.Rows[0].Rank != 1 {
		t.Fatalf("unexpected da plan %+v", da)
	}
	if da.TotalAllocated != 60 || da.SafetyNote != "" {
		t.Fatalf("expected full allocation without note, got %d %q", da.TotalAllocated, da.SafetyNote)
	}
	if da.Rows[0].Share != 20 {
		t.Fatalf("expected ga share 20%%, got %v", da.Rows[0].Share)
	}

	if _, err := syllabus.SetMode(ctx, "cse"); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	cse, err := uc.Plan(ctx, 95)
	if err != nil {
		t.Fatalf("plan cse: %v", err)
	}
	if cse.Mode != "cse" || len(cse.Rows) != 11 || cse.Rows[0].ID != "ga_cse" {
		t.Fatalf("unexpected cse plan head %+v", cse.Rows[0])
	}
	if cse.Shortfall == 0 || !strings.HasPrefix(cse.SafetyNote, "Note:") {
		t.Fatalf("expected a shortfall note at 95, got %d %q", cse.Shortfall, cse.SafetyNote)
	}
}
