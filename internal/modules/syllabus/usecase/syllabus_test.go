package usecase_test

import (
	"context"
	"errors"
	"testing"

	syllabusout "gateprep/internal/modules/syllabus/adapter/out"
	"gateprep/internal/modules/syllabus/domain"
	syllabusin "gateprep/internal/modules/syllabus/port/in"
	"gateprep/internal/modules/syllabus/service"
	"gateprep/internal/modules/syllabus/usecase"
	apperrors "gateprep/internal/platform/errors"
	"gateprep/internal/platform/kv"
)

type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, error) { return "", apperrors.ErrPersistence }
func (failingKV) Set(context.Context, string, string) error    { return apperrors.ErrPersistence }
func (failingKV) Delete(context.Context, string) error         { return apperrors.ErrPersistence }

func newUsecase(store kv.Store) syllabusin.Usecase {
	svc := service.NewSyllabusService(
		syllabusout.NewEmbeddedCatalogSource(),
		syllabusout.NewKVModeStore(store),
		domain.ModeDA,
		nil,
	)
	return usecase.NewInteractor(svc)
}

func TestActiveModeDefaultsToDA(t *testing.T) {
	t.Parallel()
	uc := newUsecase(kv.NewMemoryStore())
	active, err := uc.ActiveMode(context.Background())
	if err != nil {
		t.Fatalf("active mode: %v", err)
	}
	if active.Mode != "da" || !active.Active {
		t.Fatalf("expected active da, got %+v", active)
	}
}

func TestSetModePersistsAcrossInstances(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()

	if _, err := newUsecase(store).SetMode(ctx, " CSE "); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	active, err := newUsecase(store).ActiveMode(ctx)
	if err != nil {
		t.Fatalf("active mode: %v", err)
	}
	if active.Mode != "cse" {
		t.Fatalf("expected cse after reload, got %s", active.Mode)
	}

	modes, err := newUsecase(store).ListModes(ctx)
	if err != nil {
		t.Fatalf("list modes: %v", err)
	}
	activeCount := 0
	for _, m := range modes {
		if m.Active {
			activeCount++
			if m.Mode != "cse" {
				t.Fatalf("wrong mode flagged active: %s", m.Mode)
			}
		}
	}
	if activeCount != 1 {
		t.Fatalf("expected exactly one active mode, got %d", activeCount)
	}
}

func TestSetModeRejectsUnknownMode(t *testing.T) {
	t.Parallel()
	_, err := newUsecase(kv.NewMemoryStore()).SetMode(context.Background(), "ece")
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestUnknownPersistedModeFallsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	if err := store.Set(ctx, syllabusout.ModeKey, "mech"); err != nil {
		t.Fatalf("seed mode: %v", err)
	}
	active, err := newUsecase(store).ActiveMode(ctx)
	if err != nil {
		t.Fatalf("active mode: %v", err)
	}
	if active.Mode != "da" {
		t.Fatalf("expected fallback to da, got %s", active.Mode)
	}
}

func TestFailingStorageIsNotFatal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newUsecase(failingKV{})
	if _, err := uc.ActiveMode(ctx); err != nil {
		t.Fatalf("active mode with failing storage: %v", err)
	}
	set, err := uc.SetMode(ctx, "cse")
	if err != nil {
		t.Fatalf("set mode with failing storage: %v", err)
	}
	if set.Mode != "cse" {
		t.Fatalf("expected cse, got %s", set.Mode)
	}
}

func TestCatalogTopicsCarryIDsAndImportance(t *testing.T) {
	t.Parallel()
	catalog, err := newUsecase(kv.NewMemoryStore()).Catalog(context.Background(), "da")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	var found bool
	for _, s := range catalog.Subjects {
		if s.ID != "prob_stats" {
			continue
		}
		found = true
		if s.Topics[1].ID != "prob_stats_1" || !s.Topics[1].Important {
			t.Fatalf("expected prob_stats_1 to be important, got %+v", s.Topics[1])
		}
		if s.Topics[0].Important {
			t.Fatalf("expected prob_stats_0 not to be important")
		}
	}
	if !found {
		t.Fatalf("prob_stats subject missing")
	}
}
