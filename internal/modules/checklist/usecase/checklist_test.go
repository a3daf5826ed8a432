package usecase_test

import (
	"context"
	"errors"
	"testing"

	checklistout "gateprep/internal/modules/checklist/adapter/out"
	checklistin "gateprep/internal/modules/checklist/port/in"
	"gateprep/internal/modules/checklist/service"
	"gateprep/internal/modules/checklist/usecase"
	syllabusout "gateprep/internal/modules/syllabus/adapter/out"
	syllabusdomain "gateprep/internal/modules/syllabus/domain"
	syllabusservice "gateprep/internal/modules/syllabus/service"
	syllabususecase "gateprep/internal/modules/syllabus/usecase"
	apperrors "gateprep/internal/platform/errors"
	"gateprep/internal/platform/kv"
)

type countingKV struct {
	kv.Store
	sets int
}

func (c *countingKV) Set(ctx context.Context, key, value string) error {
	c.sets++
	return c.Store.Set(ctx, key, value)
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, error) { return "", apperrors.ErrPersistence }
func (failingKV) Set(context.Context, string, string) error    { return apperrors.ErrPersistence }
func (failingKV) Delete(context.Context, string) error         { return apperrors.ErrPersistence }

func newUsecase(store kv.Store) checklistin.Usecase {
	syllabus := syllabususecase.NewInteractor(syllabusservice.NewSyllabusService(
		syllabusout.NewEmbeddedCatalogSource(),
		syllabusout.NewKVModeStore(store),
		syllabusdomain.ModeDA,
		nil,
	))
	return usecase.NewInteractor(service.NewChecklistService(checklistout.NewKVStateStore(store), nil), syllabus)
}

func TestToggleUpdatesProgressAndPersistsEachTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := &countingKV{Store: kv.NewMemoryStore()}
	uc := newUsecase(store)

	before, err := uc.Progress(ctx)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if before.Mode != "da" || before.Overall.Total != 107 || before.Overall.Done != 0 {
		t.Fatalf("unexpected initial progress %+v", before.Overall)
	}

	for _, id := range []string{"ga_0", "ga_1", "ga_2"} {
		if _, err := uc.Toggle(ctx, id, true); err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
	}
	out, err := uc.Toggle(ctx, "ga_2", false)
	if err != nil {
		t.Fatalf("untoggle: %v", err)
	}
	if store.sets != 4 {
		t.Fatalf("expected one write per toggle, got %d", store.sets)
	}
	if out.Subject.ID != "ga" || out.Subject.Progress.Done != 2 || out.Overall.Done != 2 {
		t.Fatalf("unexpected toggle output %+v", out)
	}
	if out.Overall.Percent != 2 {
		t.Fatalf("expected 2/107 to round to 2%%, got %d", out.Overall.Percent)
	}

	reloaded, err := newUsecase(store).Checklist(ctx, "ga")
	if err != nil {
		t.Fatalf("reload checklist: %v", err)
	}
	if len(reloaded.Subjects) != 1 || !reloaded.Subjects[0].Topics[0].Done || reloaded.Subjects[0].Topics[2].Done {
		t.Fatalf("persisted state not restored: %+v", reloaded.Subjects)
	}
}

func TestToggleRejectsUnknownTopic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newUsecase(kv.NewMemoryStore())
	for _, id := range []string{"ga_999", "nosuch_0", "os_0", "garbage"} {
		if _, err := uc.Toggle(ctx, id, true); !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("%s: expected not found, got %v", id, err)
		}
	}
	if _, err := uc.Checklist(ctx, "os"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected unknown subject in da, got %v", err)
	}
}

func TestSwitchModeKeepsChecklistsApart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()
	uc := newUsecase(store)

	if _, err := uc.Toggle(ctx, "ga_0", true); err != nil {
		t.Fatalf("toggle da: %v", err)
	}
	cse, err := uc.SwitchMode(ctx, "cse")
	if err != nil {
		t.Fatalf("switch to cse: %v", err)
	}
	if cse.Mode != "cse" || cse.Overall.Total != 72 || cse.Overall.Done != 0 {
		t.Fatalf("cse must start empty, got %+v", cse.Overall)
	}
	if _, err := uc.Toggle(ctx, "os_0", true); err != nil {
		t.Fatalf("toggle cse: %v", err)
	}
	if _, err := uc.Toggle(ctx, "ga_0", true); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("da topic must be unknown in cse, got %v", err)
	}

	da, err := uc.SwitchMode(ctx, "da")
	if err != nil {
		t.Fatalf("switch back to da: %v", err)
	}
	if da.Overall.Done != 1 {
		t.Fatalf("da state must be untouched, got %+v", da.Overall)
	}

	if _, err := uc.SwitchMode(ctx, "ece"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid mode, got %v", err)
	}
}

func TestFailingStorageStillToggles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newUsecase(failingKV{})
	out, err := uc.Toggle(ctx, "ml_0", true)
	if err != nil {
		t.Fatalf("toggle with failing storage: %v", err)
	}
	if out.Overall.Done != 1 {
		t.Fatalf("in-memory state must hold the toggle, got %+v", out.Overall)
	}
}
