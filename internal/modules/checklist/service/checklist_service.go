package service

import (
	"context"
	"errors"

	hclog "github.com/hashicorp/go-hclog"

	"gateprep/internal/modules/checklist/domain"
	checklistout "gateprep/internal/modules/checklist/port/out"
	apperrors "gateprep/internal/platform/errors"
)

type ChecklistService struct {
	store checklistout.StateStore
	log   hclog.Logger
}

func NewChecklistService(store checklistout.StateStore, log hclog.Logger) *ChecklistService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &ChecklistService{store: store, log: log}
}

// Load treats absent, corrupt and unreadable state as an empty checklist.
func (s *ChecklistService) Load(ctx context.Context, mode string) domain.State {
	state, err := s.store.LoadState(ctx, mode)
	if err == nil {
		return state
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.log.Warn("checklist load failed, starting empty", "mode", mode, "error", err)
	}
	return domain.State{}
}

func (s *ChecklistService) Persist(ctx context.Context, mode string, state domain.State) bool {
	if err := s.store.SaveState(ctx, mode, state); err != nil {
		s.log.Warn("checklist save failed", "mode", mode, "error", err)
		return false
	}
	return true
}
