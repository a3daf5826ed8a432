package out

import (
	"context"
	"encoding/json"
	"fmt"

	"gateprep/internal/modules/checklist/domain"
	checklistout "gateprep/internal/modules/checklist/port/out"
	apperrors "gateprep/internal/platform/errors"
	"gateprep/internal/platform/kv"
)

type KVStateStore struct {
	store kv.Store
}

func NewKVStateStore(store kv.Store) checklistout.StateStore {
	return &KVStateStore{store: store}
}

// Key is gate_<mode>_checklist_v1, which keeps the historical DA key.
func Key(mode string) string {
	return fmt.Sprintf("gate_%s_checklist_v1", mode)
}

func (s *KVStateStore) LoadState(ctx context.Context, mode string) (domain.State, error) {
	raw, err := s.store.Get(ctx, Key(mode))
	if err != nil {
		return nil, err
	}
	state := domain.State{}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("decode %s checklist: %w: %w", mode, apperrors.ErrCorruptState, err)
	}
	if state == nil {
		state = domain.State{}
	}
	return state, nil
}

func (s *KVStateStore) SaveState(ctx context.Context, mode string, state domain.State) error {
	if state == nil {
		state = domain.State{}
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode %s checklist: %w", mode, err)
	}
	return s.store.Set(ctx, Key(mode), string(payload))
}
