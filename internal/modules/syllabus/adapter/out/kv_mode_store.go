package out

import (
	"context"
	"strings"

	"gateprep/internal/modules/syllabus/domain"
	syllabusout "gateprep/internal/modules/syllabus/port/out"
	"gateprep/internal/platform/kv"
)

const ModeKey = "gate_mode_v1"

type KVModeStore struct {
	store kv.Store
}

func NewKVModeStore(store kv.Store) syllabusout.ModeStore {
	return &KVModeStore{store: store}
}

func (s *KVModeStore) LoadMode(ctx context.Context) (domain.Mode, error) {
	raw, err := s.store.Get(ctx, ModeKey)
	if err != nil {
		return "", err
	}
	return domain.Mode(strings.TrimSpace(raw)), nil
}

func (s *KVModeStore) SaveMode(ctx context.Context, mode domain.Mode) error {
	return s.store.Set(ctx, ModeKey, string(mode))
}
