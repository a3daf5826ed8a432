package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gateprep/internal/modules/studytime/domain"
	studytimeout "gateprep/internal/modules/studytime/port/out"
	apperrors "gateprep/internal/platform/errors"
	"gateprep/internal/platform/kv"
)

const ActiveSessionKey = "gate_active_session_v1"

type KVActiveSessionStore struct {
	store kv.Store
}

func NewKVActiveSessionStore(store kv.Store) studytimeout.ActiveSessionStore {
	return &KVActiveSessionStore{store: store}
}

func (s *KVActiveSessionStore) SaveActive(ctx context.Context, session domain.ActiveSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal active session: %w", err)
	}
	return s.store.Set(ctx, ActiveSessionKey, string(payload))
}

func (s *KVActiveSessionStore) LoadActive(ctx context.Context) (domain.ActiveSession, error) {
	raw, err := s.store.Get(ctx, ActiveSessionKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.ActiveSession{}, apperrors.ErrNoActiveSession
		}
		return domain.ActiveSession{}, err
	}
	active := domain.ActiveSession{}
	if err := json.Unmarshal([]byte(raw), &active); err != nil {
		return domain.ActiveSession{}, fmt.Errorf("decode active session: %w: %w", apperrors.ErrCorruptState, err)
	}
	if active.SessionID == "" || active.StartedAt.IsZero() {
		return domain.ActiveSession{}, apperrors.ErrNoActiveSession
	}
	return active, nil
}

func (s *KVActiveSessionStore) ClearActive(ctx context.Context) error {
	return s.store.Delete(ctx, ActiveSessionKey)
}
