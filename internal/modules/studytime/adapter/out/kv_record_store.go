package out

import (
	"context"
	"encoding/json"
	"fmt"

	"gateprep/internal/modules/studytime/domain"
	studytimeout "gateprep/internal/modules/studytime/port/out"
	apperrors "gateprep/internal/platform/errors"
	"gateprep/internal/platform/kv"
)

const RecordKey = "gate_da_timer_v1"

type KVRecordStore struct {
	store kv.Store
}

func NewKVRecordStore(store kv.Store) studytimeout.RecordStore {
	return &KVRecordStore{store: store}
}

// LoadRecord decodes over the defaults so fields missing from the payload
// keep their default values.
func (s *KVRecordStore) LoadRecord(ctx context.Context) (domain.StudyRecord, error) {
	raw, err := s.store.Get(ctx, RecordKey)
	if err != nil {
		return domain.StudyRecord{}, err
	}
	record := domain.DefaultRecord()
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return domain.StudyRecord{}, fmt.Errorf("decode study record: %w: %w", apperrors.ErrCorruptState, err)
	}
	if record.Days == nil {
		record.Days = map[string]int64{}
	}
	if err := record.Validate(); err != nil {
		return domain.StudyRecord{}, err
	}
	return record, nil
}

func (s *KVRecordStore) SaveRecord(ctx context.Context, record domain.StudyRecord) error {
	if record.Days == nil {
		record.Days = map[string]int64{}
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode study record: %w", err)
	}
	return s.store.Set(ctx, RecordKey, string(payload))
}
