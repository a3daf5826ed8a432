package service

import (
	"context"
	"errors"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"gateprep/internal/modules/studytime/domain"
	studytimeout "gateprep/internal/modules/studytime/port/out"
	"gateprep/internal/platform/clock"
	apperrors "gateprep/internal/platform/errors"
	"gateprep/internal/platform/id"
)

type TimeService struct {
	clock   clock.Clock
	idGen   id.Generator
	records studytimeout.RecordStore
	log     hclog.Logger
}

func NewTimeService(clock clock.Clock, idGen id.Generator, records studytimeout.RecordStore, log hclog.Logger) *TimeService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &TimeService{clock: clock, idGen: idGen, records: records, log: log}
}

func (s *TimeService) Now() time.Time {
	return s.clock.Now()
}

// Load never fails: absent, corrupt and unreadable records all yield the
// defaults.
func (s *TimeService) Load(ctx context.Context) domain.StudyRecord {
	record, err := s.records.LoadRecord(ctx)
	switch {
	case err == nil:
		return record
	case errors.Is(err, apperrors.ErrNotFound):
		return domain.DefaultRecord()
	case errors.Is(err, apperrors.ErrCorruptState):
		s.log.Warn("study record is corrupt, using defaults", "error", err)
	default:
		s.log.Warn("study record load failed, using defaults", "error", err)
	}
	return domain.DefaultRecord()
}

// Persist reports whether the write landed. A failed write leaves the
// caller's in-memory record authoritative.
func (s *TimeService) Persist(ctx context.Context, record domain.StudyRecord) bool {
	if err := s.records.SaveRecord(ctx, record); err != nil {
		s.log.Warn("study record save failed", "error", err)
		return false
	}
	s.log.Debug("study record saved", "all_time_seconds", record.AllTimeSeconds, "days", len(record.Days))
	return true
}

func (s *TimeService) Credit(ctx context.Context, record domain.StudyRecord, elapsed int64) (domain.StudyRecord, string, error) {
	dayKey := domain.DayKey(s.clock.Now())
	next, err := record.RecordSession(elapsed, dayKey)
	if err != nil {
		return record, "", err
	}
	if elapsed > 0 {
		s.log.Info("session credited", "day", dayKey, "seconds", elapsed)
		s.Persist(ctx, next)
	}
	return next, dayKey, nil
}

func (s *TimeService) NewActiveSession() domain.ActiveSession {
	return domain.ActiveSession{SessionID: s.idGen.New(), StartedAt: s.clock.Now()}
}
