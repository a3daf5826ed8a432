package domain

import (
	"fmt"
	"time"

	apperrors "gateprep/internal/platform/errors"
)

const (
	DefaultTargetHours = 850
	MinTargetHours     = 100
	MaxTargetHours     = 3000

	dayKeyLayout = "2006-01-02"
)

// StudyRecord is the persisted time ledger. AllTimeSeconds always equals the
// sum of Days; RecordSession is the only path that adds time.
type StudyRecord struct {
	TargetHours    int              `json:"targetHours"`
	AllTimeSeconds int64            `json:"allTimeSeconds"`
	Days           map[string]int64 `json:"days"`
}

func DefaultRecord() StudyRecord {
	return StudyRecord{TargetHours: DefaultTargetHours, Days: map[string]int64{}}
}

// DayKey is the local calendar date of t.
func DayKey(t time.Time) string {
	return t.In(time.Local).Format(dayKeyLayout)
}

func (r StudyRecord) Clone() StudyRecord {
	days := make(map[string]int64, len(r.Days))
	for k, v := range r.Days {
		days[k] = v
	}
	r.Days = days
	return r
}

// RecordSession credits elapsed seconds to dayKey and the all-time total.
func (r StudyRecord) RecordSession(elapsed int64, dayKey string) (StudyRecord, error) {
	if elapsed < 0 {
		return r, fmt.Errorf("elapsed seconds must be non-negative, got %d: %w", elapsed, apperrors.ErrInvalidInput)
	}
	if elapsed == 0 {
		return r, nil
	}
	if dayKey == "" {
		return r, fmt.Errorf("day key is required: %w", apperrors.ErrInvalidInput)
	}
	next := r.Clone()
	next.Days[dayKey] += elapsed
	next.AllTimeSeconds += elapsed
	return next, nil
}

func (r StudyRecord) SetTarget(hours int) (StudyRecord, error) {
	if err := apperrors.CheckRange("target hours", hours, MinTargetHours, MaxTargetHours); err != nil {
		return r, err
	}
	next := r.Clone()
	next.TargetHours = hours
	return next, nil
}

// ResetAll clears accumulated time and keeps the target.
func (r StudyRecord) ResetAll() StudyRecord {
	return StudyRecord{TargetHours: r.TargetHours, Days: map[string]int64{}}
}

// Validate rejects payloads no sequence of mutations could have produced.
func (r StudyRecord) Validate() error {
	if r.TargetHours <= 0 {
		return fmt.Errorf("target hours %d: %w", r.TargetHours, apperrors.ErrCorruptState)
	}
	if r.AllTimeSeconds < 0 {
		return fmt.Errorf("all-time seconds %d: %w", r.AllTimeSeconds, apperrors.ErrCorruptState)
	}
	var sum int64
	for k, v := range r.Days {
		if v < 0 {
			return fmt.Errorf("day %s seconds %d: %w", k, v, apperrors.ErrCorruptState)
		}
		sum += v
	}
	if sum != r.AllTimeSeconds {
		return fmt.Errorf("all-time seconds %d, days sum %d: %w", r.AllTimeSeconds, sum, apperrors.ErrCorruptState)
	}
	return nil
}
