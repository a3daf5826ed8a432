package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"

	"gateprep/internal/modules/studytime/domain"
	"gateprep/internal/modules/studytime/dto"
	studytimein "gateprep/internal/modules/studytime/port/in"
	studytimeout "gateprep/internal/modules/studytime/port/out"
	"gateprep/internal/modules/studytime/service"
	apperrors "gateprep/internal/platform/errors"
)

// Interactor owns the process's study record and session timer.
type Interactor struct {
	svc         *service.TimeService
	activeStore studytimeout.ActiveSessionStore

	mu     sync.Mutex
	loaded bool
	record domain.StudyRecord
	timer  domain.Timer
}

func NewInteractor(svc *service.TimeService, activeStore studytimeout.ActiveSessionStore) studytimein.Usecase {
	return &Interactor{svc: svc, activeStore: activeStore}
}

func (i *Interactor) ensureLoaded(ctx context.Context) {
	if i.loaded {
		return
	}
	i.record = i.svc.Load(ctx)
	i.loaded = true
}

func (i *Interactor) Snapshot(ctx context.Context) (dto.SnapshotOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	return i.snapshot(), nil
}

func (i *Interactor) StartTimer(ctx context.Context) (dto.SnapshotOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	i.timer.Start()
	return i.snapshot(), nil
}

func (i *Interactor) Tick(ctx context.Context) (dto.SnapshotOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	i.timer.Tick()
	return i.snapshot(), nil
}

func (i *Interactor) PauseTimer(ctx context.Context) (dto.PauseOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	elapsed, ok := i.timer.Pause()
	if !ok {
		return dto.PauseOutput{Stats: i.stats()}, nil
	}
	return i.credit(ctx, elapsed)
}

func (i *Interactor) ResetTimer(ctx context.Context) (dto.SnapshotOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	i.timer.Reset()
	return i.snapshot(), nil
}

func (i *Interactor) SetTarget(ctx context.Context, hours int) (dto.SnapshotOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	next, err := i.record.SetTarget(hours)
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	i.record = next
	i.svc.Persist(ctx, i.record)
	return i.snapshot(), nil
}

func (i *Interactor) ResetAll(ctx context.Context) (dto.SnapshotOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	i.record = i.record.ResetAll()
	i.svc.Persist(ctx, i.record)
	return i.snapshot(), nil
}

func (i *Interactor) History(ctx context.Context) ([]dto.DayOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	out := make([]dto.DayOutput, 0, len(i.record.Days))
	for day, seconds := range i.record.Days {
		out = append(out, dto.DayOutput{Day: day, Seconds: seconds, Hours: float64(seconds) / 3600})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Day < out[b].Day })
	return out, nil
}

func (i *Interactor) StartSession(ctx context.Context) (dto.ActiveSessionOutput, error) {
	if i.activeStore == nil {
		return dto.ActiveSessionOutput{}, apperrors.ErrNoActiveSession
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	_, err := i.activeStore.LoadActive(ctx)
	if err == nil {
		return dto.ActiveSessionOutput{}, apperrors.ErrActiveSessionExists
	}
	if !errors.Is(err, apperrors.ErrNoActiveSession) && !errors.Is(err, apperrors.ErrCorruptState) {
		return dto.ActiveSessionOutput{}, err
	}
	active := i.svc.NewActiveSession()
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return dto.ActiveSessionOutput{}, err
	}
	return i.activeOutput(active), nil
}

func (i *Interactor) ActiveSession(ctx context.Context) (dto.ActiveSessionOutput, error) {
	if i.activeStore == nil {
		return dto.ActiveSessionOutput{}, apperrors.ErrNoActiveSession
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return dto.ActiveSessionOutput{}, err
	}
	return i.activeOutput(active), nil
}

// PauseSession credits the wall-clock time since StartSession to the day
// the pause happens on.
func (i *Interactor) PauseSession(ctx context.Context) (dto.PauseOutput, error) {
	if i.activeStore == nil {
		return dto.PauseOutput{}, apperrors.ErrNoActiveSession
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return dto.PauseOutput{}, err
	}
	// Cleared before credit: a failed clear credits nothing.
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return dto.PauseOutput{}, err
	}
	return i.credit(ctx, active.Elapsed(i.svc.Now()))
}

func (i *Interactor) DiscardSession(ctx context.Context) (dto.ActiveSessionOutput, error) {
	if i.activeStore == nil {
		return dto.ActiveSessionOutput{}, apperrors.ErrNoActiveSession
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	var out dto.ActiveSessionOutput
	active, err := i.activeStore.LoadActive(ctx)
	switch {
	case err == nil:
		out = i.activeOutput(active)
	case errors.Is(err, apperrors.ErrCorruptState):
		// Unreadable payloads are dropped too.
	default:
		return dto.ActiveSessionOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return dto.ActiveSessionOutput{}, err
	}
	return out, nil
}

func (i *Interactor) credit(ctx context.Context, elapsed int64) (dto.PauseOutput, error) {
	next, dayKey, err := i.svc.Credit(ctx, i.record, elapsed)
	if err != nil {
		return dto.PauseOutput{}, err
	}
	i.record = next
	return dto.PauseOutput{Paused: true, Credited: elapsed, DayKey: dayKey, Stats: i.stats()}, nil
}

func (i *Interactor) activeOutput(active domain.ActiveSession) dto.ActiveSessionOutput {
	elapsed := active.Elapsed(i.svc.Now())
	return dto.ActiveSessionOutput{
		SessionID:      active.SessionID,
		StartedAt:      active.StartedAt,
		ElapsedSeconds: elapsed,
		Elapsed:        domain.FormatHMS(elapsed),
	}
}

func (i *Interactor) snapshot() dto.SnapshotOutput {
	return dto.SnapshotOutput{
		TimerState:     i.timer.State().String(),
		SessionSeconds: i.timer.Elapsed(),
		Session:        domain.FormatHMS(i.timer.Elapsed()),
		Stats:          i.stats(),
	}
}

func (i *Interactor) stats() dto.StatsOutput {
	s := domain.Project(i.record, i.svc.Now())
	return dto.StatsOutput{
		TodaySeconds:   s.TodaySeconds,
		TodayHours:     s.TodayHours,
		AllTimeHours:   s.AllTimeHours,
		AveragePerDay:  s.AveragePerDay,
		TargetHours:    s.TargetHours,
		RemainingHours: s.RemainingHours,
		DaysLeft:       s.DaysLeft,
		HasDaysLeft:    s.HasDaysLeft,
		FinishDate:     s.FinishDate,
		HasFinishDate:  s.HasFinishDate,
	}
}
