package in

import (
	"context"

	"gateprep/internal/modules/studytime/dto"
	studytimein "gateprep/internal/modules/studytime/port/in"
)

type TUIHandler struct {
	usecase studytimein.Usecase
}

func NewTUIHandler(usecase studytimein.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Snapshot(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.Snapshot(ctx)
}

// Toggle starts an idle or paused timer and pauses a running one.
func (h TUIHandler) Toggle(ctx context.Context) (dto.SnapshotOutput, *dto.PauseOutput, error) {
	snap, err := h.usecase.Snapshot(ctx)
	if err != nil {
		return dto.SnapshotOutput{}, nil, err
	}
	if snap.TimerState != "running" {
		snap, err = h.usecase.StartTimer(ctx)
		return snap, nil, err
	}
	paused, err := h.usecase.PauseTimer(ctx)
	if err != nil {
		return dto.SnapshotOutput{}, nil, err
	}
	snap, err = h.usecase.Snapshot(ctx)
	return snap, &paused, err
}

func (h TUIHandler) Tick(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h TUIHandler) Reset(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.ResetTimer(ctx)
}

func (h TUIHandler) SetTarget(ctx context.Context, hours int) (dto.SnapshotOutput, error) {
	return h.usecase.SetTarget(ctx, hours)
}

func (h TUIHandler) ResetAll(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.ResetAll(ctx)
}

// Flush credits a running session; called when the dashboard exits.
func (h TUIHandler) Flush(ctx context.Context) (dto.PauseOutput, error) {
	return h.usecase.PauseTimer(ctx)
}
