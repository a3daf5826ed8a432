package in

import (
	"context"

	"gateprep/internal/modules/studytime/dto"
)

type Usecase interface {
	Snapshot(ctx context.Context) (dto.SnapshotOutput, error)
	StartTimer(ctx context.Context) (dto.SnapshotOutput, error)
	Tick(ctx context.Context) (dto.SnapshotOutput, error)
	PauseTimer(ctx context.Context) (dto.PauseOutput, error)
	ResetTimer(ctx context.Context) (dto.SnapshotOutput, error)
	SetTarget(ctx context.Context, hours int) (dto.SnapshotOutput, error)
	ResetAll(ctx context.Context) (dto.SnapshotOutput, error)
	History(ctx context.Context) ([]dto.DayOutput, error)

	StartSession(ctx context.Context) (dto.ActiveSessionOutput, error)
	ActiveSession(ctx context.Context) (dto.ActiveSessionOutput, error)
	PauseSession(ctx context.Context) (dto.PauseOutput, error)
	DiscardSession(ctx context.Context) (dto.ActiveSessionOutput, error)
}
