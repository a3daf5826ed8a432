package in

import (
	"context"

	"gateprep/internal/modules/studytime/dto"
	studytimein "gateprep/internal/modules/studytime/port/in"
)

// CLIHandler serves one-shot commands, so timing goes through persisted
// wall-clock sessions rather than the in-process ticker.
type CLIHandler struct {
	usecase studytimein.Usecase
}

func NewCLIHandler(usecase studytimein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context) (dto.ActiveSessionOutput, error) {
	return h.usecase.StartSession(ctx)
}

func (h CLIHandler) Pause(ctx context.Context) (dto.PauseOutput, error) {
	return h.usecase.PauseSession(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.ActiveSessionOutput, error) {
	return h.usecase.ActiveSession(ctx)
}

func (h CLIHandler) Discard(ctx context.Context) (dto.ActiveSessionOutput, error) {
	return h.usecase.DiscardSession(ctx)
}

func (h CLIHandler) SetTarget(ctx context.Context, hours int) (dto.StatsOutput, error) {
	out, err := h.usecase.SetTarget(ctx, hours)
	return out.Stats, err
}

func (h CLIHandler) Stats(ctx context.Context) (dto.StatsOutput, error) {
	out, err := h.usecase.Snapshot(ctx)
	return out.Stats, err
}

func (h CLIHandler) ResetAll(ctx context.Context) (dto.StatsOutput, error) {
	out, err := h.usecase.ResetAll(ctx)
	return out.Stats, err
}

func (h CLIHandler) History(ctx context.Context) ([]dto.DayOutput, error) {
	return h.usecase.History(ctx)
}
