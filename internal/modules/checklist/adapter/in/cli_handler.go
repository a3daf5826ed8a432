package in

import (
	"context"

	"gateprep/internal/modules/checklist/dto"
	checklistin "gateprep/internal/modules/checklist/port/in"
)

type CLIHandler struct {
	usecase checklistin.Usecase
}

func NewCLIHandler(usecase checklistin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, subjectID string) (dto.ChecklistOutput, error) {
	return h.usecase.Checklist(ctx, subjectID)
}

func (h CLIHandler) Mark(ctx context.Context, topicID string, done bool) (dto.ToggleOutput, error) {
	return h.usecase.Toggle(ctx, topicID, done)
}

func (h CLIHandler) Progress(ctx context.Context) (dto.ProgressReport, error) {
	return h.usecase.Progress(ctx)
}

func (h CLIHandler) SwitchMode(ctx context.Context, mode string) (dto.ChecklistOutput, error) {
	return h.usecase.SwitchMode(ctx, mode)
}
