package in

import (
	"context"

	"gateprep/internal/modules/checklist/dto"
)

type Usecase interface {
	// Checklist lists the active mode's topics; an empty subjectID means all.
	Checklist(ctx context.Context, subjectID string) (dto.ChecklistOutput, error)
	Toggle(ctx context.Context, topicID string, done bool) (dto.ToggleOutput, error)
	Progress(ctx context.Context) (dto.ProgressReport, error)
	SwitchMode(ctx context.Context, mode string) (dto.ChecklistOutput, error)
}
