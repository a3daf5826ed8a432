package in

import (
	"context"

	"gateprep/internal/modules/syllabus/dto"
)

type Usecase interface {
	ListModes(ctx context.Context) ([]dto.ModeOutput, error)
	ActiveMode(ctx context.Context) (dto.ModeOutput, error)
	SetMode(ctx context.Context, mode string) (dto.ModeOutput, error)
	Catalog(ctx context.Context, mode string) (dto.CatalogOutput, error)
}
