package in

import (
	"context"

	"gateprep/internal/modules/syllabus/dto"
	syllabusin "gateprep/internal/modules/syllabus/port/in"
)

type CLIHandler struct {
	usecase syllabusin.Usecase
}

func NewCLIHandler(usecase syllabusin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListModes(ctx context.Context) ([]dto.ModeOutput, error) {
	return h.usecase.ListModes(ctx)
}

func (h CLIHandler) ActiveMode(ctx context.Context) (dto.ModeOutput, error) {
	return h.usecase.ActiveMode(ctx)
}

func (h CLIHandler) SetMode(ctx context.Context, mode string) (dto.ModeOutput, error) {
	return h.usecase.SetMode(ctx, mode)
}

func (h CLIHandler) Catalog(ctx context.Context, mode string) (dto.CatalogOutput, error) {
	return h.usecase.Catalog(ctx, mode)
}
