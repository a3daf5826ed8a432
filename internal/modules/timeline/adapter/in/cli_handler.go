package in

import (
	"context"

	"gateprep/internal/modules/timeline/dto"
	timelinein "gateprep/internal/modules/timeline/port/in"
)

type CLIHandler struct {
	usecase timelinein.Usecase
}

func NewCLIHandler(usecase timelinein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Plan(ctx context.Context, year int) (dto.TimelineOutput, error) {
	return h.usecase.Plan(ctx, year)
}
