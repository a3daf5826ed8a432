package in

import (
	"context"

	"gateprep/internal/modules/planner/dto"
	plannerin "gateprep/internal/modules/planner/port/in"
)

type CLIHandler struct {
	usecase plannerin.Usecase
}

func NewCLIHandler(usecase plannerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Plan(ctx context.Context, goal int) (dto.PlanOutput, error) {
	return h.usecase.Plan(ctx, goal)
}
