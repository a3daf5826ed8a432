package in

import (
	"context"

	"gateprep/internal/modules/planner/dto"
)

type Usecase interface {
	Plan(ctx context.Context, goal int) (dto.PlanOutput, error)
}
