package in

import (
	"context"

	"gateprep/internal/modules/timeline/dto"
)

type Usecase interface {
	Plan(ctx context.Context, year int) (dto.TimelineOutput, error)
}
