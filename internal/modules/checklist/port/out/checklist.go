package out

import (
	"context"

	"gateprep/internal/modules/checklist/domain"
)

// StateStore keeps one independent mapping per mode.
type StateStore interface {
	LoadState(ctx context.Context, mode string) (domain.State, error)
	SaveState(ctx context.Context, mode string, state domain.State) error
}
