package out

import (
	"context"

	"gateprep/internal/modules/syllabus/domain"
)

// CatalogSource supplies every known mode's tables in display order.
type CatalogSource interface {
	Catalogs(ctx context.Context) ([]domain.Catalog, error)
}

// ModeStore persists the active mode. LoadMode reports an absent value
// with apperrors.ErrNotFound.
type ModeStore interface {
	LoadMode(ctx context.Context) (domain.Mode, error)
	SaveMode(ctx context.Context, mode domain.Mode) error
}
