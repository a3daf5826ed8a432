package out

import (
	"context"

	"gateprep/internal/modules/studytime/domain"
)

// RecordStore reports an absent record with apperrors.ErrNotFound and an
// undecodable one with apperrors.ErrCorruptState.
type RecordStore interface {
	LoadRecord(ctx context.Context) (domain.StudyRecord, error)
	SaveRecord(ctx context.Context, record domain.StudyRecord) error
}

type ActiveSessionStore interface {
	SaveActive(ctx context.Context, session domain.ActiveSession) error
	LoadActive(ctx context.Context) (domain.ActiveSession, error)
	ClearActive(ctx context.Context) error
}
