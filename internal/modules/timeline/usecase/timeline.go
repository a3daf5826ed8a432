package usecase

import (
	"context"
	"fmt"

	"gateprep/internal/modules/timeline/domain"
	"gateprep/internal/modules/timeline/dto"
	timelinein "gateprep/internal/modules/timeline/port/in"
	"gateprep/internal/platform/clock"
	apperrors "gateprep/internal/platform/errors"
)

const (
	MinYear = 2026
	MaxYear = 2035
)

type Interactor struct {
	clock clock.Clock
}

func NewInteractor(clock clock.Clock) timelinein.Usecase {
	return &Interactor{clock: clock}
}

func (i *Interactor) Plan(_ context.Context, year int) (dto.TimelineOutput, error) {
	if err := apperrors.CheckRange("exam year", year, MinYear, MaxYear); err != nil {
		return dto.TimelineOutput{}, err
	}
	now := i.clock.Now()
	exam := domain.ExamDate(year, now.Location())
	months := domain.MonthsBetween(now, exam)
	if months <= 0 {
		return dto.TimelineOutput{}, fmt.Errorf("GATE %d: %w", year, apperrors.ErrExamWindowClosed)
	}

	template := domain.PickTemplate(months)
	out := dto.TimelineOutput{
		Year:       year,
		ExamDate:   exam,
		MonthsLeft: months,
		Template:   string(template),
		Heading:    fmt.Sprintf("%s for GATE %d", domain.Headline(template), year),
		Summary: fmt.Sprintf("From today you have roughly %.1f months before the exam (assuming February %d). "+
			"Use the phases below as a structure and plug your own daily/weekly hours.", months, year),
	}
	for _, p := range domain.Phases(template) {
		out.Phases = append(out.Phases, dto.PhaseOutput{Title: p.Title, Period: p.Period, Focus: p.Focus})
	}
	return out, nil
}
