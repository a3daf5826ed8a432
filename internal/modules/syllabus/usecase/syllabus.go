package usecase

import (
	"context"

	"gateprep/internal/modules/syllabus/domain"
	"gateprep/internal/modules/syllabus/dto"
	syllabusin "gateprep/internal/modules/syllabus/port/in"
	"gateprep/internal/modules/syllabus/service"
)

type Interactor struct {
	svc *service.SyllabusService
}

func NewInteractor(svc *service.SyllabusService) syllabusin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListModes(ctx context.Context) ([]dto.ModeOutput, error) {
	catalogs, err := i.svc.Catalogs(ctx)
	if err != nil {
		return nil, err
	}
	active, err := i.svc.ActiveMode(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ModeOutput, 0, len(catalogs))
	for _, c := range catalogs {
		out = append(out, toModeOutput(c, c.Mode == active.Mode))
	}
	return out, nil
}

func (i *Interactor) ActiveMode(ctx context.Context) (dto.ModeOutput, error) {
	c, err := i.svc.ActiveMode(ctx)
	if err != nil {
		return dto.ModeOutput{}, err
	}
	return toModeOutput(c, true), nil
}

func (i *Interactor) SetMode(ctx context.Context, mode string) (dto.ModeOutput, error) {
	c, err := i.svc.SetMode(ctx, mode)
	if err != nil {
		return dto.ModeOutput{}, err
	}
	return toModeOutput(c, true), nil
}

func (i *Interactor) Catalog(ctx context.Context, mode string) (dto.CatalogOutput, error) {
	var (
		c   domain.Catalog
		err error
	)
	if mode == "" {
		c, err = i.svc.ActiveMode(ctx)
	} else {
		c, err = i.svc.Catalog(ctx, domain.Mode(mode))
	}
	if err != nil {
		return dto.CatalogOutput{}, err
	}
	return toCatalogOutput(c), nil
}

func toModeOutput(c domain.Catalog, active bool) dto.ModeOutput {
	return dto.ModeOutput{Mode: string(c.Mode), Label: c.Label, Overview: c.Overview, Active: active}
}

func toCatalogOutput(c domain.Catalog) dto.CatalogOutput {
	out := dto.CatalogOutput{
		Mode:      string(c.Mode),
		Label:     c.Label,
		Overview:  c.Overview,
		Subjects:  make([]dto.SubjectOutput, 0, len(c.Subjects)),
		Weightage: make([]dto.WeightageOutput, 0, len(c.Weightage)),
	}
	for _, s := range c.Subjects {
		subject := dto.SubjectOutput{ID: s.ID, Name: s.Name, Topics: make([]dto.TopicOutput, 0, len(s.Topics))}
		for idx, title := range s.Topics {
			subject.Topics = append(subject.Topics, dto.TopicOutput{
				ID:        domain.TopicID(s.ID, idx),
				Index:     idx,
				Title:     title,
				Important: s.IsImportant(idx),
			})
		}
		out.Subjects = append(out.Subjects, subject)
	}
	for _, w := range c.Weightage {
		out.Weightage = append(out.Weightage, dto.WeightageOutput{
			ID:         w.ID,
			Name:       w.Name,
			Marks:      w.Marks,
			Difficulty: w.Difficulty,
			Note:       w.Note,
		})
	}
	return out
}
