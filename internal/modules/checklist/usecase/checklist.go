package usecase

import (
	"context"
	"fmt"
	"sync"

	"gateprep/internal/modules/checklist/domain"
	"gateprep/internal/modules/checklist/dto"
	checklistin "gateprep/internal/modules/checklist/port/in"
	"gateprep/internal/modules/checklist/service"
	syllabusdto "gateprep/internal/modules/syllabus/dto"
	syllabusin "gateprep/internal/modules/syllabus/port/in"
	apperrors "gateprep/internal/platform/errors"
)

// Interactor holds the active mode's checklist. Switching modes swaps in a
// separately persisted mapping.
type Interactor struct {
	svc      *service.ChecklistService
	syllabus syllabusin.Usecase

	mu      sync.Mutex
	loaded  bool
	catalog syllabusdto.CatalogOutput
	state   domain.State
}

func NewInteractor(svc *service.ChecklistService, syllabus syllabusin.Usecase) checklistin.Usecase {
	return &Interactor{svc: svc, syllabus: syllabus}
}

func (i *Interactor) ensureLoaded(ctx context.Context) error {
	if i.loaded {
		return nil
	}
	catalog, err := i.syllabus.Catalog(ctx, "")
	if err != nil {
		return err
	}
	i.catalog = catalog
	i.state = i.svc.Load(ctx, catalog.Mode)
	i.loaded = true
	return nil
}

func (i *Interactor) Checklist(ctx context.Context, subjectID string) (dto.ChecklistOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.ensureLoaded(ctx); err != nil {
		return dto.ChecklistOutput{}, err
	}
	out := i.checklist()
	if subjectID == "" {
		return out, nil
	}
	for _, s := range out.Subjects {
		if s.ID == subjectID {
			out.Subjects = []dto.SubjectOutput{s}
			return out, nil
		}
	}
	return dto.ChecklistOutput{}, fmt.Errorf("subject %q in mode %s: %w", subjectID, i.catalog.Mode, apperrors.ErrNotFound)
}

func (i *Interactor) Toggle(ctx context.Context, topicID string, done bool) (dto.ToggleOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.ensureLoaded(ctx); err != nil {
		return dto.ToggleOutput{}, err
	}
	subject, topic, ok := i.findTopic(topicID)
	if !ok {
		return dto.ToggleOutput{}, fmt.Errorf("topic %q in mode %s: %w", topicID, i.catalog.Mode, apperrors.ErrNotFound)
	}
	i.state = i.state.Set(topicID, done)
	i.svc.Persist(ctx, i.catalog.Mode, i.state)
	return dto.ToggleOutput{
		TopicID: topicID,
		Title:   topic.Title,
		Done:    done,
		Subject: dto.SubjectProgressOutput{ID: subject.ID, Name: subject.Name, Progress: i.measure(subject)},
		Overall: i.overall(),
	}, nil
}

func (i *Interactor) Progress(ctx context.Context) (dto.ProgressReport, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.ensureLoaded(ctx); err != nil {
		return dto.ProgressReport{}, err
	}
	out := dto.ProgressReport{
		Mode:     i.catalog.Mode,
		Label:    i.catalog.Label,
		Subjects: make([]dto.SubjectProgressOutput, 0, len(i.catalog.Subjects)),
		Overall:  i.overall(),
	}
	for _, s := range i.catalog.Subjects {
		out.Subjects = append(out.Subjects, dto.SubjectProgressOutput{ID: s.ID, Name: s.Name, Progress: i.measure(s)})
	}
	return out, nil
}

func (i *Interactor) SwitchMode(ctx context.Context, mode string) (dto.ChecklistOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if _, err := i.syllabus.SetMode(ctx, mode); err != nil {
		return dto.ChecklistOutput{}, err
	}
	i.loaded = false
	if err := i.ensureLoaded(ctx); err != nil {
		return dto.ChecklistOutput{}, err
	}
	return i.checklist(), nil
}

func (i *Interactor) findTopic(topicID string) (syllabusdto.SubjectOutput, syllabusdto.TopicOutput, bool) {
	for _, s := range i.catalog.Subjects {
		for _, t := range s.Topics {
			if t.ID == topicID {
				return s, t, true
			}
		}
	}
	return syllabusdto.SubjectOutput{}, syllabusdto.TopicOutput{}, false
}

func (i *Interactor) checklist() dto.ChecklistOutput {
	out := dto.ChecklistOutput{
		Mode:     i.catalog.Mode,
		Label:    i.catalog.Label,
		Subjects: make([]dto.SubjectOutput, 0, len(i.catalog.Subjects)),
		Overall:  i.overall(),
	}
	for _, s := range i.catalog.Subjects {
		subject := dto.SubjectOutput{ID: s.ID, Name: s.Name, Topics: make([]dto.TopicOutput, 0, len(s.Topics)), Progress: i.measure(s)}
		for _, t := range s.Topics {
			subject.Topics = append(subject.Topics, dto.TopicOutput{
				ID:        t.ID,
				Index:     t.Index,
				Title:     t.Title,
				Important: t.Important,
				Done:      i.state.Done(t.ID),
			})
		}
		out.Subjects = append(out.Subjects, subject)
	}
	return out
}

func (i *Interactor) measure(s syllabusdto.SubjectOutput) dto.ProgressOutput {
	return toProgress(domain.Measure(i.state, topicIDs(s)))
}

func (i *Interactor) overall() dto.ProgressOutput {
	ids := []string{}
	for _, s := range i.catalog.Subjects {
		ids = append(ids, topicIDs(s)...)
	}
	return toProgress(domain.Measure(i.state, ids))
}

func topicIDs(s syllabusdto.SubjectOutput) []string {
	out := make([]string, len(s.Topics))
	for idx, t := range s.Topics {
		out[idx] = t.ID
	}
	return out
}

func toProgress(p domain.Progress) dto.ProgressOutput {
	return dto.ProgressOutput{Done: p.Done, Total: p.Total, Percent: p.Percent}
}
