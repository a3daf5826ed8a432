package usecase

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"gateprep/internal/modules/planner/domain"
	"gateprep/internal/modules/planner/dto"
	plannerin "gateprep/internal/modules/planner/port/in"
	syllabusin "gateprep/internal/modules/syllabus/port/in"
	apperrors "gateprep/internal/platform/errors"
)

const (
	MinGoal = 30
	MaxGoal = 100

	safetyNote = "Note: The allocated subject targets sum to slightly less than your goal for safety. Remaining marks can come from extra accuracy in strong subjects."
)

type Interactor struct {
	syllabus syllabusin.Usecase
	log      hclog.Logger
}

func NewInteractor(syllabus syllabusin.Usecase, log hclog.Logger) plannerin.Usecase {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Interactor{syllabus: syllabus, log: log}
}

// Plan allocates goal marks over the active mode's weightage table.
func (i *Interactor) Plan(ctx context.Context, goal int) (dto.PlanOutput, error) {
	if err := apperrors.CheckRange("goal marks", goal, MinGoal, MaxGoal); err != nil {
		return dto.PlanOutput{}, err
	}
	catalog, err := i.syllabus.Catalog(ctx, "")
	if err != nil {
		return dto.PlanOutput{}, err
	}
	subjects := make([]domain.Subject, 0, len(catalog.Weightage))
	for _, w := range catalog.Weightage {
		subjects = append(subjects, domain.Subject{ID: w.ID, Name: w.Name, Marks: w.Marks, Difficulty: w.Difficulty, Note: w.Note})
	}

	plan := domain.Plan(goal, subjects)
	summary := domain.Summarize(goal, plan)
	i.log.Debug("goal plan built", "mode", catalog.Mode, "goal", goal, "allocated", summary.TotalAllocated)

	out := dto.PlanOutput{
		Mode:           catalog.Mode,
		Label:          catalog.Label,
		Goal:           goal,
		Rows:           make([]dto.AllocationOutput, 0, len(plan)),
		TotalAllocated: summary.TotalAllocated,
		Shortfall:      summary.Shortfall,
	}
	if summary.SafetyNote {
		out.SafetyNote = safetyNote
	}
	for idx, a := range plan {
		out.Rows = append(out.Rows, dto.AllocationOutput{
			Rank:       idx + 1,
			ID:         a.Subject.ID,
			Name:       a.Subject.Name,
			Marks:      a.Subject.Marks,
			Difficulty: a.Subject.Difficulty,
			Score:      a.Subject.Score(),
			MaxSafe:    a.Subject.MaxSafe(),
			Allocated:  a.Allocated,
			Share:      a.Share(goal),
			Priority:   string(a.Priority),
			Note:       a.Subject.Note,
		})
	}
	return out, nil
}
