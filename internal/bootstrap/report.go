package bootstrap

import (
	"context"

	"gateprep/internal/report"
)

// Report gathers everything the markdown report shows. A zero goal or
// year leaves that section out.
func (a *App) Report(ctx context.Context, goal, year int) (report.Input, error) {
	in := report.Input{GeneratedAt: a.clock.Now()}

	stats, err := a.StudyCLI.Stats(ctx)
	if err != nil {
		return report.Input{}, err
	}
	in.Stats = stats

	if in.History, err = a.StudyCLI.History(ctx); err != nil {
		return report.Input{}, err
	}
	if in.Progress, err = a.ChecklistCLI.Progress(ctx); err != nil {
		return report.Input{}, err
	}

	if goal > 0 {
		plan, err := a.PlannerCLI.Plan(ctx, goal)
		if err != nil {
			return report.Input{}, err
		}
		in.Plan = &plan
	}
	if year > 0 {
		tl, err := a.TimelineCLI.Plan(ctx, year)
		if err != nil {
			return report.Input{}, err
		}
		in.Timeline = &tl
	}
	return in, nil
}
