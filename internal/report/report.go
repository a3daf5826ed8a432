// Package report renders study progress as a markdown note.
package report

import (
	"fmt"
	"strings"
	"time"

	checklistdto "gateprep/internal/modules/checklist/dto"
	plannerdto "gateprep/internal/modules/planner/dto"
	studytimedto "gateprep/internal/modules/studytime/dto"
	timelinedto "gateprep/internal/modules/timeline/dto"
	"gateprep/internal/platform/markdown"
)

const historyDays = 14

var Block = markdown.Block{Name: "gateprep"}

type Input struct {
	GeneratedAt time.Time
	Stats       studytimedto.StatsOutput
	History     []studytimedto.DayOutput
	Progress    checklistdto.ProgressReport
	Plan        *plannerdto.PlanOutput
	Timeline    *timelinedto.TimelineOutput
}

func meta(in Input) map[string]any {
	return map[string]any{
		"gateprep_mode":      in.Progress.Mode,
		"gateprep_generated": in.GeneratedAt.Format(time.RFC3339),
		"gateprep_hours":     round1(in.Stats.AllTimeHours),
		"gateprep_target":    in.Stats.TargetHours,
		"gateprep_checklist": in.Progress.Overall.Percent,
	}
}

// Render produces a standalone note.
func Render(in Input) (string, error) {
	doc := markdown.Document{Meta: meta(in), Body: Block.Replace("", Body(in))}
	return doc.Render()
}

// Merge refreshes the generated block and gateprep_* keys of an existing
// note, leaving everything else as written.
func Merge(existing string, in Input) (string, error) {
	doc, err := markdown.Parse(existing)
	if err != nil {
		return "", err
	}
	doc.Set(meta(in))
	doc.Body = Block.Replace(doc.Body, Body(in))
	return doc.Render()
}

func Body(in Input) string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "# GATE prep: %s\n\n", in.Progress.Label)
	fmt.Fprintf(&b, "_Generated %s_\n\n", in.GeneratedAt.Format("2006-01-02 15:04"))

	b.WriteString("## Study time\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Today | %.1f h |\n", in.Stats.TodayHours)
	fmt.Fprintf(&b, "| All time | %.1f h |\n", in.Stats.AllTimeHours)
	fmt.Fprintf(&b, "| Average | %.1f h/day |\n", in.Stats.AveragePerDay)
	fmt.Fprintf(&b, "| Target | %d h |\n", in.Stats.TargetHours)
	fmt.Fprintf(&b, "| Remaining | %.1f h |\n", in.Stats.RemainingHours)
	fmt.Fprintf(&b, "| Days left | %s |\n", DaysLeft(in.Stats))
	fmt.Fprintf(&b, "| Finish date | %s |\n\n", FinishDate(in.Stats))

	if len(in.History) > 0 {
		b.WriteString("### Recent days\n\n")
		recent := in.History
		if len(recent) > historyDays {
			recent = recent[len(recent)-historyDays:]
		}
		for _, d := range recent {
			fmt.Fprintf(&b, "- %s: %.1f h\n", d.Day, d.Hours)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Checklist\n\n")
	fmt.Fprintf(&b, "Overall: **%d%%** (%d / %d topics)\n\n", in.Progress.Overall.Percent, in.Progress.Overall.Done, in.Progress.Overall.Total)
	for _, s := range in.Progress.Subjects {
		fmt.Fprintf(&b, "- %s: %d%% (%d/%d)\n", s.Name, s.Progress.Percent, s.Progress.Done, s.Progress.Total)
	}
	b.WriteString("\n")

	if in.Plan != nil {
		b.WriteString(PlanMarkdown(*in.Plan))
		b.WriteString("\n")
	}
	if in.Timeline != nil {
		b.WriteString(TimelineMarkdown(*in.Timeline))
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func PlanMarkdown(p plannerdto.PlanOutput) string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "## Goal plan: %d marks\n\n", p.Goal)
	b.WriteString("| # | Subject | Target | Share | Priority |\n|---|---|---|---|---|\n")
	for _, r := range p.Rows {
		fmt.Fprintf(&b, "| %d | %s | %d / %d | %.1f%% | %s |\n", r.Rank, r.Name, r.Allocated, r.Marks, r.Share, r.Priority)
	}
	fmt.Fprintf(&b, "\nAllocated %d of %d marks.\n", p.TotalAllocated, p.Goal)
	if p.SafetyNote != "" {
		fmt.Fprintf(&b, "\n> %s\n", p.SafetyNote)
	}
	return b.String()
}

func TimelineMarkdown(t timelinedto.TimelineOutput) string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "## %s\n\n%s\n\n", t.Heading, t.Summary)
	for _, p := range t.Phases {
		fmt.Fprintf(&b, "### %s\n\n_%s_\n\n", p.Title, p.Period)
		for _, f := range p.Focus {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// DaysLeft renders an undefined projection as a dash.
func DaysLeft(s studytimedto.StatsOutput) string {
	if !s.HasDaysLeft {
		return "–"
	}
	return fmt.Sprintf("%.1f", s.DaysLeft)
}

func FinishDate(s studytimedto.StatsOutput) string {
	if !s.HasFinishDate {
		return "–"
	}
	return s.FinishDate.Format("2006-01-02")
}

func round1(v float64) float64 {
	return float64(int64(v*10+0.5)) / 10
}
