package report_test

import (
	"strings"
	"testing"
	"time"

	checklistdto "gateprep/internal/modules/checklist/dto"
	plannerdto "gateprep/internal/modules/planner/dto"
	studytimedto "gateprep/internal/modules/studytime/dto"
	"gateprep/internal/platform/markdown"
	"gateprep/internal/report"
)

func sampleInput() report.Input {
	return report.Input{
		GeneratedAt: time.Date(2025, 10, 15, 20, 0, 0, 0, time.UTC),
		Stats: studytimedto.StatsOutput{
			TodayHours: 1.5, AllTimeHours: 42.25, AveragePerDay: 3, TargetHours: 850, RemainingHours: 807.75,
		},
		History: []studytimedto.DayOutput{{Day: "2025-10-14", Seconds: 3600, Hours: 1}},
		Progress: checklistdto.ProgressReport{
			Mode: "da", Label: "GATE DA / AI",
			Subjects: []checklistdto.SubjectProgressOutput{{ID: "ga", Name: "General Aptitude", Progress: checklistdto.ProgressOutput{Done: 3, Total: 9, Percent: 33}}},
			Overall:  checklistdto.ProgressOutput{Done: 3, Total: 107, Percent: 3},
		},
		Plan: &plannerdto.PlanOutput{
			Goal: 60, TotalAllocated: 60,
			Rows: []plannerdto.AllocationOutput{{Rank: 1, Name: "General Aptitude", Marks: 15, Allocated: 12, Share: 20, Priority: "High"}},
		},
	}
}

func TestRenderStandaloneNote(t *testing.T) {
	t.Parallel()
	out, err := report.Render(sampleInput())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := markdown.Parse(out)
	if err != nil {
		t.Fatalf("parse rendered note: %v", err)
	}
	if doc.Meta["gateprep_mode"] != "da" || doc.Meta["gateprep_target"] != 850 {
		t.Fatalf("unexpected frontmatter %+v", doc.Meta)
	}
	for _, want := range []string{"| Days left | – |", "General Aptitude: 33% (3/9)", "| 1 | General Aptitude | 12 / 15 | 20.0% | High |", "2025-10-14: 1.0 h"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestMergeKeepsHandWrittenParts(t *testing.T) {
	t.Parallel()
	existing := "---\nauthor: me\n---\n# My journal\n\nthoughts\n"
	first, err := report.Merge(existing, sampleInput())
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	in := sampleInput()
	in.Stats.AllTimeHours = 50
	second, err := report.Merge(first, in)
	if err != nil {
		t.Fatalf("second merge: %v", err)
	}
	if !strings.Contains(second, "author: me") || !strings.Contains(second, "thoughts") {
		t.Fatalf("hand-written content lost:\n%s", second)
	}
	if strings.Count(second, report.Block.Start()) != 1 || !strings.Contains(second, "| All time | 50.0 h |") {
		t.Fatalf("generated block not refreshed:\n%s", second)
	}
}
