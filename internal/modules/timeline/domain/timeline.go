package domain

import (
	"math"
	"time"
)

type Template string

const (
	TwoYear   Template = "two_year"
	OneYear   Template = "one_year"
	NineMonth Template = "nine_month"
	Crash     Template = "crash"
)

type Phase struct {
	Title  string
	Period string
	Focus  []string
}

// ExamDate assumes the exam sits on February 1 of its year.
func ExamDate(year int, loc *time.Location) time.Time {
	return time.Date(year, time.February, 1, 0, 0, 0, 0, loc)
}

// MonthsBetween counts calendar months and adds 0.3 when end's
// day-of-month is past start's. It never goes below zero.
func MonthsBetween(start, end time.Time) float64 {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	months := float64((ey-sy)*12 + int(em) - int(sm))
	if ed > sd {
		months += 0.3
	}
	return math.Max(0, months)
}

func PickTemplate(monthsLeft float64) Template {
	switch {
	case monthsLeft >= 24:
		return TwoYear
	case monthsLeft >= 12:
		return OneYear
	case monthsLeft >= 6:
		return NineMonth
	default:
		return Crash
	}
}

func Headline(t Template) string {
	switch t {
	case TwoYear:
		return "2‑year style roadmap"
	case OneYear:
		return "1‑year style roadmap"
	case NineMonth:
		return "9–12 month intensive plan"
	default:
		return "Crash‑course style plan"
	}
}

// Phases returns a fresh copy of the template's three phases.
func Phases(t Template) []Phase {
	src, ok := phases[t]
	if !ok {
		src = phases[Crash]
	}
	out := make([]Phase, len(src))
	for i, p := range src {
		out[i] = Phase{Title: p.Title, Period: p.Period, Focus: append([]string(nil), p.Focus...)}
	}
	return out
}

var phases = map[Template][]Phase{
	TwoYear: {
		{
			Title:  "Phase 1 – Foundations",
			Period: "First 6–8 months",
			Focus: []string{
				"Engineering maths: linear algebra, calculus, probability basics",
				"Programming + DSA fundamentals in one language",
				"Light start on DBMS and simple ML (regression, classification)",
				"Daily 30–60 min General Aptitude practice",
			},
		},
		{
			Title:  "Phase 2 – Core syllabus",
			Period: "Next 10–12 months",
			Focus: []string{
				"Full core syllabus (DA/CSE depending on mode)",
				"Topic‑wise practice and short notes",
				"Finish first pass of entire syllabus ~6 months before exam",
			},
		},
		{
			Title:  "Phase 3 – PYQs + mocks",
			Period: "Last 4–6 months",
			Focus: []string{
				"PYQs of last 10+ years",
				"Sectional and full‑length mocks with detailed analysis",
				"Multiple revision cycles using your short notes",
			},
		},
	},
	OneYear: {
		{
			Title:  "Phase 1 – Learning",
			Period: "First 5–6 months",
			Focus: []string{
				"Cover all high‑weight subjects once",
				"Prepare running notes and formula sheets",
				"Do basic PYQs after finishing each chapter",
			},
		},
		{
			Title:  "Phase 2 – Practice",
			Period: "Next 3–4 months",
			Focus: []string{
				"Second pass over weak subjects and tricky topics",
				"Daily mixed problem sets and timed section tests",
				"Refine short notes and error log from mistakes",
			},
		},
		{
			Title:  "Phase 3 – Revision & mocks",
			Period: "Last 2–3 months",
			Focus: []string{
				"Full‑length mocks 2–3 times per week",
				"Only revision, speed, accuracy and exam temperament",
				"Sleep schedule and stamina aligned with exam slot",
			},
		},
	},
	NineMonth: {
		{
			Title:  "Phase 1 – Condensed learning",
			Period: "First 3–4 months",
			Focus: []string{
				"Prioritise high‑weight topics",
				"Keep low‑weight topics basic but exam‑oriented",
				"Strict weekly targets and subject‑wise tests",
			},
		},
		{
			Title:  "Phase 2 – Heavy practice",
			Period: "Next 2–3 months",
			Focus: []string{
				"Finish remaining topics quickly",
				"Daily PYQs and mixed practice sets",
				"Start full‑length mocks at least once a week",
			},
		},
		{
			Title:  "Phase 3 – High‑intensity revision",
			Period: "Last 2 months",
			Focus: []string{
				"Short notes only; no new books",
				"Full mocks, detailed analysis, fix recurring mistakes",
				"Light but consistent aptitude practice",
			},
		},
	},
	Crash: {
		{
			Title:  "Phase 1 – Smart selection",
			Period: "Weeks 1–2",
			Focus: []string{
				"Identify your strong areas from college courses",
				"Prioritise 4–5 high‑weight subjects you can finish quickly",
				"Gather concise notes and PYQ‑oriented material only",
			},
		},
		{
			Title:  "Phase 2 – Focused grind",
			Period: "Next 6–8 weeks",
			Focus: []string{
				"Daily schedule: 2–3 subjects + mixed PYQs",
				"Skip ultra‑low‑weight or very tough fringe topics",
				"Take short mocks to learn time management",
			},
		},
		{
			Title:  "Phase 3 – Last lap",
			Period: "Final 2–3 weeks",
			Focus: []string{
				"Revise formula sheets and error log repeatedly",
				"Attempt a few full mocks, then taper volume",
				"Protect sleep, health and mental calm",
			},
		},
	},
}
