package dto

import "time"

type PhaseOutput struct {
	Title  string
	Period string
	Focus  []string
}

type TimelineOutput struct {
	Year       int
	ExamDate   time.Time
	MonthsLeft float64
	Template   string
	Heading    string
	Summary    string
	Phases     []PhaseOutput
}
