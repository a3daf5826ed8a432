package dto

import "time"

type StatsOutput struct {
	TodaySeconds   int64
	TodayHours     float64
	AllTimeHours   float64
	AveragePerDay  float64
	TargetHours    int
	RemainingHours float64
	DaysLeft       float64
	HasDaysLeft    bool
	FinishDate     time.Time
	HasFinishDate  bool
}

type SnapshotOutput struct {
	TimerState     string
	SessionSeconds int64
	Session        string
	Stats          StatsOutput
}

type PauseOutput struct {
	Paused   bool
	Credited int64
	DayKey   string
	Stats    StatsOutput
}

type ActiveSessionOutput struct {
	SessionID      string
	StartedAt      time.Time
	ElapsedSeconds int64
	Elapsed        string
}

type DayOutput struct {
	Day     string
	Seconds int64
	Hours   float64
}
