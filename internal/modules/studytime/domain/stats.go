package domain

import (
	"fmt"
	"math"
	"time"
)

const secondsPerHour = 3600.0

type Stats struct {
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

func TodayHours(r StudyRecord, now time.Time) float64 {
	return float64(r.Days[DayKey(now)]) / secondsPerHour
}

func AllTimeHours(r StudyRecord) float64 {
	return float64(r.AllTimeSeconds) / secondsPerHour
}

// AveragePerDay divides by the number of days that have any entry, not by
// calendar days elapsed.
func AveragePerDay(r StudyRecord) float64 {
	if len(r.Days) == 0 {
		return 0
	}
	return AllTimeHours(r) / float64(len(r.Days))
}

func RemainingHours(r StudyRecord) float64 {
	return math.Max(0, float64(r.TargetHours)-AllTimeHours(r))
}

func DaysLeft(r StudyRecord) (float64, bool) {
	avg := AveragePerDay(r)
	remaining := RemainingHours(r)
	if avg <= 0 || remaining <= 0 {
		return 0, false
	}
	return remaining / avg, true
}

// FinishDate is today plus the whole days still needed at the current pace.
func FinishDate(r StudyRecord, today time.Time) (time.Time, bool) {
	days, ok := DaysLeft(r)
	if !ok {
		return time.Time{}, false
	}
	y, m, d := today.Date()
	return time.Date(y, m, d+int(math.Ceil(days)), 0, 0, 0, 0, today.Location()), true
}

func Project(r StudyRecord, now time.Time) Stats {
	s := Stats{
		TodaySeconds:   r.Days[DayKey(now)],
		TodayHours:     TodayHours(r, now),
		AllTimeHours:   AllTimeHours(r),
		AveragePerDay:  AveragePerDay(r),
		TargetHours:    r.TargetHours,
		RemainingHours: RemainingHours(r),
	}
	s.DaysLeft, s.HasDaysLeft = DaysLeft(r)
	s.FinishDate, s.HasFinishDate = FinishDate(r, now)
	return s
}

func FormatHMS(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1f h", hours)
}
