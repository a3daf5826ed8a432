package domain

import "time"

// ActiveSession is a wall-clock session that outlives a single process.
type ActiveSession struct {
	SessionID string    `json:"sessionId"`
	StartedAt time.Time `json:"startedAt"`
}

// Elapsed is the whole seconds between start and now, never negative.
func (a ActiveSession) Elapsed(now time.Time) int64 {
	d := now.Sub(a.StartedAt)
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}
