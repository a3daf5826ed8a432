package domain

import "math"

// State maps topic ids to completion. A missing id means not done.
type State map[string]bool

type Progress struct {
	Done    int
	Total   int
	Percent int
}

func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Set returns a copy with topicID marked; explicit false is kept so the
// payload mirrors what the user last chose.
func (s State) Set(topicID string, done bool) State {
	out := s.Clone()
	out[topicID] = done
	return out
}

func (s State) Done(topicID string) bool {
	return s[topicID]
}

// NewProgress rounds half up, and an empty set is 0%.
func NewProgress(done, total int) Progress {
	if total <= 0 {
		return Progress{Done: done, Total: total}
	}
	return Progress{
		Done:    done,
		Total:   total,
		Percent: int(math.Floor(float64(done)/float64(total)*100 + 0.5)),
	}
}

func Measure(s State, topicIDs []string) Progress {
	done := 0
	for _, id := range topicIDs {
		if s.Done(id) {
			done++
		}
	}
	return NewProgress(done, len(topicIDs))
}
