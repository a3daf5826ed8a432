package domain

import (
	"math"
	"sort"
)

type Priority string

const (
	PriorityHigh     Priority = "High"
	PriorityOptional Priority = "Optional / buffer"

	// SafeShare is the fraction of a subject's marks a plan may count on.
	SafeShare = 0.8
)

type Subject struct {
	ID         string
	Name       string
	Marks      int
	Difficulty int
	Note       string
}

// Score ranks subjects by marks per unit of difficulty.
func (s Subject) Score() float64 {
	return float64(s.Marks) / float64(s.Difficulty)
}

// MaxSafe is SafeShare of the marks rounded half up.
func (s Subject) MaxSafe() int {
	return int(math.Floor(float64(s.Marks)*SafeShare + 0.5))
}

type Allocation struct {
	Subject   Subject
	Allocated int
	Priority  Priority
}

type Summary struct {
	Target         int
	TotalAllocated int
	Shortfall      int
	// SafetyNote is set when the allocations fall short of the target.
	SafetyNote bool
}

// Plan walks subjects from best to worst score, giving each the smaller of
// its safe maximum and what is still needed. Every subject appears once, in
// ranked order. A non-positive target yields no plan.
func Plan(target int, subjects []Subject) []Allocation {
	if target <= 0 {
		return nil
	}
	ranked := make([]Subject, len(subjects))
	copy(ranked, subjects)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score() > ranked[b].Score()
	})

	out := make([]Allocation, 0, len(ranked))
	remaining := target
	for _, s := range ranked {
		if remaining <= 0 {
			out = append(out, Allocation{Subject: s, Priority: PriorityOptional})
			continue
		}
		allocated := min(s.MaxSafe(), remaining)
		remaining -= allocated
		priority := PriorityOptional
		if allocated > 0 {
			priority = PriorityHigh
		}
		out = append(out, Allocation{Subject: s, Allocated: allocated, Priority: priority})
	}
	return out
}

func Summarize(target int, plan []Allocation) Summary {
	total := 0
	for _, a := range plan {
		total += a.Allocated
	}
	return Summary{
		Target:         target,
		TotalAllocated: total,
		Shortfall:      max(0, target-total),
		SafetyNote:     total < target,
	}
}

// Share is the allocation as a percentage of the target.
func (a Allocation) Share(target int) float64 {
	if a.Allocated <= 0 || target <= 0 {
		return 0
	}
	return float64(a.Allocated) / float64(target) * 100
}
