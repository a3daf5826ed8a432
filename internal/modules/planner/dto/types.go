package dto

type AllocationOutput struct {
	Rank       int
	ID         string
	Name       string
	Marks      int
	Difficulty int
	Score      float64
	MaxSafe    int
	Allocated  int
	Share      float64
	Priority   string
	Note       string
}

type PlanOutput struct {
	Mode           string
	Label          string
	Goal           int
	Rows           []AllocationOutput
	TotalAllocated int
	Shortfall      int
	SafetyNote     string
}
