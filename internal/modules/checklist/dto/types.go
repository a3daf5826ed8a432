package dto

type ProgressOutput struct {
	Done    int
	Total   int
	Percent int
}

type TopicOutput struct {
	ID        string
	Index     int
	Title     string
	Important bool
	Done      bool
}

type SubjectOutput struct {
	ID       string
	Name     string
	Topics   []TopicOutput
	Progress ProgressOutput
}

type SubjectProgressOutput struct {
	ID       string
	Name     string
	Progress ProgressOutput
}

type ChecklistOutput struct {
	Mode     string
	Label    string
	Subjects []SubjectOutput
	Overall  ProgressOutput
}

type ProgressReport struct {
	Mode     string
	Label    string
	Subjects []SubjectProgressOutput
	Overall  ProgressOutput
}

type ToggleOutput struct {
	TopicID string
	Title   string
	Done    bool
	Subject SubjectProgressOutput
	Overall ProgressOutput
}
