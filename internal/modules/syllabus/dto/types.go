package dto

type ModeOutput struct {
	Mode     string
	Label    string
	Overview string
	Active   bool
}

type TopicOutput struct {
	ID        string
	Index     int
	Title     string
	Important bool
}

type SubjectOutput struct {
	ID     string
	Name   string
	Topics []TopicOutput
}

type WeightageOutput struct {
	ID         string
	Name       string
	Marks      int
	Difficulty int
	Note       string
}

type CatalogOutput struct {
	Mode      string
	Label     string
	Overview  string
	Subjects  []SubjectOutput
	Weightage []WeightageOutput
}
