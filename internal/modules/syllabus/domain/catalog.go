package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects one syllabus/weightage table.
type Mode string

const (
	ModeDA  Mode = "da"
	ModeCSE Mode = "cse"
)

type Subject struct {
	ID        string
	Name      string
	Topics    []string
	Important []int
}

// Weightage is static reference data for the goal planner.
type Weightage struct {
	ID         string
	Name       string
	Marks      int
	Difficulty int
	Note       string
}

type Catalog struct {
	Mode      Mode
	Label     string
	Overview  string
	Subjects  []Subject
	Weightage []Weightage
}

// TopicID addresses one checklist entry as <subjectId>_<topicIndex>.
func TopicID(subjectID string, index int) string {
	return subjectID + "_" + strconv.Itoa(index)
}

// ParseTopicID splits at the last underscore since subject ids contain
// underscores themselves.
func ParseTopicID(topicID string) (string, int, error) {
	idx := strings.LastIndex(topicID, "_")
	if idx <= 0 || idx == len(topicID)-1 {
		return "", 0, fmt.Errorf("malformed topic id %q", topicID)
	}
	n, err := strconv.Atoi(topicID[idx+1:])
	if err != nil || n < 0 {
		return "", 0, fmt.Errorf("malformed topic id %q", topicID)
	}
	return topicID[:idx], n, nil
}

func (s Subject) IsImportant(index int) bool {
	for _, i := range s.Important {
		if i == index {
			return true
		}
	}
	return false
}

func (s Subject) TopicIDs() []string {
	out := make([]string, len(s.Topics))
	for i := range s.Topics {
		out[i] = TopicID(s.ID, i)
	}
	return out
}

func (c Catalog) Subject(id string) (Subject, bool) {
	for _, s := range c.Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// HasTopic reports whether topicID addresses a topic of this catalog.
func (c Catalog) HasTopic(topicID string) bool {
	subjectID, index, err := ParseTopicID(topicID)
	if err != nil {
		return false
	}
	s, ok := c.Subject(subjectID)
	return ok && index < len(s.Topics)
}

func (c Catalog) TopicCount() int {
	n := 0
	for _, s := range c.Subjects {
		n += len(s.Topics)
	}
	return n
}

func (w Weightage) Validate() error {
	if strings.TrimSpace(w.ID) == "" {
		return fmt.Errorf("weightage id is required")
	}
	if w.Marks <= 0 {
		return fmt.Errorf("weightage %s: marks must be positive", w.ID)
	}
	if w.Difficulty < 1 || w.Difficulty > 3 {
		return fmt.Errorf("weightage %s: difficulty must be 1..3", w.ID)
	}
	return nil
}

func (c Catalog) Validate() error {
	if strings.TrimSpace(string(c.Mode)) == "" {
		return fmt.Errorf("catalog mode is required")
	}
	seen := map[string]bool{}
	for _, s := range c.Subjects {
		if strings.TrimSpace(s.ID) == "" {
			return fmt.Errorf("mode %s: subject id is required", c.Mode)
		}
		if seen[s.ID] {
			return fmt.Errorf("mode %s: duplicate subject %s", c.Mode, s.ID)
		}
		seen[s.ID] = true
		for _, i := range s.Important {
			if i < 0 || i >= len(s.Topics) {
				return fmt.Errorf("mode %s: subject %s important index %d out of range", c.Mode, s.ID, i)
			}
		}
	}
	for _, w := range c.Weightage {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("mode %s: %w", c.Mode, err)
		}
	}
	return nil
}
