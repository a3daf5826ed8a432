package domain_test

import (
	"testing"

	"gateprep/internal/modules/syllabus/domain"
)

func TestTopicIDRoundTripWithUnderscoreSubject(t *testing.T) {
	t.Parallel()
	id := domain.TopicID("prob_stats", 12)
	if id != "prob_stats_12" {
		t.Fatalf("unexpected topic id %s", id)
	}
	subject, index, err := domain.ParseTopicID(id)
	if err != nil || subject != "prob_stats" || index != 12 {
		t.Fatalf("parse %s: %s %d %v", id, subject, index, err)
	}
	for _, bad := range []string{"", "ml", "_3", "ml_", "ml_x", "ml_-1"} {
		if _, _, err := domain.ParseTopicID(bad); err == nil {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestCatalogHasTopicAndValidate(t *testing.T) {
	t.Parallel()
	c := domain.Catalog{
		Mode: domain.ModeDA,
		Subjects: []domain.Subject{
			{ID: "ml", Name: "Machine Learning", Topics: []string{"a", "b"}, Important: []int{1}},
		},
		Weightage: []domain.Weightage{{ID: "ml", Name: "ML", Marks: 11, Difficulty: 2}},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("catalog should be valid: %v", err)
	}
	if !c.HasTopic("ml_1") || c.HasTopic("ml_2") || c.HasTopic("ai_0") {
		t.Fatalf("unexpected topic membership")
	}
	if c.TopicCount() != 2 {
		t.Fatalf("expected 2 topics, got %d", c.TopicCount())
	}
	if s, _ := c.Subject("ml"); !s.IsImportant(1) || s.IsImportant(0) {
		t.Fatalf("unexpected important flags")
	}

	badImportant := c
	badImportant.Subjects = []domain.Subject{{ID: "ml", Topics: []string{"a"}, Important: []int{3}}}
	if err := badImportant.Validate(); err == nil {
		t.Fatalf("out of range important index should fail")
	}
	badDifficulty := c
	badDifficulty.Weightage = []domain.Weightage{{ID: "ml", Marks: 11, Difficulty: 4}}
	if err := badDifficulty.Validate(); err == nil {
		t.Fatalf("difficulty 4 should fail")
	}
	badMarks := c
	badMarks.Weightage = []domain.Weightage{{ID: "ml", Marks: 0, Difficulty: 1}}
	if err := badMarks.Validate(); err == nil {
		t.Fatalf("zero marks should fail")
	}
}
