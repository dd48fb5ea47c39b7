package questions

import (
	"math/rand/v2"
	"testing"

	"github.com/mathmentor/mathmentor/internal/answer"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewWithCatalog(Catalog(), rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("NewWithCatalog: %v", err)
	}
	return s
}

func TestCatalog_AnswersNormalizeNonEmpty(t *testing.T) {
	for _, q := range Catalog() {
		if answer.Normalize(q.CorrectAnswer) == "" {
			t.Errorf("question %s: normalized correct answer is empty", q.ID)
		}
	}
}

func TestCatalog_TopicsAreKnown(t *testing.T) {
	for _, q := range Catalog() {
		if !KnownTopic(q.Topic) {
			t.Errorf("question %s: unknown topic %q", q.ID, q.Topic)
		}
		if q.Difficulty < 1 || q.Difficulty > 3 {
			t.Errorf("question %s: difficulty %d out of range", q.ID, q.Difficulty)
		}
	}
}

func TestNewWithCatalog_RejectsDuplicateID(t *testing.T) {
	catalog := []Question{
		{ID: "dup", Prompt: "a", CorrectAnswer: "1", Topic: "algebra", Difficulty: 1},
		{ID: "dup", Prompt: "b", CorrectAnswer: "2", Topic: "algebra", Difficulty: 1},
	}
	if _, err := NewWithCatalog(catalog, rand.New(rand.NewPCG(0, 0))); err == nil {
		t.Error("expected error for duplicate question id")
	}
}

func TestNewWithCatalog_RejectsBlankAnswer(t *testing.T) {
	catalog := []Question{
		{ID: "blank", Prompt: "a", CorrectAnswer: "( = )", Topic: "algebra", Difficulty: 1},
	}
	if _, err := NewWithCatalog(catalog, rand.New(rand.NewPCG(0, 0))); err == nil {
		t.Error("expected error for answer that normalizes to empty")
	}
}

func TestByTopicAndDifficulty_SingleMatch(t *testing.T) {
	s := testStore(t)

	// The catalog has exactly one difficulty-3 calculus question.
	got := s.ByTopicAndDifficulty("calculus", 3, 5)
	if len(got) != 1 {
		t.Fatalf("got %d questions, want 1 (never padded, never duplicated)", len(got))
	}
	if got[0].ID != "calc_3_1" {
		t.Errorf("got question %s, want calc_3_1", got[0].ID)
	}
}

func TestByTopicAndDifficulty_NoMatch(t *testing.T) {
	s := testStore(t)

	got := s.ByTopicAndDifficulty("nonexistent-topic", 1, 5)
	if got == nil {
		t.Fatal("want empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("got %d questions, want 0", len(got))
	}
}

func TestSampling_NoDuplicatesWithinCall(t *testing.T) {
	s := testStore(t)

	for range 50 {
		got := s.Random(10)
		seen := make(map[string]bool, len(got))
		for _, q := range got {
			if seen[q.ID] {
				t.Fatalf("duplicate question %s in one sample", q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestRandom_CappedByCatalogSize(t *testing.T) {
	s := testStore(t)

	got := s.Random(1000)
	if len(got) != s.Len() {
		t.Errorf("got %d questions, want full catalog of %d", len(got), s.Len())
	}

	if got := s.Random(0); len(got) != 0 {
		t.Errorf("Random(0) returned %d questions, want 0", len(got))
	}
}

func TestWeakAreas_RestrictsTopics(t *testing.T) {
	s := testStore(t)

	got := s.WeakAreas([]string{"geometry", "calculus"}, 10)
	if len(got) == 0 {
		t.Fatal("expected matches for geometry and calculus")
	}
	for _, q := range got {
		if q.Topic != "geometry" && q.Topic != "calculus" {
			t.Errorf("question %s has topic %q, want geometry or calculus", q.ID, q.Topic)
		}
	}
}

func TestSampling_DeterministicWithSeededSource(t *testing.T) {
	a, err := NewWithCatalog(Catalog(), rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewWithCatalog(Catalog(), rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatal(err)
	}

	got1 := a.Random(5)
	got2 := b.Random(5)
	if len(got1) != len(got2) {
		t.Fatalf("sample sizes differ: %d vs %d", len(got1), len(got2))
	}
	for i := range got1 {
		if got1[i].ID != got2[i].ID {
			t.Errorf("index %d: %s vs %s, want identical order for identical seeds", i, got1[i].ID, got2[i].ID)
		}
	}
}
