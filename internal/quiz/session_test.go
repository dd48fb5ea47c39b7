package quiz

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/mathmentor/mathmentor/internal/questions"
)

func testSource(t *testing.T) *questions.Store {
	t.Helper()
	s, err := questions.NewWithCatalog(questions.Catalog(), rand.New(rand.NewPCG(3, 9)))
	if err != nil {
		t.Fatalf("NewWithCatalog: %v", err)
	}
	return s
}

func startedSession(t *testing.T, count int) *Session {
	t.Helper()
	s := NewSession(testSource(t))
	if err := s.StartRandom(count); err != nil {
		t.Fatalf("StartRandom(%d): %v", count, err)
	}
	return s
}

func TestStart_NoQuestionsStaysInSetup(t *testing.T) {
	s := NewSession(testSource(t))

	err := s.Start("nonexistent-topic", 1, 5)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("Start = %v, want ErrNoQuestions", err)
	}
	if s.State() != StateSetup {
		t.Errorf("state = %v, want setup (must not enter in_progress)", s.State())
	}
}

func TestStart_EntersInProgressAtZero(t *testing.T) {
	s := NewSession(testSource(t))

	if err := s.Start("algebra", 1, 2); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.State() != StateInProgress {
		t.Fatalf("state = %v, want in_progress", s.State())
	}
	if s.Position() != 0 {
		t.Errorf("position = %d, want 0", s.Position())
	}
	for i := range s.Questions() {
		if s.Answer(i) != "" {
			t.Errorf("answer %d = %q, want empty", i, s.Answer(i))
		}
	}
}

func TestStart_Twice(t *testing.T) {
	s := startedSession(t, 3)
	if err := s.StartRandom(3); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second start = %v, want ErrAlreadyStarted", err)
	}
}

func TestSubmitAnswer_EmptyRejectedWithoutAdvancing(t *testing.T) {
	s := startedSession(t, 3)

	for _, in := range []string{"", "   ", "\t\n"} {
		if err := s.SubmitAnswer(in); !errors.Is(err, ErrEmptyAnswer) {
			t.Errorf("SubmitAnswer(%q) = %v, want ErrEmptyAnswer", in, err)
		}
	}
	if s.Position() != 0 {
		t.Errorf("position = %d, want 0 after rejected submissions", s.Position())
	}
	if s.State() != StateInProgress {
		t.Errorf("state = %v, want in_progress", s.State())
	}
}

func TestSubmitAnswer_CompletesExactlyOnLastCall(t *testing.T) {
	s := startedSession(t, 5)

	for i := range 5 {
		if s.State() == StateComplete {
			t.Fatalf("complete after %d submissions, want 5", i)
		}
		if err := s.SubmitAnswer("guess"); err != nil {
			t.Fatalf("SubmitAnswer %d: %v", i, err)
		}
	}
	if s.State() != StateComplete {
		t.Fatalf("state = %v, want complete after 5th submission", s.State())
	}
	if s.Duration() < 0 {
		t.Error("negative session duration")
	}
}

func TestSubmitAnswer_ClearsHintFlag(t *testing.T) {
	s := startedSession(t, 2)

	if err := s.ShowHints(); err != nil {
		t.Fatalf("ShowHints: %v", err)
	}
	if !s.HintsShown() {
		t.Fatal("expected hint flag set")
	}
	if err := s.SubmitAnswer("7"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if s.HintsShown() {
		t.Error("hint flag still set after submission")
	}
}

func TestPrevious_RestoresAnswerWithoutMutating(t *testing.T) {
	s := startedSession(t, 3)

	if _, ok := s.Previous(); ok {
		t.Error("Previous at position 0 should report false")
	}

	if err := s.SubmitAnswer("first"); err != nil {
		t.Fatal(err)
	}

	prev, ok := s.Previous()
	if !ok {
		t.Fatal("Previous should succeed at position 1")
	}
	if prev != "first" {
		t.Errorf("Previous = %q, want %q", prev, "first")
	}
	if s.Position() != 0 {
		t.Errorf("position = %d, want 0", s.Position())
	}
	if s.Answer(0) != "first" {
		t.Errorf("recorded answer mutated: %q", s.Answer(0))
	}
}

func TestScore_DerivedFromRawAnswers(t *testing.T) {
	s := NewSession(nil)
	qs := []questions.Question{
		{ID: "q0", Prompt: "p0", CorrectAnswer: "1"},
		{ID: "q1", Prompt: "p1", CorrectAnswer: "2"},
		{ID: "q2", Prompt: "p2", CorrectAnswer: "3"},
		{ID: "q3", Prompt: "p3", CorrectAnswer: "4"},
		{ID: "q4", Prompt: "p4", CorrectAnswer: "5"},
	}
	if err := s.StartWith(qs); err != nil {
		t.Fatal(err)
	}

	// Correct at indices 0, 2, 4.
	answers := []string{"1", "wrong", " 3 ", "nope", "(5)"}
	for _, a := range answers {
		if err := s.SubmitAnswer(a); err != nil {
			t.Fatal(err)
		}
	}

	r := s.Score()
	if r.Correct != 3 {
		t.Errorf("Correct = %d, want 3", r.Correct)
	}
	if r.Percentage != 60 {
		t.Errorf("Percentage = %d, want 60", r.Percentage)
	}
	if r.Total != 5 {
		t.Errorf("Total = %d, want 5", r.Total)
	}
	for _, i := range []int{0, 2, 4} {
		if !r.PerQuestion[i].Correct {
			t.Errorf("index %d graded incorrect, want correct", i)
		}
	}
}

func TestScore_MissingAnswersCountIncorrect(t *testing.T) {
	s := startedSession(t, 4)
	if err := s.SubmitAnswer("something"); err != nil {
		t.Fatal(err)
	}

	// Speculative score mid-session: three unanswered indices.
	r := s.Score()
	if r.Total != 4 {
		t.Errorf("Total = %d, want 4", r.Total)
	}
	if r.Correct > 1 {
		t.Errorf("Correct = %d, unanswered questions must not grade correct", r.Correct)
	}
}

func TestPercentage_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{4, 5, 80},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
		{0, 5, 0},
		{5, 5, 100},
		{0, 0, 0},
	}
	for _, tc := range tests {
		got := Percentage(tc.correct, tc.total)
		if got != tc.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.want)
		}
	}
}

func TestReset_ReturnsToFreshSetup(t *testing.T) {
	s := startedSession(t, 2)
	oldID := s.ID
	if err := s.SubmitAnswer("a"); err != nil {
		t.Fatal(err)
	}

	s.Reset()

	if s.State() != StateSetup {
		t.Errorf("state = %v, want setup", s.State())
	}
	if s.Position() != 0 {
		t.Errorf("position = %d, want 0", s.Position())
	}
	if len(s.Questions()) != 0 {
		t.Errorf("questions not discarded")
	}
	if s.ID == oldID {
		t.Error("reset session kept its old id")
	}

	// A reset session can start again.
	if err := s.StartRandom(2); err != nil {
		t.Fatalf("restart after reset: %v", err)
	}
}
