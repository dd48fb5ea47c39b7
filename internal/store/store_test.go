package store

import (
	"context"
	"testing"
	"time"

	"github.com/mathmentor/mathmentor/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func sampleRecord(sessionID, userID string) AssessmentRecord {
	return AssessmentRecord{
		SessionID:        sessionID,
		UserID:           userID,
		Topic:            "algebra",
		Difficulty:       2,
		TotalQuestions:   5,
		CorrectAnswers:   3,
		ScorePercentage:  60,
		TimeSpentSeconds: 120,
		CompletedAt:      time.Now().UTC(),
		Responses: []ResponseRecord{
			{QuestionText: "Solve: 2x + 6 = 14", CorrectAnswer: "4", UserAnswer: "4", IsCorrect: true, TimeSpentSeconds: 30},
			{QuestionText: "Simplify: 3(x+2)-2x", CorrectAnswer: "x+6", UserAnswer: "x + 6", IsCorrect: true, TimeSpentSeconds: 45},
			{QuestionText: "Factor: x^2-9", CorrectAnswer: "(x-3)(x+3)", UserAnswer: "", IsCorrect: false, TimeSpentSeconds: 45},
		},
	}
}

func TestAssessmentRecordAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.Assessments().(*assessmentRepo)
	ctx := context.Background()

	if err := repo.Record(ctx, sampleRecord("sess-1", "user-a")); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := repo.RecentByUser(ctx, "user-a", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d sessions, want 1", len(got))
	}
	if got[0].Topic != "algebra" || got[0].ScorePercentage != 60 {
		t.Errorf("session = %+v", got[0])
	}

	responses, err := repo.ResponsesBySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("responses: %v", err)
	}
	if len(responses) != 3 {
		t.Fatalf("got %d responses, want 3", len(responses))
	}
	if responses[2].UserAnswer != "" || responses[2].IsCorrect {
		t.Errorf("skipped question = %+v, want empty incorrect", responses[2])
	}

	n, err := repo.CountByUser(ctx, "user-a")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestAssessmentBySession(t *testing.T) {
	s := openTestStore(t)
	repo := s.Assessments()
	ctx := context.Background()

	if err := repo.Record(ctx, sampleRecord("sess-1", "user-a")); err != nil {
		t.Fatalf("record: %v", err)
	}

	rec, err := repo.BySession(ctx, "user-a", "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if rec == nil {
		t.Fatal("got nil, want the recorded session")
	}
	if rec.Topic != "algebra" || len(rec.Responses) != 3 {
		t.Errorf("session = %+v", rec)
	}
	if rec.Responses[2].IsCorrect {
		t.Error("skipped question marked correct")
	}

	// Another learner's id must not reach the session.
	foreign, err := repo.BySession(ctx, "user-b", "sess-1")
	if err != nil {
		t.Fatalf("foreign lookup: %v", err)
	}
	if foreign != nil {
		t.Errorf("foreign lookup = %+v, want nil", foreign)
	}

	missing, err := repo.BySession(ctx, "user-a", "no-such-session")
	if err != nil || missing != nil {
		t.Errorf("missing lookup = (%+v, %v), want (nil, nil)", missing, err)
	}
}

func TestAssessmentDuplicateSessionRollsBack(t *testing.T) {
	s := openTestStore(t)
	repo := s.Assessments().(*assessmentRepo)
	ctx := context.Background()

	if err := repo.Record(ctx, sampleRecord("sess-dup", "user-a")); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if err := repo.Record(ctx, sampleRecord("sess-dup", "user-a")); err == nil {
		t.Fatal("duplicate session ID should fail")
	}

	// The failed write must not leave orphan responses behind.
	responses, err := repo.ResponsesBySession(ctx, "sess-dup")
	if err != nil {
		t.Fatalf("responses: %v", err)
	}
	if len(responses) != 3 {
		t.Errorf("got %d responses after failed duplicate, want the original 3", len(responses))
	}
}

func TestProgressUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	if got, err := repo.Get(ctx, "user-a", "algebra"); err != nil || got != nil {
		t.Fatalf("unpracticed topic = (%+v, %v), want (nil, nil)", got, err)
	}

	first := TopicProgressData{
		UserID: "user-a", Topic: "algebra",
		TotalQuestionsAttempted: 5, CorrectAnswers: 3, MasteryLevel: 60,
		LastPracticedAt: time.Now().UTC(),
	}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("insert: %v", err)
	}

	second := first
	second.TotalQuestionsAttempted = 10
	second.CorrectAnswers = 8
	second.MasteryLevel = 80
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(ctx, "user-a", "algebra")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalQuestionsAttempted != 10 || got.MasteryLevel != 80 {
		t.Errorf("after upsert = %+v", got)
	}

	all, err := repo.ByUser(ctx, "user-a")
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d rows, want 1 (upsert must not duplicate)", len(all))
	}
}

func TestAchievementAwardAndHas(t *testing.T) {
	s := openTestStore(t)
	repo := s.Achievements()
	ctx := context.Background()

	has, err := repo.Has(ctx, "user-a", "first_assessment", nil)
	if err != nil || has {
		t.Fatalf("Has before award = (%v, %v), want (false, nil)", has, err)
	}

	if err := repo.Award(ctx, AchievementData{
		UserID: "user-a", Type: "topic_mastery",
		Data:     map[string]any{"topic": "algebra"},
		EarnedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("award: %v", err)
	}

	// Same type, different topic scope: not yet earned.
	has, err = repo.Has(ctx, "user-a", "topic_mastery", map[string]any{"topic": "geometry"})
	if err != nil || has {
		t.Errorf("Has(geometry) = (%v, %v), want (false, nil)", has, err)
	}
	has, err = repo.Has(ctx, "user-a", "topic_mastery", map[string]any{"topic": "algebra"})
	if err != nil || !has {
		t.Errorf("Has(algebra) = (%v, %v), want (true, nil)", has, err)
	}

	badges, err := repo.ByUser(ctx, "user-a")
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(badges) != 1 || badges[0].Type != "topic_mastery" {
		t.Errorf("badges = %+v", badges)
	}
}

func TestSettingsDefaultsAndRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Settings()
	ctx := context.Background()

	got, err := repo.Get(ctx, "user-a")
	if err != nil {
		t.Fatalf("get defaults: %v", err)
	}
	if got.PreferredDifficulty != DefaultPreferredDifficulty || got.DailyGoal != DefaultDailyGoal {
		t.Errorf("defaults = %+v", got)
	}

	if err := repo.Set(ctx, SettingData{UserID: "user-a", PreferredDifficulty: 3, DailyGoal: 25}); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err = repo.Get(ctx, "user-a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PreferredDifficulty != 3 || got.DailyGoal != 25 {
		t.Errorf("after set = %+v", got)
	}
}

func TestRequestLogRecords(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.RequestLog().RecordModelRequest(ctx, llm.RequestEntry{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "chat-tutor",
		InputTokens:  120,
		OutputTokens: 250,
		LatencyMs:    800,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	n, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("events = %d, want 1", n)
	}
}
