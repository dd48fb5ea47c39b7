package progress

import (
	"context"
	"testing"
	"time"

	"github.com/mathmentor/mathmentor/internal/questions"
	"github.com/mathmentor/mathmentor/internal/quiz"
	"github.com/mathmentor/mathmentor/internal/store"
)

// In-memory repositories. The ent-backed implementations are covered in
// the store package; these keep the service tests fast and focused.

type fakeAssessments struct {
	recs []store.AssessmentRecord
}

func (f *fakeAssessments) Record(_ context.Context, rec store.AssessmentRecord) error {
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeAssessments) RecentByUser(_ context.Context, userID string, limit int) ([]store.AssessmentRecord, error) {
	var out []store.AssessmentRecord
	for i := len(f.recs) - 1; i >= 0; i-- {
		if f.recs[i].UserID == userID {
			out = append(out, f.recs[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeAssessments) BySession(_ context.Context, userID, sessionID string) (*store.AssessmentRecord, error) {
	for _, r := range f.recs {
		if r.UserID == userID && r.SessionID == sessionID {
			rec := r
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAssessments) CountByUser(_ context.Context, userID string) (int, error) {
	n := 0
	for _, r := range f.recs {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeProgress struct {
	rows map[string]store.TopicProgressData
}

func progressKey(userID, topic string) string { return userID + "\x00" + topic }

func (f *fakeProgress) Get(_ context.Context, userID, topic string) (*store.TopicProgressData, error) {
	if row, ok := f.rows[progressKey(userID, topic)]; ok {
		return &row, nil
	}
	return nil, nil
}

func (f *fakeProgress) Upsert(_ context.Context, data store.TopicProgressData) error {
	if f.rows == nil {
		f.rows = map[string]store.TopicProgressData{}
	}
	f.rows[progressKey(data.UserID, data.Topic)] = data
	return nil
}

func (f *fakeProgress) ByUser(_ context.Context, userID string) ([]store.TopicProgressData, error) {
	var out []store.TopicProgressData
	for _, row := range f.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeAchievements struct {
	awards []store.AchievementData
}

func (f *fakeAchievements) Award(_ context.Context, a store.AchievementData) error {
	f.awards = append(f.awards, a)
	return nil
}

func (f *fakeAchievements) Has(_ context.Context, userID, achievementType string, matchData map[string]any) (bool, error) {
	for _, a := range f.awards {
		if a.UserID != userID || a.Type != achievementType {
			continue
		}
		if matchData == nil {
			return true, nil
		}
		match := true
		for k, v := range matchData {
			if a.Data[k] != v {
				match = false
				break
			}
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAchievements) ByUser(_ context.Context, userID string) ([]store.AchievementData, error) {
	var out []store.AchievementData
	for _, a := range f.awards {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fixture struct {
	svc          *Service
	assessments  *fakeAssessments
	progress     *fakeProgress
	achievements *fakeAchievements
}

func newFixture() *fixture {
	f := &fixture{
		assessments:  &fakeAssessments{},
		progress:     &fakeProgress{},
		achievements: &fakeAchievements{},
	}
	f.svc = NewService(f.assessments, f.progress, f.achievements)
	f.svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

// completedSession runs a 5-question algebra session answering the
// first nCorrect questions correctly and the rest wrong.
func completedSession(t *testing.T, nCorrect int) (*quiz.Session, quiz.Report) {
	t.Helper()

	qs := make([]questions.Question, 5)
	for i := range qs {
		qs[i] = questions.Question{
			ID: string(rune('a' + i)), Prompt: "q", CorrectAnswer: "42",
			Topic: "algebra", Difficulty: 2,
		}
	}
	sess := quiz.NewSession(nil)
	sess.Topic = "algebra"
	sess.Difficulty = 2
	if err := sess.StartWith(qs); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := range qs {
		ans := "wrong"
		if i < nCorrect {
			ans = "42"
		}
		if err := sess.SubmitAnswer(ans); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	return sess, sess.Score()
}

func TestRecordAssessment_WritesSessionAndResponses(t *testing.T) {
	f := newFixture()
	sess, report := completedSession(t, 3)

	if _, err := f.svc.RecordAssessment(context.Background(), "user-a", FromSession(sess, report)); err != nil {
		t.Fatalf("record: %v", err)
	}

	if len(f.assessments.recs) != 1 {
		t.Fatalf("got %d records, want 1", len(f.assessments.recs))
	}
	rec := f.assessments.recs[0]
	if rec.SessionID != sess.ID || rec.Topic != "algebra" || rec.Difficulty != 2 {
		t.Errorf("record = %+v", rec)
	}
	if rec.CorrectAnswers != 3 || rec.ScorePercentage != 60 {
		t.Errorf("score = %d/%d%%, want 3/60%%", rec.CorrectAnswers, rec.ScorePercentage)
	}
	if len(rec.Responses) != 5 {
		t.Fatalf("got %d responses, want 5", len(rec.Responses))
	}
	if !rec.Responses[0].IsCorrect || rec.Responses[4].IsCorrect {
		t.Errorf("per-question verdicts wrong: %+v", rec.Responses)
	}
}

func TestAssessment_ReturnsRecordedDetail(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	sess, report := completedSession(t, 3)

	if _, err := f.svc.RecordAssessment(ctx, "user-a", FromSession(sess, report)); err != nil {
		t.Fatalf("record: %v", err)
	}

	rec, err := f.svc.Assessment(ctx, "user-a", sess.ID)
	if err != nil {
		t.Fatalf("assessment: %v", err)
	}
	if rec == nil || len(rec.Responses) != 5 {
		t.Fatalf("detail = %+v, want 5 responses", rec)
	}

	// Other learners and unknown sessions come back nil.
	if rec, err := f.svc.Assessment(ctx, "user-b", sess.ID); err != nil || rec != nil {
		t.Errorf("foreign lookup = (%+v, %v), want (nil, nil)", rec, err)
	}
	if rec, err := f.svc.Assessment(ctx, "user-a", "missing"); err != nil || rec != nil {
		t.Errorf("missing lookup = (%+v, %v), want (nil, nil)", rec, err)
	}
}

func TestRecordAssessment_MasteryIsLifetimePercentage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	sess1, report1 := completedSession(t, 2) // 2/5
	if _, err := f.svc.RecordAssessment(ctx, "user-a", FromSession(sess1, report1)); err != nil {
		t.Fatalf("first record: %v", err)
	}
	sess2, report2 := completedSession(t, 5) // 5/5
	if _, err := f.svc.RecordAssessment(ctx, "user-a", FromSession(sess2, report2)); err != nil {
		t.Fatalf("second record: %v", err)
	}

	row, err := f.progress.Get(ctx, "user-a", "algebra")
	if err != nil || row == nil {
		t.Fatalf("progress row missing: %v", err)
	}
	if row.TotalQuestionsAttempted != 10 || row.CorrectAnswers != 7 {
		t.Errorf("totals = %d/%d, want 10/7", row.TotalQuestionsAttempted, row.CorrectAnswers)
	}
	if row.MasteryLevel != 70 {
		t.Errorf("mastery = %d, want lifetime 70", row.MasteryLevel)
	}
}

func TestRecordAssessment_FirstAssessmentBadge(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	sess, report := completedSession(t, 3)
	earned, err := f.svc.RecordAssessment(ctx, "user-a", FromSession(sess, report))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(earned) != 1 || earned[0].Type != FirstAssessment {
		t.Fatalf("earned = %+v, want just first_assessment", earned)
	}

	sess2, report2 := completedSession(t, 3)
	earned, err = f.svc.RecordAssessment(ctx, "user-a", FromSession(sess2, report2))
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	for _, a := range earned {
		if a.Type == FirstAssessment {
			t.Error("first_assessment awarded twice")
		}
	}
}

func TestRecordAssessment_PerfectScoreOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	sess, report := completedSession(t, 5)
	earned, err := f.svc.RecordAssessment(ctx, "user-a", FromSession(sess, report))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !hasType(earned, PerfectScore) {
		t.Errorf("perfect 5/5 did not earn perfect_score: %+v", earned)
	}

	sess2, report2 := completedSession(t, 5)
	earned, err = f.svc.RecordAssessment(ctx, "user-a", FromSession(sess2, report2))
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if hasType(earned, PerfectScore) {
		t.Error("perfect_score awarded twice")
	}
}

func TestRecordAssessment_TopicMasteryNeedsVolumeAndLevel(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Three sessions at 4/5: 12/15 = 80% but only 15 questions.
	var earned []store.AchievementData
	for range 3 {
		sess, report := completedSession(t, 4)
		var err error
		earned, err = f.svc.RecordAssessment(ctx, "user-a", FromSession(sess, report))
		if err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if hasType(earned, TopicMastery) {
		t.Error("topic_mastery awarded below the question floor")
	}

	// Fourth session: 16/20 = 80% over 20 questions.
	sess, report := completedSession(t, 4)
	earned, err := f.svc.RecordAssessment(ctx, "user-a", FromSession(sess, report))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !hasType(earned, TopicMastery) {
		t.Errorf("80%% over 20 questions did not earn topic_mastery: %+v", earned)
	}
}

func TestWeakTopics(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rows := []store.TopicProgressData{
		{UserID: "user-a", Topic: "algebra", TotalQuestionsAttempted: 10, CorrectAnswers: 4, MasteryLevel: 40},
		{UserID: "user-a", Topic: "geometry", TotalQuestionsAttempted: 3, CorrectAnswers: 0, MasteryLevel: 0},  // too few attempts
		{UserID: "user-a", Topic: "calculus", TotalQuestionsAttempted: 20, CorrectAnswers: 18, MasteryLevel: 90}, // strong
	}
	for _, row := range rows {
		if err := f.progress.Upsert(ctx, row); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	weak, err := f.svc.WeakTopics(ctx, "user-a")
	if err != nil {
		t.Fatalf("weak topics: %v", err)
	}
	if len(weak) != 1 || weak[0] != "algebra" {
		t.Errorf("weak = %v, want [algebra]", weak)
	}
}

func TestSummary(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	sess, report := completedSession(t, 5)
	if _, err := f.svc.RecordAssessment(ctx, "user-a", FromSession(sess, report)); err != nil {
		t.Fatalf("record: %v", err)
	}

	sum, err := f.svc.Summary(ctx, "user-a")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(sum.Topics) != 1 || sum.Topics[0].Topic != "algebra" {
		t.Errorf("topics = %+v", sum.Topics)
	}
	if len(sum.Recent) != 1 {
		t.Errorf("recent = %+v", sum.Recent)
	}
	// first_assessment and perfect_score.
	if len(sum.Achievements) != 2 {
		t.Errorf("achievements = %+v", sum.Achievements)
	}
}

func hasType(list []store.AchievementData, achievementType string) bool {
	for _, a := range list {
		if a.Type == achievementType {
			return true
		}
	}
	return false
}
