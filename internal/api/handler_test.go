package api

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mathmentor/mathmentor/internal/chat"
	"github.com/mathmentor/mathmentor/internal/progress"
	"github.com/mathmentor/mathmentor/internal/questiongen"
	"github.com/mathmentor/mathmentor/internal/questions"
	"github.com/mathmentor/mathmentor/internal/store"
)

// In-memory progress repositories for handler tests.

type memAssessments struct {
	recs []store.AssessmentRecord
}

func (m *memAssessments) Record(_ context.Context, rec store.AssessmentRecord) error {
	m.recs = append(m.recs, rec)
	return nil
}

func (m *memAssessments) RecentByUser(_ context.Context, userID string, limit int) ([]store.AssessmentRecord, error) {
	var out []store.AssessmentRecord
	for i := len(m.recs) - 1; i >= 0; i-- {
		if m.recs[i].UserID == userID {
			out = append(out, m.recs[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memAssessments) BySession(_ context.Context, userID, sessionID string) (*store.AssessmentRecord, error) {
	for _, r := range m.recs {
		if r.UserID == userID && r.SessionID == sessionID {
			rec := r
			return &rec, nil
		}
	}
	return nil, nil
}

func (m *memAssessments) CountByUser(_ context.Context, userID string) (int, error) {
	n := 0
	for _, r := range m.recs {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

type memProgress struct {
	rows map[string]store.TopicProgressData
}

func (m *memProgress) key(userID, topic string) string { return userID + "\x00" + topic }

func (m *memProgress) Get(_ context.Context, userID, topic string) (*store.TopicProgressData, error) {
	if row, ok := m.rows[m.key(userID, topic)]; ok {
		return &row, nil
	}
	return nil, nil
}

func (m *memProgress) Upsert(_ context.Context, data store.TopicProgressData) error {
	if m.rows == nil {
		m.rows = map[string]store.TopicProgressData{}
	}
	m.rows[m.key(data.UserID, data.Topic)] = data
	return nil
}

func (m *memProgress) ByUser(_ context.Context, userID string) ([]store.TopicProgressData, error) {
	var out []store.TopicProgressData
	for _, row := range m.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

type memAchievements struct {
	awards []store.AchievementData
}

func (m *memAchievements) Award(_ context.Context, a store.AchievementData) error {
	m.awards = append(m.awards, a)
	return nil
}

func (m *memAchievements) Has(_ context.Context, userID, achievementType string, matchData map[string]any) (bool, error) {
	for _, a := range m.awards {
		if a.UserID == userID && a.Type == achievementType {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAchievements) ByUser(_ context.Context, userID string) ([]store.AchievementData, error) {
	var out []store.AchievementData
	for _, a := range m.awards {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type memSettings struct {
	rows map[string]store.SettingData
}

func (m *memSettings) Get(_ context.Context, userID string) (store.SettingData, error) {
	if s, ok := m.rows[userID]; ok {
		return s, nil
	}
	return store.SettingData{
		UserID:              userID,
		PreferredDifficulty: store.DefaultPreferredDifficulty,
		DailyGoal:           store.DefaultDailyGoal,
	}, nil
}

func (m *memSettings) Set(_ context.Context, data store.SettingData) error {
	if m.rows == nil {
		m.rows = map[string]store.SettingData{}
	}
	m.rows[data.UserID] = data
	return nil
}

type testServer struct {
	router      chi.Router
	assessments *memAssessments
}

func newTestServer(t *testing.T, resolver chat.Resolver) *testServer {
	t.Helper()

	qs, err := questions.NewWithCatalog(questions.Catalog(), rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("catalog store: %v", err)
	}
	if resolver == nil {
		resolver = chat.NewStaticResolver()
	}

	assessments := &memAssessments{}
	prog := progress.NewService(assessments, &memProgress{}, &memAchievements{})
	h := NewHandler(qs, questiongen.NewCatalogGenerator(qs), resolver, prog, &memSettings{}, 5)
	identity := NewIdentity("test-secret", false)

	return &testServer{
		router:      NewRouter(h, identity),
		assessments: assessments,
	}
}

func (ts *testServer) do(t *testing.T, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, nil)
	rec := ts.do(t, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	// Probes must not mint learner cookies.
	if len(rec.Result().Cookies()) != 0 {
		t.Error("healthz set a cookie")
	}
}

func TestTopics(t *testing.T) {
	ts := newTestServer(t, nil)
	rec := ts.do(t, http.MethodGet, "/api/topics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Topics []questions.Topic `json:"topics"`
	}
	decodeBody(t, rec, &body)
	if len(body.Topics) != 5 {
		t.Errorf("got %d topics, want 5", len(body.Topics))
	}

	if len(rec.Result().Cookies()) == 0 {
		t.Error("first contact did not set the learner cookie")
	}
}

func TestGenerateQuestions(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPost, "/api/generate-questions",
		`{"topic":"arithmetic","difficulty":1,"count":2}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Questions []questions.Question `json:"questions"`
	}
	decodeBody(t, rec, &body)
	if len(body.Questions) != 2 {
		t.Errorf("got %d questions, want 2", len(body.Questions))
	}
	for _, q := range body.Questions {
		if q.Topic != "arithmetic" || q.Difficulty != 1 {
			t.Errorf("question outside scope: %+v", q)
		}
	}
}

func TestGenerateQuestionsValidation(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"unknown topic", `{"topic":"statistics","difficulty":1}`},
		{"difficulty too high", `{"topic":"algebra","difficulty":4}`},
		{"difficulty too low", `{"topic":"algebra","difficulty":0}`},
		{"negative count", `{"topic":"algebra","difficulty":1,"count":-1}`},
		{"zero count", `{"topic":"algebra","difficulty":1,"count":0}`},
		{"malformed body", `{"topic":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/generate-questions", tt.body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			var body map[string]string
			decodeBody(t, rec, &body)
			if body["error"] == "" {
				t.Error("error body missing")
			}
		})
	}
}

func TestChat(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPost, "/api/chat",
		`{"message":"how do I solve a quadratic equation?","conversationHistory":[]}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if !strings.Contains(body["response"], "Quadratic Formula") {
		t.Errorf("response = %q", body["response"])
	}
}

func TestChatEmptyMessage(t *testing.T) {
	ts := newTestServer(t, nil)
	rec := ts.do(t, http.MethodPost, "/api/chat", `{"message":"   "}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// errResolver always fails with the configured error.
type errResolver struct{ err error }

func (e errResolver) Resolve(context.Context, string, []chat.Message) (string, error) {
	return "", e.err
}

func TestChatErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{chat.ErrTimeout, http.StatusGatewayTimeout},
		{chat.ErrUpstream, http.StatusBadGateway},
		{chat.ErrBusy, http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		ts := newTestServer(t, errResolver{err: tt.err})
		rec := ts.do(t, http.MethodPost, "/api/chat", `{"message":"help"}`, nil)
		if rec.Code != tt.want {
			t.Errorf("%v: status = %d, want %d", tt.err, rec.Code, tt.want)
		}
		var body map[string]string
		decodeBody(t, rec, &body)
		if body["error"] == "" {
			t.Errorf("%v: error body missing", tt.err)
		}
	}
}

// captureResolver records what the handler hands to resolution.
type captureResolver struct {
	message string
	history []chat.Message
}

func (c *captureResolver) Resolve(_ context.Context, message string, history []chat.Message) (string, error) {
	c.message = message
	c.history = history
	return "ok", nil
}

func TestChatHistoryRoleMapping(t *testing.T) {
	capture := &captureResolver{}
	ts := newTestServer(t, capture)

	body := `{"message":"and then?","conversationHistory":[
		{"role":"user","content":"what is a derivative?"},
		{"role":"assistant","content":"The derivative measures the rate of change."},
		{"content":"older client turn","isUser":true}
	]}`
	rec := ts.do(t, http.MethodPost, "/api/chat", body, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	want := []bool{true, false, true}
	if len(capture.history) != len(want) {
		t.Fatalf("resolver saw %d turns, want %d", len(capture.history), len(want))
	}
	for i, turn := range capture.history {
		if turn.FromUser != want[i] {
			t.Errorf("turn %d FromUser = %v, want %v (content %q)", i, turn.FromUser, want[i], turn.Content)
		}
	}
}

func TestRecordAssessment(t *testing.T) {
	ts := newTestServer(t, nil)

	payload := `{
		"topic": "algebra",
		"difficulty": 2,
		"questions": [
			{"question": "Solve: 2x+6=14", "correct_answer": "4", "explanation": "subtract then divide"},
			{"question": "Solve: x-1=1", "correct_answer": "2", "explanation": "add 1"},
			{"question": "Factor: x^2-9", "correct_answer": "(x-3)(x+3)", "explanation": "difference of squares"}
		],
		"answers": ["4", "X=2", "nope"],
		"duration_seconds": 90
	}`
	rec := ts.do(t, http.MethodPost, "/api/assessments", payload, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		SessionID string `json:"session_id"`
		Report    struct {
			Total      int `json:"total_questions"`
			Correct    int `json:"correct_answers"`
			Percentage int `json:"score_percentage"`
		} `json:"report"`
		Achievements []store.AchievementData `json:"achievements"`
	}
	decodeBody(t, rec, &body)

	if body.SessionID == "" {
		t.Error("session_id missing")
	}
	// "X=2" normalizes to "2"; grading happens server-side.
	if body.Report.Correct != 2 || body.Report.Percentage != 67 {
		t.Errorf("report = %+v, want 2 correct at 67%%", body.Report)
	}
	if len(body.Achievements) != 1 || body.Achievements[0].Type != progress.FirstAssessment {
		t.Errorf("achievements = %+v, want first_assessment", body.Achievements)
	}

	if len(ts.assessments.recs) != 1 {
		t.Fatalf("persisted %d records, want 1", len(ts.assessments.recs))
	}
	if ts.assessments.recs[0].UserID == "" {
		t.Error("record not keyed to a learner identity")
	}
}

func TestRecordAssessmentValidation(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"no questions", `{"topic":"algebra","questions":[],"answers":[]}`},
		{"no topic", `{"questions":[{"question":"q","correct_answer":"1"}],"answers":[]}`},
		{"more answers than questions", `{"topic":"algebra","questions":[{"question":"q","correct_answer":"1"}],"answers":["1","2"]}`},
		{"question without answer key", `{"topic":"algebra","questions":[{"question":"q"}],"answers":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/assessments", tt.body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestProgressFollowsCookieIdentity(t *testing.T) {
	ts := newTestServer(t, nil)

	payload := `{
		"topic": "algebra",
		"difficulty": 1,
		"questions": [{"question": "q", "correct_answer": "1", "explanation": ""}],
		"answers": ["1"]
	}`
	first := ts.do(t, http.MethodPost, "/api/assessments", payload, nil)
	if first.Code != http.StatusCreated {
		t.Fatalf("record status = %d", first.Code)
	}
	cookies := first.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no learner cookie issued")
	}

	// Same cookie sees the recorded session.
	rec := ts.do(t, http.MethodGet, "/api/progress", "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("progress status = %d", rec.Code)
	}
	var sum progress.Summary
	decodeBody(t, rec, &sum)
	if len(sum.Recent) != 1 || len(sum.Topics) != 1 {
		t.Errorf("summary = %+v, want the recorded session", sum)
	}

	// A fresh identity sees nothing.
	rec = ts.do(t, http.MethodGet, "/api/progress", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("progress status = %d", rec.Code)
	}
	decodeBody(t, rec, &sum)
	if len(sum.Recent) != 0 {
		t.Errorf("fresh identity sees %d sessions, want 0", len(sum.Recent))
	}
}

// recordLowScore posts an assessment that drags the topic's mastery
// below the weak threshold (1 of 5 correct) and returns the learner's
// cookie and session id.
func recordLowScore(t *testing.T, ts *testServer, topic string) ([]*http.Cookie, string) {
	t.Helper()
	payload := `{
		"topic": "` + topic + `",
		"difficulty": 1,
		"questions": [
			{"question": "q1", "correct_answer": "1"},
			{"question": "q2", "correct_answer": "2"},
			{"question": "q3", "correct_answer": "3"},
			{"question": "q4", "correct_answer": "4"},
			{"question": "q5", "correct_answer": "5"}
		],
		"answers": ["1", "9", "9", "9", "9"]
	}`
	rec := ts.do(t, http.MethodPost, "/api/assessments", payload, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("record status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		SessionID string `json:"session_id"`
	}
	decodeBody(t, rec, &body)
	return rec.Result().Cookies(), body.SessionID
}

func TestWeakTopics(t *testing.T) {
	ts := newTestServer(t, nil)
	cookies, _ := recordLowScore(t, ts, "algebra")

	rec := ts.do(t, http.MethodGet, "/api/weak-topics", "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		WeakTopics []string `json:"weak_topics"`
	}
	decodeBody(t, rec, &body)
	if len(body.WeakTopics) != 1 || body.WeakTopics[0] != "algebra" {
		t.Errorf("weak topics = %v, want [algebra]", body.WeakTopics)
	}

	// A fresh identity has no judged topics, and the list is a list,
	// not null.
	rec = ts.do(t, http.MethodGet, "/api/weak-topics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"weak_topics":[]`) {
		t.Errorf("fresh identity body = %s, want an empty list", rec.Body.String())
	}
}

func TestGenerateQuestionsWeakAreas(t *testing.T) {
	ts := newTestServer(t, nil)
	cookies, _ := recordLowScore(t, ts, "algebra")

	rec := ts.do(t, http.MethodPost, "/api/generate-questions",
		`{"topic":"weak_areas","count":2}`, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		SessionID  string               `json:"session_id"`
		WeakTopics []string             `json:"weak_topics"`
		Questions  []questions.Question `json:"questions"`
	}
	decodeBody(t, rec, &body)
	if body.SessionID == "" {
		t.Error("session_id missing")
	}
	if len(body.WeakTopics) != 1 || body.WeakTopics[0] != "algebra" {
		t.Errorf("weak topics = %v, want [algebra]", body.WeakTopics)
	}
	if len(body.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(body.Questions))
	}
	for _, q := range body.Questions {
		if q.Topic != "algebra" {
			t.Errorf("question outside weak topics: %+v", q)
		}
	}

	// Without any weak topics the mode falls back to a random mix.
	rec = ts.do(t, http.MethodPost, "/api/generate-questions",
		`{"topic":"weak_areas","count":2}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("fallback status = %d, body %s", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &body)
	if len(body.WeakTopics) != 0 {
		t.Errorf("fresh identity weak topics = %v, want none", body.WeakTopics)
	}
	if len(body.Questions) != 2 {
		t.Errorf("fallback returned %d questions, want 2", len(body.Questions))
	}
}

func TestAssessmentDetail(t *testing.T) {
	ts := newTestServer(t, nil)
	cookies, sessionID := recordLowScore(t, ts, "algebra")

	rec := ts.do(t, http.MethodGet, "/api/assessments/"+sessionID, "", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		SessionID string                 `json:"session_id"`
		Responses []store.ResponseRecord `json:"responses"`
	}
	decodeBody(t, rec, &body)
	if body.SessionID != sessionID {
		t.Errorf("session_id = %q, want %q", body.SessionID, sessionID)
	}
	if len(body.Responses) != 5 {
		t.Fatalf("got %d responses, want 5", len(body.Responses))
	}
	if !body.Responses[0].IsCorrect || body.Responses[1].IsCorrect {
		t.Errorf("responses graded wrong: %+v", body.Responses[:2])
	}

	// A different identity must not see the session.
	rec = ts.do(t, http.MethodGet, "/api/assessments/"+sessionID, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("foreign identity status = %d, want 404", rec.Code)
	}

	rec = ts.do(t, http.MethodGet, "/api/assessments/no-such-session", "", cookies)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", rec.Code)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/api/settings", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	cookies := rec.Result().Cookies()

	var body struct {
		PreferredDifficulty int `json:"preferred_difficulty"`
		DailyGoal           int `json:"daily_goal"`
	}
	decodeBody(t, rec, &body)
	if body.PreferredDifficulty != store.DefaultPreferredDifficulty || body.DailyGoal != store.DefaultDailyGoal {
		t.Errorf("defaults = %+v", body)
	}

	rec = ts.do(t, http.MethodPut, "/api/settings",
		`{"preferred_difficulty":3,"daily_goal":25}`, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = ts.do(t, http.MethodGet, "/api/settings", "", cookies)
	decodeBody(t, rec, &body)
	if body.PreferredDifficulty != 3 || body.DailyGoal != 25 {
		t.Errorf("after put = %+v, want 3 and 25", body)
	}

	// Another identity keeps the defaults.
	rec = ts.do(t, http.MethodGet, "/api/settings", "", nil)
	decodeBody(t, rec, &body)
	if body.PreferredDifficulty != store.DefaultPreferredDifficulty {
		t.Errorf("fresh identity difficulty = %d, want default", body.PreferredDifficulty)
	}
}

func TestSettingsValidation(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"difficulty too low", `{"preferred_difficulty":0,"daily_goal":10}`},
		{"difficulty too high", `{"preferred_difficulty":4,"daily_goal":10}`},
		{"zero goal", `{"preferred_difficulty":2,"daily_goal":0}`},
		{"malformed body", `{"preferred_difficulty":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPut, "/api/settings", tt.body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}
