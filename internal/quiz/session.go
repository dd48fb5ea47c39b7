// Package quiz implements the assessment/practice session engine: a
// linear Setup -> InProgress -> Complete state machine over a fixed
// question set, with derived (never cached) correctness.
package quiz

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mathmentor/mathmentor/internal/questions"
)

// State is the session lifecycle state. Transitions are linear; the only
// way back from Complete is Reset, which produces a fresh session.
type State int

const (
	StateSetup State = iota
	StateInProgress
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateInProgress:
		return "in_progress"
	case StateComplete:
		return "complete"
	}
	return "unknown"
}

var (
	// ErrNoQuestions is returned by the Start variants when the source
	// has nothing matching; the session stays in Setup.
	ErrNoQuestions = errors.New("no questions available")

	// ErrEmptyAnswer rejects blank or whitespace-only submissions
	// without any state change.
	ErrEmptyAnswer = errors.New("answer is empty")

	// ErrNotInProgress is returned for operations that require an
	// active question.
	ErrNotInProgress = errors.New("session is not in progress")

	// ErrAlreadyStarted is returned when a Start variant is called on a
	// session that already left Setup.
	ErrAlreadyStarted = errors.New("session already started")
)

// Source supplies question sets for the three session flows. The static
// store satisfies it directly; generated-question flows adapt to it.
type Source interface {
	ByTopicAndDifficulty(topic string, difficulty, count int) []questions.Question
	Random(count int) []questions.Question
	WeakAreas(topics []string, count int) []questions.Question
}

// Session is one run of question-answer-score over a fixed question set.
// It is owned by a single flow and is not safe for concurrent use.
type Session struct {
	ID         string
	Topic      string
	Difficulty int

	state     State
	questions []questions.Question

	// position is the 0-based cursor. Invariant: 0 <= position <= len(questions).
	position int

	// answers holds the raw submitted text per index, "" until answered.
	// Invariant: len(answers) == len(questions) while in progress.
	answers []string

	// elapsed holds per-question answer time, stamped on submission.
	elapsed []time.Duration

	// hintsShown is the transient "show hints" flag for the current
	// question, cleared on every submission.
	hintsShown bool

	source Source
	clock  func() time.Time

	StartedAt         time.Time
	CompletedAt       time.Time
	questionStartedAt time.Time
}

// NewSession creates a session in Setup over the given source.
func NewSession(src Source) *Session {
	return &Session{
		ID:     uuid.New().String(),
		state:  StateSetup,
		source: src,
		clock:  time.Now,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Start requests count questions for topic+difficulty and enters
// InProgress at position 0. An empty result leaves the session in Setup
// and returns ErrNoQuestions.
func (s *Session) Start(topic string, difficulty, count int) error {
	s.Topic = topic
	s.Difficulty = difficulty
	return s.begin(s.source.ByTopicAndDifficulty(topic, difficulty, count))
}

// StartRandom starts a mixed-topic session.
func (s *Session) StartRandom(count int) error {
	s.Topic = "mixed"
	return s.begin(s.source.Random(count))
}

// StartWeakAreas starts a session restricted to the given topics.
func (s *Session) StartWeakAreas(topics []string, count int) error {
	s.Topic = "weak_areas"
	return s.begin(s.source.WeakAreas(topics, count))
}

// StartWith starts the session over an explicit question set, bypassing
// the source. Used when the client already holds generated questions.
func (s *Session) StartWith(qs []questions.Question) error {
	return s.begin(qs)
}

func (s *Session) begin(qs []questions.Question) error {
	if s.state != StateSetup {
		return ErrAlreadyStarted
	}
	// A zero-question session must never reach Complete; refuse to start.
	if len(qs) == 0 {
		return ErrNoQuestions
	}

	s.questions = qs
	s.answers = make([]string, len(qs))
	s.elapsed = make([]time.Duration, len(qs))
	s.position = 0
	s.hintsShown = false
	s.state = StateInProgress
	s.StartedAt = s.clock()
	s.questionStartedAt = s.StartedAt
	return nil
}

// Questions returns the session's question set.
func (s *Session) Questions() []questions.Question { return s.questions }

// Position returns the 0-based cursor.
func (s *Session) Position() int { return s.position }

// Current returns the active question, or false when the session is not
// in progress.
func (s *Session) Current() (questions.Question, bool) {
	if s.state != StateInProgress || s.position >= len(s.questions) {
		return questions.Question{}, false
	}
	return s.questions[s.position], true
}

// Answer returns the raw answer recorded at index, "" if unanswered.
func (s *Session) Answer(index int) string {
	if index < 0 || index >= len(s.answers) {
		return ""
	}
	return s.answers[index]
}

// SubmitAnswer records raw at the current position and advances. A
// blank submission is rejected with ErrEmptyAnswer and no state change.
// Submitting at the last index transitions the session to Complete.
func (s *Session) SubmitAnswer(raw string) error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyAnswer
	}

	now := s.clock()
	s.answers[s.position] = raw
	s.elapsed[s.position] = now.Sub(s.questionStartedAt)
	s.hintsShown = false

	if s.position == len(s.questions)-1 {
		s.position = len(s.questions)
		s.state = StateComplete
		s.CompletedAt = now
		return nil
	}

	s.position++
	s.questionStartedAt = now
	return nil
}

// Previous steps back one question and returns the previously submitted
// answer for re-editing. It never mutates the recorded answers. The
// return is ("", false) at position 0 or outside InProgress.
func (s *Session) Previous() (string, bool) {
	if s.state != StateInProgress || s.position == 0 {
		return "", false
	}
	s.position--
	s.questionStartedAt = s.clock()
	return s.answers[s.position], true
}

// ShowHints marks the hint panel visible for the current question.
func (s *Session) ShowHints() error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	s.hintsShown = true
	return nil
}

// HintsShown reports the transient hint flag.
func (s *Session) HintsShown() bool { return s.hintsShown }

// QuestionElapsed returns how long the learner spent on index, zero if
// the question was never submitted.
func (s *Session) QuestionElapsed(index int) time.Duration {
	if index < 0 || index >= len(s.elapsed) {
		return 0
	}
	return s.elapsed[index]
}

// Duration returns total session time, zero until Complete.
func (s *Session) Duration() time.Duration {
	if s.state != StateComplete {
		return 0
	}
	return s.CompletedAt.Sub(s.StartedAt)
}

// Reset discards questions, answers and position and returns the session
// to Setup with a fresh ID.
func (s *Session) Reset() {
	s.ID = uuid.New().String()
	s.state = StateSetup
	s.questions = nil
	s.answers = nil
	s.elapsed = nil
	s.position = 0
	s.hintsShown = false
	s.StartedAt = time.Time{}
	s.CompletedAt = time.Time{}
}
