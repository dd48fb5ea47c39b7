package quiz

import (
	"math"

	"github.com/mathmentor/mathmentor/internal/answer"
	"github.com/mathmentor/mathmentor/internal/questions"
)

// QuestionResult is the graded outcome for one question.
type QuestionResult struct {
	Index         int    `json:"index"`
	Prompt        string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
	UserAnswer    string `json:"user_answer"`
	Correct       bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
}

// Report is the aggregate score for a session.
type Report struct {
	Total       int              `json:"total_questions"`
	Correct     int              `json:"correct_answers"`
	Percentage  int              `json:"score_percentage"`
	PerQuestion []QuestionResult `json:"responses"`
}

// Score grades the currently recorded answers. Correctness is always
// recomputed from the raw answers through the answer package, never
// cached, so a change to the normalization rules can never drift from
// stored state. Unanswered indices grade as incorrect.
//
// Score is meaningful once the session is Complete but is computable
// speculatively in any state.
func (s *Session) Score() Report {
	return Grade(s.questions, s.answers)
}

// Grade scores raw answers against a question set without a live
// session. Missing trailing answers grade as incorrect, so a sparse
// client-submitted answer list never panics.
func Grade(qs []questions.Question, answers []string) Report {
	r := Report{
		Total:       len(qs),
		PerQuestion: make([]QuestionResult, len(qs)),
	}

	for i, q := range qs {
		var raw string
		if i < len(answers) {
			raw = answers[i]
		}
		correct := raw != "" && answer.Matches(raw, q.CorrectAnswer)
		if correct {
			r.Correct++
		}
		r.PerQuestion[i] = QuestionResult{
			Index:         i,
			Prompt:        q.Prompt,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    raw,
			Correct:       correct,
			Explanation:   q.Explanation,
		}
	}

	r.Percentage = Percentage(r.Correct, r.Total)
	return r
}

// Percentage computes correct/total as a whole percentage, rounding
// half up: 4/5 -> 80, 1/3 -> 33, 1/8 -> 13.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
