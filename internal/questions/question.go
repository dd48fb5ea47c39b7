// Package questions provides the static question catalog and the
// sampling store used by assessments and practice sessions.
package questions

// Question is a single catalog entry. Entries are immutable once loaded.
type Question struct {
	// ID uniquely identifies the question within the catalog.
	ID string `json:"id"`

	// Prompt is the question text shown to the learner.
	Prompt string `json:"question"`

	// CorrectAnswer is the canonical correct answer as a string.
	// Grading compares against it through the answer package, so its
	// normalized form must be non-empty.
	CorrectAnswer string `json:"correct_answer"`

	// Explanation is the worked solution shown after answering.
	Explanation string `json:"explanation"`

	// Hints are revealed in order when the learner asks for help.
	Hints []string `json:"hints"`

	// Difficulty is 1 (beginner), 2 (intermediate) or 3 (advanced).
	Difficulty int `json:"difficulty"`

	// Topic is the subject category key, e.g. "algebra".
	Topic string `json:"topic"`

	// Subtopic refines the topic, e.g. "linear_equations".
	Subtopic string `json:"subtopic"`
}

// Topic describes a subject category for the topic selector.
type Topic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Topics lists the subject categories in display order.
func Topics() []Topic {
	return []Topic{
		{ID: "arithmetic", Name: "Arithmetic", Description: "Basic operations, fractions, decimals"},
		{ID: "algebra", Name: "Algebra", Description: "Variables, equations, polynomials"},
		{ID: "geometry", Name: "Geometry", Description: "Shapes, area, volume, angles"},
		{ID: "trigonometry", Name: "Trigonometry", Description: "Triangles, sin, cos, tan"},
		{ID: "calculus", Name: "Calculus", Description: "Derivatives, integrals, limits"},
	}
}

// KnownTopic reports whether id names one of the supported topics.
func KnownTopic(id string) bool {
	for _, t := range Topics() {
		if t.ID == id {
			return true
		}
	}
	return false
}
