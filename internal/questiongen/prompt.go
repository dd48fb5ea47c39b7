package questiongen

import (
	"fmt"

	"github.com/mathmentor/mathmentor/internal/llm"
)

// difficultyLabel maps the numeric level to the wording used in the
// generation prompt.
func difficultyLabel(d int) string {
	switch d {
	case 1:
		return "beginner"
	case 2:
		return "intermediate"
	default:
		return "advanced"
	}
}

// buildSystemPrompt sets the model's role for question generation.
func buildSystemPrompt(input GenerateInput) string {
	return fmt.Sprintf(`You are an expert math educator creating assessment questions.

Generate exactly %d math questions about %s at %s difficulty level.

Requirements:
- Each question must have a single unambiguous numeric or short symbolic answer
- Answers must be expressible as plain text (no LaTeX)
- Explanations must show the solution step by step
- Provide 2-3 hints per question, ordered from gentle nudge to near-solution
- Questions must be self-contained and solvable without a calculator`,
		input.Count, input.Topic, difficultyLabel(input.Difficulty))
}

// buildUserMessage is the single user turn of the generation request.
func buildUserMessage(input GenerateInput) string {
	return fmt.Sprintf("Generate %d %s questions about %s.",
		input.Count, difficultyLabel(input.Difficulty), input.Topic)
}

// questionSetSchema constrains the generation output to a question
// array the store can ingest directly.
var questionSetSchema = &llm.Schema{
	Name:        "math-questions",
	Description: "A set of generated math assessment questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":       map[string]any{"type": "string"},
						"correct_answer": map[string]any{"type": "string"},
						"explanation":    map[string]any{"type": "string"},
						"hints": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []string{"question", "correct_answer", "explanation", "hints"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"questions"},
		"additionalProperties": false,
	},
}
