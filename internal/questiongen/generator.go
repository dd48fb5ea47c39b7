// Package questiongen produces assessment question sets, either from a
// language model or from the static catalog.
package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mathmentor/mathmentor/internal/llm"
	"github.com/mathmentor/mathmentor/internal/questions"
)

// GenerateInput scopes one generation request.
type GenerateInput struct {
	Topic      string
	Difficulty int // 1-3
	Count      int
}

// Generator produces a question set for an assessment.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) ([]questions.Question, error)
}

const (
	maxTokens   = 2000
	temperature = 0.7
)

// LLMGenerator generates fresh questions through a model provider using
// structured output.
type LLMGenerator struct {
	provider llm.Provider
}

// NewLLMGenerator creates a model-backed generator.
func NewLLMGenerator(provider llm.Provider) *LLMGenerator {
	return &LLMGenerator{provider: provider}
}

// questionOutput is the raw model output before conversion.
type questionOutput struct {
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Hints         []string `json:"hints"`
}

// Generate asks the provider for input.Count questions. A response that
// fails to parse or validate degrades to a single placeholder question
// instead of failing the whole request, keeping the assessment flow
// moving at reduced fidelity. Provider unavailability is still an
// error; there is nothing to degrade to.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]questions.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: buildSystemPrompt(input),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      questionSetSchema,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		var invResp *llm.ErrInvalidResponse
		if errors.As(err, &invResp) {
			slog.Warn("generated questions failed validation, degrading to placeholder",
				"topic", input.Topic, "error", err)
			return placeholderSet(input), nil
		}
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	var payload struct {
		Questions []questionOutput `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &payload); err != nil || len(payload.Questions) == 0 {
		slog.Warn("generated questions failed to parse, degrading to placeholder",
			"topic", input.Topic, "error", err)
		return placeholderSet(input), nil
	}

	out := make([]questions.Question, 0, len(payload.Questions))
	for i, q := range payload.Questions {
		out = append(out, questions.Question{
			ID:            fmt.Sprintf("gen_%s_%d_%d", input.Topic, input.Difficulty, i+1),
			Prompt:        q.Question,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Hints:         q.Hints,
			Difficulty:    input.Difficulty,
			Topic:         input.Topic,
			Subtopic:      "generated",
		})
	}
	return out, nil
}

// placeholderSet is the degraded result for unparseable model output.
func placeholderSet(input GenerateInput) []questions.Question {
	return []questions.Question{{
		ID:            "gen_fallback_" + uuid.New().String(),
		Prompt:        "Sample question parsing failed",
		CorrectAnswer: "N/A",
		Explanation:   "error generating questions",
		Hints:         []string{"Please try again"},
		Difficulty:    input.Difficulty,
		Topic:         input.Topic,
		Subtopic:      "generated",
	}}
}

// CatalogGenerator serves generation requests from the static catalog.
// Used when no model provider is configured.
type CatalogGenerator struct {
	store *questions.Store
}

// NewCatalogGenerator creates a catalog-backed generator.
func NewCatalogGenerator(store *questions.Store) *CatalogGenerator {
	return &CatalogGenerator{store: store}
}

// Generate samples matching catalog questions. An empty result is
// returned as-is; the caller reports "no questions available".
func (g *CatalogGenerator) Generate(_ context.Context, input GenerateInput) ([]questions.Question, error) {
	return g.store.ByTopicAndDifficulty(input.Topic, input.Difficulty, input.Count), nil
}
