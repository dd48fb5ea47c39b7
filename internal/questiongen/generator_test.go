package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/mathmentor/mathmentor/internal/llm"
	"github.com/mathmentor/mathmentor/internal/questions"
)

func TestLLMGenerator_ConvertsModelOutput(t *testing.T) {
	payload := `{"questions":[
		{"question":"What is 7 x 8?","correct_answer":"56","explanation":"7 groups of 8 make 56.","hints":["Think of 7 x 4 first","Double 28"]},
		{"question":"What is 12 / 3?","correct_answer":"4","explanation":"12 split into 3 equal parts is 4.","hints":["Count up by 3s"]}
	]}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(payload)},
	)
	g := NewLLMGenerator(mock)

	got, err := g.Generate(context.Background(), GenerateInput{Topic: "arithmetic", Difficulty: 1, Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d questions, want 2", len(got))
	}
	q := got[0]
	if q.Prompt != "What is 7 x 8?" || q.CorrectAnswer != "56" {
		t.Errorf("first question = %+v", q)
	}
	if q.Topic != "arithmetic" || q.Difficulty != 1 {
		t.Errorf("topic/difficulty not stamped: %+v", q)
	}
	if len(q.Hints) != 2 {
		t.Errorf("hints = %v", q.Hints)
	}
	if got[0].ID == got[1].ID {
		t.Errorf("generated questions share ID %q", got[0].ID)
	}
}

func TestLLMGenerator_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"questions":[{"question":"q","correct_answer":"1","explanation":"e","hints":[]}]}`)},
	)
	g := NewLLMGenerator(mock)

	if _, err := g.Generate(context.Background(), GenerateInput{Topic: "algebra", Difficulty: 2, Count: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "math-questions" {
		t.Fatalf("request schema = %+v, want math-questions", req.Schema)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Errorf("messages = %+v, want single user turn", req.Messages)
	}
	if req.System == "" {
		t.Error("system prompt missing")
	}
}

func TestLLMGenerator_InvalidOutputDegradesToPlaceholder(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("schema validation failed")}},
	)
	g := NewLLMGenerator(mock)

	got, err := g.Generate(context.Background(), GenerateInput{Topic: "geometry", Difficulty: 2, Count: 5})
	if err != nil {
		t.Fatalf("degraded generation should not error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d questions, want the single placeholder", len(got))
	}
	if got[0].Explanation != "error generating questions" {
		t.Errorf("placeholder explanation = %q", got[0].Explanation)
	}
	if got[0].Topic != "geometry" || got[0].Difficulty != 2 {
		t.Errorf("placeholder not stamped with request scope: %+v", got[0])
	}
}

func TestLLMGenerator_EmptyQuestionListDegradesToPlaceholder(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)},
	)
	g := NewLLMGenerator(mock)

	got, err := g.Generate(context.Background(), GenerateInput{Topic: "calculus", Difficulty: 3, Count: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Explanation != "error generating questions" {
		t.Errorf("got %+v, want the single placeholder", got)
	}
}

func TestLLMGenerator_ProviderFailureIsAnError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	g := NewLLMGenerator(mock)

	if _, err := g.Generate(context.Background(), GenerateInput{Topic: "algebra", Difficulty: 1, Count: 5}); err == nil {
		t.Fatal("provider outage should surface as an error, not a placeholder")
	}
}

func TestCatalogGenerator_SamplesFromStore(t *testing.T) {
	store, err := questions.NewWithCatalog(questions.Catalog(), rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("catalog store: %v", err)
	}
	g := NewCatalogGenerator(store)

	got, err := g.Generate(context.Background(), GenerateInput{Topic: "arithmetic", Difficulty: 1, Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d questions, want 2", len(got))
	}
	for _, q := range got {
		if q.Topic != "arithmetic" || q.Difficulty != 1 {
			t.Errorf("question %s outside requested scope: %+v", q.ID, q)
		}
	}

	// Unknown topics come back empty rather than erroring.
	empty, err := g.Generate(context.Background(), GenerateInput{Topic: "statistics", Difficulty: 1, Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("got %d questions for unknown topic, want 0", len(empty))
	}
}
