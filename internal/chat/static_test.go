package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestStaticResolver_KeywordMatch(t *testing.T) {
	r := NewStaticResolver()

	got, err := r.Resolve(context.Background(), "solve x^2+5x+6=0", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Quadratic Formula") {
		t.Errorf("expected the quadratic response, got %q", truncate(got))
	}
}

func TestStaticResolver_CaseInsensitive(t *testing.T) {
	r := NewStaticResolver()

	got, err := r.Resolve(context.Background(), "explain the PYTHAGOREAN theorem", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "a² + b² = c²") {
		t.Errorf("expected the Pythagorean response, got %q", truncate(got))
	}
}

func TestStaticResolver_FallbackListsTopics(t *testing.T) {
	r := NewStaticResolver()

	got, err := r.Resolve(context.Background(), "what's the weather", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, topic := range []string{"Geometry", "Algebra", "Calculus", "Arithmetic", "Trigonometry"} {
		if !strings.Contains(got, topic) {
			t.Errorf("fallback is missing topic %q", topic)
		}
	}
}

func TestStaticResolver_FirstMatchWins(t *testing.T) {
	rules := []Rule{
		{Keywords: []string{"triangle"}, Response: "first"},
		{Keywords: []string{"triangle", "area"}, Response: "second"},
	}
	r := NewStaticResolverWithRules(rules, "fallback")

	// "area of a triangle" matches both rules; order decides.
	got, err := r.Resolve(context.Background(), "area of a triangle", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "first" {
		t.Errorf("got %q, want %q (rule order is part of the contract)", got, "first")
	}
}

func TestStaticResolver_EmptyMessage(t *testing.T) {
	r := NewStaticResolver()

	for _, in := range []string{"", "   "} {
		if _, err := r.Resolve(context.Background(), in, nil); !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("Resolve(%q) = %v, want ErrEmptyMessage", in, err)
		}
	}
}

func TestConversation_Window(t *testing.T) {
	var c Conversation
	for _, text := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		c.Append(NewMessage(text, true))
	}

	w := c.Window(5)
	if len(w) != 5 {
		t.Fatalf("window = %d messages, want 5", len(w))
	}
	if w[0].Content != "c" || w[4].Content != "g" {
		t.Errorf("window = %q..%q, want c..g", w[0].Content, w[4].Content)
	}

	if got := c.Window(100); len(got) != 7 {
		t.Errorf("oversized window = %d messages, want all 7", len(got))
	}
	if got := c.Window(0); got != nil {
		t.Errorf("zero window should be nil, got %d messages", len(got))
	}
}

func truncate(s string) string {
	if len(s) > 60 {
		return s[:60] + "..."
	}
	return s
}
