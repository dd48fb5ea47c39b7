package chat

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mathmentor/mathmentor/internal/llm"
)

func TestRemoteResolver_ReturnsProviderText(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`To solve this, factor the left side first.`)},
	)
	r := NewRemoteResolver(mock, time.Second)

	got, err := r.Resolve(context.Background(), "how do I solve x^2-1=0?", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "To solve this, factor the left side first." {
		t.Errorf("got %q", got)
	}
}

func TestRemoteResolver_SendsBoundedHistoryWindow(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`ok`)},
	)
	r := NewRemoteResolver(mock, time.Second)

	var history []Message
	for range 9 {
		history = append(history, NewMessage("older turn", true))
	}

	if _, err := r.Resolve(context.Background(), "newest", history); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	// Last 5 history turns plus the new message.
	if len(req.Messages) != HistoryWindow+1 {
		t.Fatalf("sent %d messages, want %d", len(req.Messages), HistoryWindow+1)
	}
	if req.Messages[len(req.Messages)-1].Content != "newest" {
		t.Errorf("last message = %q, want the new message", req.Messages[len(req.Messages)-1].Content)
	}
	if req.System == "" {
		t.Error("system prompt missing")
	}
}

func TestRemoteResolver_UpstreamFailureIsReportedError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	r := NewRemoteResolver(mock, time.Second)

	got, err := r.Resolve(context.Background(), "help", nil)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("got %v, want ErrUpstream", err)
	}
	if got != "" {
		t.Errorf("failed resolution returned text %q", got)
	}
}

func TestRemoteResolver_MissingCompletionIsError(t *testing.T) {
	// Upstream payload with no completion text must be an error, not an
	// empty successful response.
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("missing choices[0].message.content")}},
	)
	r := NewRemoteResolver(mock, time.Second)

	if _, err := r.Resolve(context.Background(), "help", nil); !errors.Is(err, ErrUpstream) {
		t.Fatalf("got %v, want ErrUpstream", err)
	}

	// Same for a present-but-empty completion.
	mock2 := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(``)},
	)
	r2 := NewRemoteResolver(mock2, time.Second)
	if _, err := r2.Resolve(context.Background(), "help", nil); !errors.Is(err, ErrUpstream) {
		t.Fatalf("empty completion: got %v, want ErrUpstream", err)
	}
}

func TestRemoteResolver_TimeoutIsDistinct(t *testing.T) {
	slow := &slowProvider{delay: 50 * time.Millisecond}
	r := NewRemoteResolver(slow, 5*time.Millisecond)

	_, err := r.Resolve(context.Background(), "help", nil)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("got %v, want ErrTimeout", err)
	}
}

func TestRemoteResolver_SingleFlight(t *testing.T) {
	slow := &slowProvider{delay: 100 * time.Millisecond, text: "done"}
	r := NewRemoteResolver(slow, time.Second)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = r.Resolve(context.Background(), "help", nil)
		}()
		// Stagger so the first call is in flight when the second lands.
		time.Sleep(20 * time.Millisecond)
	}
	wg.Wait()

	var busy, ok int
	for _, err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrBusy):
			busy++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || busy != 1 {
		t.Errorf("got %d successes and %d busy, want 1 and 1", ok, busy)
	}

	// After completion the resolver accepts requests again.
	if _, err := r.Resolve(context.Background(), "help again", nil); err != nil {
		t.Errorf("resolver still busy after completion: %v", err)
	}
}

func TestRemoteResolver_SingleFlightIsPerConversation(t *testing.T) {
	slow := &slowProvider{delay: 100 * time.Millisecond, text: "done"}
	r := NewRemoteResolver(slow, time.Second)

	// An in-flight request for one conversation must not block another
	// conversation's only request.
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, id := range []string{"learner-a", "learner-b"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := WithConversation(context.Background(), id)
			_, results[i] = r.Resolve(ctx, "help", nil)
		}()
		// Stagger so the first call is in flight when the second lands.
		time.Sleep(20 * time.Millisecond)
	}
	wg.Wait()

	for i, err := range results {
		if err != nil {
			t.Errorf("conversation %d: %v, want success", i, err)
		}
	}

	// Within one conversation the guard still applies.
	done := make(chan struct{})
	go func() {
		defer close(done)
		ctx := WithConversation(context.Background(), "learner-a")
		r.Resolve(ctx, "help", nil)
	}()
	time.Sleep(20 * time.Millisecond)
	ctx := WithConversation(context.Background(), "learner-a")
	if _, err := r.Resolve(ctx, "again", nil); !errors.Is(err, ErrBusy) {
		t.Errorf("got %v, want ErrBusy for the same conversation", err)
	}
	<-done
}

func TestRemoteResolver_EmptyMessage(t *testing.T) {
	r := NewRemoteResolver(llm.NewMockProvider(), time.Second)
	if _, err := r.Resolve(context.Background(), "  ", nil); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("got %v, want ErrEmptyMessage", err)
	}
}

// slowProvider delays before answering, honoring context cancellation.
type slowProvider struct {
	delay time.Duration
	text  string
}

func (s *slowProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.delay):
		return &llm.Response{Content: json.RawMessage(s.text), StopReason: "end"}, nil
	}
}

func (s *slowProvider) ModelID() string { return "slow" }
