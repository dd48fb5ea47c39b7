package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mathmentor/mathmentor/internal/llm"
)

// systemPrompt is the fixed tutoring instruction sent with every
// remote resolution.
const systemPrompt = `You are an expert math tutor AI assistant. Help students with:
- Solving math problems step-by-step
- Explaining mathematical concepts clearly
- Providing helpful hints and guidance
- Checking their work and providing feedback

Always:
- Show step-by-step solutions
- Explain the reasoning behind each step
- Use clear mathematical notation
- Be encouraging and educational
- Ask follow-up questions to check understanding

Format mathematical expressions clearly and provide detailed explanations.`

// HistoryWindow is how many trailing conversation turns accompany the
// message upstream.
const HistoryWindow = 5

// DefaultTimeout bounds one remote resolution.
const DefaultTimeout = 30 * time.Second

const maxResponseTokens = 1000

// RemoteResolver forwards messages to a model provider. At most one
// resolution per conversation (see WithConversation) may be in flight
// at a time; a concurrent call for the same conversation gets ErrBusy
// so a double-submitted send cannot fan out into parallel upstream
// requests. Distinct conversations resolve independently.
type RemoteResolver struct {
	provider llm.Provider
	timeout  time.Duration

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewRemoteResolver creates a resolver over the given provider. A
// non-positive timeout falls back to DefaultTimeout.
func NewRemoteResolver(provider llm.Provider, timeout time.Duration) *RemoteResolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RemoteResolver{
		provider: provider,
		timeout:  timeout,
		inFlight: make(map[string]struct{}),
	}
}

// Resolve sends the message plus the last HistoryWindow turns to the
// provider and returns its text verbatim. Failures are always reported
// errors, never empty successes: ErrTimeout for deadline overruns,
// ErrUpstream for everything else.
func (r *RemoteResolver) Resolve(ctx context.Context, message string, history []Message) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	conv := conversationFrom(ctx)
	r.mu.Lock()
	if _, busy := r.inFlight[conv]; busy {
		r.mu.Unlock()
		return "", ErrBusy
	}
	r.inFlight[conv] = struct{}{}
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		delete(r.inFlight, conv)
		r.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(llm.WithPurpose(ctx, "chat-tutor"), r.timeout)
	defer cancel()

	req := llm.Request{
		System:      systemPrompt,
		Messages:    buildMessages(message, history),
		MaxTokens:   maxResponseTokens,
		Temperature: 0.7,
	}

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		// An empty completion is an upstream defect, not an answer.
		return "", fmt.Errorf("%w: empty completion", ErrUpstream)
	}
	return text, nil
}

// buildMessages assembles the bounded history window plus the new
// message, oldest first.
func buildMessages(message string, history []Message) []llm.Message {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	out := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		role := llm.RoleAssistant
		if m.FromUser {
			role = llm.RoleUser
		}
		out = append(out, llm.Message{Role: role, Content: m.Content})
	}
	return append(out, llm.Message{Role: llm.RoleUser, Content: message})
}

// NewResolver selects the resolver implementation: remote when a
// provider is supplied, otherwise the static rule table.
func NewResolver(provider llm.Provider, timeout time.Duration) Resolver {
	if provider == nil {
		return NewStaticResolver()
	}
	return NewRemoteResolver(provider, timeout)
}
