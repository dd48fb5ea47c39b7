// Package chat resolves free-text tutoring messages, either from a
// static keyword-matched rule table or through a language model.
package chat

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Message is one turn in a tutoring conversation.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	FromUser  bool      `json:"from_user"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessage creates a message stamped with a fresh id and now.
func NewMessage(content string, fromUser bool) Message {
	return Message{
		ID:        uuid.New().String(),
		Content:   content,
		FromUser:  fromUser,
		CreatedAt: time.Now(),
	}
}

// Conversation is an append-only ordered message sequence owned by a
// single chat view.
type Conversation struct {
	messages []Message
}

// Append adds a message to the end of the conversation.
func (c *Conversation) Append(m Message) {
	c.messages = append(c.messages, m)
}

// Messages returns the full history, oldest first.
func (c *Conversation) Messages() []Message {
	return c.messages
}

// Window returns the trailing n messages, fewer if the conversation is
// shorter.
func (c *Conversation) Window(n int) []Message {
	if n <= 0 || len(c.messages) == 0 {
		return nil
	}
	if n >= len(c.messages) {
		return c.messages
	}
	return c.messages[len(c.messages)-n:]
}

// Resolver turns a learner message plus conversation history into
// tutoring text.
type Resolver interface {
	Resolve(ctx context.Context, message string, history []Message) (string, error)
}

type conversationKey struct{}

// WithConversation tags ctx with the id of the chat view making the
// request. Remote resolution is serialized per id; requests from
// untagged contexts share one slot.
func WithConversation(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, conversationKey{}, id)
}

func conversationFrom(ctx context.Context) string {
	id, _ := ctx.Value(conversationKey{}).(string)
	return id
}

var (
	// ErrEmptyMessage rejects blank input before any resolution work.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrBusy is returned while the same conversation's previous remote
	// resolution is still in flight.
	ErrBusy = errors.New("a request is already in progress")

	// ErrTimeout marks a remote resolution that exceeded its deadline,
	// distinct from other upstream failures.
	ErrTimeout = errors.New("tutor response timed out")

	// ErrUpstream marks a remote failure (unreachable provider,
	// malformed payload, upstream error field).
	ErrUpstream = errors.New("tutor is unavailable right now")
)
