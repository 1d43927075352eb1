package tutor

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SystemPrompt sets the tutor's role and constraints for every
// conversation.
const SystemPrompt = "You are a friendly and patient English tutor for Polish speakers. " +
	"Help them practice English conversation. Keep your responses concise and encouraging. " +
	"You can gently correct their mistakes. If the user asks for something unrelated to " +
	"language learning, politely steer them back to practicing English. Respond in English " +
	"unless specifically asked for a Polish translation of a word or short phrase."

// Canned assistant messages shown without calling the provider.
const (
	Greeting = "Hello! I'm your AI English tutor. How can I help you practice today? " +
		"(Witaj! Jestem Twoim korepetytorem AI. Jak mogę Ci dzisiaj pomóc w ćwiczeniach?)"

	ResetGreeting = "Okay, let's start over! How can I help you practice English? " +
		"(OK, zacznijmy od nowa! Jak mogę pomóc Ci ćwiczyć angielski?)"

	ErrorReply = "Sorry, I encountered an error. Please try again. " +
		"(Przepraszam, wystąpił błąd. Spróbuj ponownie.)"

	UnavailableReply = "AI service is unavailable. API key might be missing."
)

// defaultMaxTokens bounds a single tutor reply.
const defaultMaxTokens = 1024

// ChatMessage is one entry in the conversation transcript.
type ChatMessage struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
	// Pending marks the assistant placeholder shown while a reply is
	// generated.
	Pending bool
}

// ErrBusy is returned by Send while a reply is already pending.
var ErrBusy = errors.New("tutor: a reply is already pending")

// ErrEmptyInput is returned by Send for blank input.
var ErrEmptyInput = errors.New("tutor: empty message")

// Conversation is one chat session with the tutor. It owns the
// transcript and the session handle used to discard stale replies.
//
// Not safe for concurrent use; the UI event loop is the single caller.
// The blocking work happens in PendingReply.Await, which is safe to
// run on another goroutine.
type Conversation struct {
	provider Provider
	timeout  time.Duration
	handle   string
	messages []ChatMessage
	now      func() time.Time
}

// NewConversation starts a session seeded with the tutor's greeting.
func NewConversation(provider Provider, timeout time.Duration) *Conversation {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Conversation{
		provider: provider,
		timeout:  timeout,
		now:      time.Now,
	}
	c.start(Greeting)
	return c
}

func (c *Conversation) start(greeting string) {
	c.handle = uuid.NewString()
	c.messages = []ChatMessage{{
		ID:        "assistant-" + uuid.NewString(),
		Role:      RoleAssistant,
		Content:   greeting,
		Timestamp: c.now(),
	}}
}

// Messages returns a copy of the transcript, oldest first.
func (c *Conversation) Messages() []ChatMessage {
	return append([]ChatMessage(nil), c.messages...)
}

// Waiting reports whether an assistant reply is pending.
func (c *Conversation) Waiting() bool {
	for _, m := range c.messages {
		if m.Pending {
			return true
		}
	}
	return false
}

// Send appends the learner's message and a pending assistant
// placeholder, and returns the work to resolve it. Only one reply may
// be pending at a time.
func (c *Conversation) Send(text string) (PendingReply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return PendingReply{}, ErrEmptyInput
	}
	if c.Waiting() {
		return PendingReply{}, ErrBusy
	}

	now := c.now()
	c.messages = append(c.messages,
		ChatMessage{
			ID:        "user-" + uuid.NewString(),
			Role:      RoleUser,
			Content:   text,
			Timestamp: now,
		},
		ChatMessage{
			ID:        "assistant-" + uuid.NewString(),
			Role:      RoleAssistant,
			Content:   "...",
			Timestamp: now,
			Pending:   true,
		},
	)

	// Snapshot the history up to and including the new user message;
	// the placeholder is not part of the prompt.
	history := make([]Message, 0, len(c.messages)-1)
	for _, m := range c.messages[:len(c.messages)-1] {
		history = append(history, Message{Role: m.Role, Content: m.Content})
	}

	return PendingReply{
		Handle:    c.handle,
		MessageID: c.messages[len(c.messages)-1].ID,
		provider:  c.provider,
		timeout:   c.timeout,
		request: Request{
			System:    SystemPrompt,
			Messages:  history,
			MaxTokens: defaultMaxTokens,
		},
	}, nil
}

// PendingReply is the deferred work for one tutor reply. Await may run
// on another goroutine; the result is applied back with Apply.
type PendingReply struct {
	Handle    string
	MessageID string

	provider Provider
	timeout  time.Duration
	request  Request
}

// Reply is the outcome of a tutor request, tagged with the session
// handle it belongs to.
type Reply struct {
	Handle    string
	MessageID string
	Text      string
	Err       error
}

// Await performs the blocking provider call under the configured
// timeout. Errors are folded into the Reply so the caller always gets
// something to apply.
func (p PendingReply) Await(ctx context.Context) Reply {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.provider.Generate(ctx, p.request)
	r := Reply{Handle: p.Handle, MessageID: p.MessageID}
	if err != nil {
		r.Err = err
		return r
	}
	r.Text = resp.Text
	return r
}

// Apply resolves the pending placeholder with the reply, in place.
// Replies carrying a stale handle (the session was reset while the
// request was in flight) are dropped; Apply reports whether the
// transcript changed. Provider errors become the bilingual error
// message, a missing API key the unavailable notice.
func (c *Conversation) Apply(r Reply) bool {
	if r.Handle != c.handle {
		return false
	}
	for i := range c.messages {
		if c.messages[i].ID != r.MessageID {
			continue
		}
		if !c.messages[i].Pending {
			return false
		}
		c.messages[i].Pending = false
		c.messages[i].Timestamp = c.now()
		switch {
		case r.Err == nil:
			c.messages[i].Content = r.Text
		case isUnavailable(r.Err):
			c.messages[i].Content = UnavailableReply
		default:
			c.messages[i].Content = ErrorReply
		}
		return true
	}
	return false
}

// Reset discards the transcript and the session handle, so in-flight
// replies from the old session are ignored, and seeds the restart
// greeting.
func (c *Conversation) Reset() {
	c.start(ResetGreeting)
}

func isUnavailable(err error) bool {
	var unavailable *ErrProviderUnavailable
	return errors.As(err, &unavailable) && unavailable.Err == nil
}
