package tutor

import (
	"context"
	"errors"
	"testing"
)

func TestConversation_GreetingSeed(t *testing.T) {
	c := NewConversation(NewMockProvider(), 0)
	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if msgs[0].Role != RoleAssistant || msgs[0].Content != Greeting {
		t.Errorf("greeting = %+v", msgs[0])
	}
	if c.Waiting() {
		t.Error("fresh conversation is waiting")
	}
}

func TestConversation_SendAndApply(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "Great question! \"Hello\" is a greeting."})
	c := NewConversation(mock, 0)

	pending, err := c.Send("  What does hello mean?  ")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !c.Waiting() {
		t.Fatal("not waiting after Send")
	}

	msgs := c.Messages()
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want greeting + user + placeholder", len(msgs))
	}
	if msgs[1].Role != RoleUser || msgs[1].Content != "What does hello mean?" {
		t.Errorf("user message = %+v", msgs[1])
	}
	if !msgs[2].Pending || msgs[2].Content != "..." {
		t.Errorf("placeholder = %+v", msgs[2])
	}

	reply := pending.Await(context.Background())
	if reply.Err != nil {
		t.Fatalf("Await: %v", reply.Err)
	}
	if !c.Apply(reply) {
		t.Fatal("Apply dropped a live reply")
	}

	msgs = c.Messages()
	if msgs[2].Pending {
		t.Error("placeholder still pending after Apply")
	}
	if msgs[2].Content != "Great question! \"Hello\" is a greeting." {
		t.Errorf("resolved content = %q", msgs[2].Content)
	}
	if c.Waiting() {
		t.Error("still waiting after Apply")
	}
}

func TestConversation_PromptExcludesPlaceholder(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "Sure!"})
	c := NewConversation(mock, 0)

	pending, err := c.Send("Let's practice")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	pending.Await(context.Background())

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System != SystemPrompt {
		t.Error("system prompt not sent")
	}
	if len(req.Messages) != 2 {
		t.Fatalf("prompt has %d messages, want greeting + user", len(req.Messages))
	}
	if req.Messages[len(req.Messages)-1].Content != "Let's practice" {
		t.Errorf("last prompt message = %+v", req.Messages[len(req.Messages)-1])
	}
}

func TestConversation_SendValidation(t *testing.T) {
	c := NewConversation(NewMockProvider(MockResponse{Text: "hi"}), 0)

	if _, err := c.Send("   "); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("blank Send err = %v", err)
	}
	if _, err := c.Send("first"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if _, err := c.Send("second"); !errors.Is(err, ErrBusy) {
		t.Errorf("Send while pending err = %v", err)
	}
}

func TestConversation_ProviderErrorBecomesBilingualReply(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("boom")}})
	c := NewConversation(mock, 0)

	pending, _ := c.Send("hello")
	reply := pending.Await(context.Background())
	if reply.Err == nil {
		t.Fatal("expected error reply")
	}
	if !c.Apply(reply) {
		t.Fatal("Apply dropped the error reply")
	}

	msgs := c.Messages()
	last := msgs[len(msgs)-1]
	if last.Content != ErrorReply {
		t.Errorf("error content = %q", last.Content)
	}
	if last.Pending {
		t.Error("placeholder still pending")
	}
	if c.Waiting() {
		t.Error("conversation stuck waiting after error")
	}
}

func TestConversation_MissingKeyShowsUnavailableNotice(t *testing.T) {
	c := NewConversation(NewUnavailableProvider(), 0)

	pending, _ := c.Send("hello")
	c.Apply(pending.Await(context.Background()))

	msgs := c.Messages()
	if got := msgs[len(msgs)-1].Content; got != UnavailableReply {
		t.Errorf("content = %q, want unavailable notice", got)
	}
}

func TestConversation_ResetDropsInFlightReply(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "late reply"})
	c := NewConversation(mock, 0)

	pending, _ := c.Send("hello")
	c.Reset()

	msgs := c.Messages()
	if len(msgs) != 1 || msgs[0].Content != ResetGreeting {
		t.Fatalf("after reset messages = %+v", msgs)
	}

	reply := pending.Await(context.Background())
	if c.Apply(reply) {
		t.Error("stale reply applied after reset")
	}
	if len(c.Messages()) != 1 {
		t.Error("stale reply changed the transcript")
	}
	if c.Waiting() {
		t.Error("waiting after reset")
	}
}

func TestConversation_MultiTurnHistory(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first reply"},
		MockResponse{Text: "second reply"},
	)
	c := NewConversation(mock, 0)

	p1, _ := c.Send("turn one")
	c.Apply(p1.Await(context.Background()))
	p2, _ := c.Send("turn two")
	c.Apply(p2.Await(context.Background()))

	// Second request carries the full resolved history.
	req := mock.Calls[1]
	want := []string{Greeting, "turn one", "first reply", "turn two"}
	if len(req.Messages) != len(want) {
		t.Fatalf("second prompt has %d messages, want %d", len(req.Messages), len(want))
	}
	for i, w := range want {
		if req.Messages[i].Content != w {
			t.Errorf("prompt[%d] = %q, want %q", i, req.Messages[i].Content, w)
		}
	}
}
