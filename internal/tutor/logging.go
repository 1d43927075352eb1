package tutor

import (
	"context"
	"log/slog"
	"time"

	"anglolingua/internal/store"
)

// LoggingProvider is a decorator that records every tutor request as a
// store event.
type LoggingProvider struct {
	inner  Provider
	events store.TutorEventRepo
	logger *slog.Logger
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, events store.TutorEventRepo, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LoggingProvider{inner: p, events: events, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.TutorEventData{
		Provider:   l.inner.ModelID(),
		Model:      l.inner.ModelID(),
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
		InputChars: requestChars(req),
	}
	if resp != nil {
		data.Model = resp.Model
		data.ReplyChars = len(resp.Text)
	}
	if err != nil {
		data.Error = err.Error()
	}

	// A failed event write must not fail the request.
	if l.events != nil {
		if logErr := l.events.AppendTutorRequest(ctx, data); logErr != nil {
			l.logger.Warn("failed to record tutor request event", "err", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func requestChars(req Request) int {
	n := len(req.System)
	for _, m := range req.Messages {
		n += len(m.Content)
	}
	return n
}
