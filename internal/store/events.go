package store

import (
	"context"
	"fmt"
	"time"
)

// TutorEventData captures one request to the AI tutor backend.
type TutorEventData struct {
	Provider   string
	Model      string
	LatencyMs  int64
	Success    bool
	Error      string
	InputChars int
	ReplyChars int
}

// TutorEvent is a stored tutor request event.
type TutorEvent struct {
	ID        int64
	Timestamp time.Time
	TutorEventData
}

// TutorEventRepo provides append and read access to the tutor request log.
type TutorEventRepo interface {
	AppendTutorRequest(ctx context.Context, data TutorEventData) error
	RecentTutorRequests(ctx context.Context, limit int) ([]TutorEvent, error)
}

// TutorEvents returns a TutorEventRepo backed by this store.
func (s *Store) TutorEvents() TutorEventRepo {
	return &tutorEventRepo{store: s}
}

type tutorEventRepo struct {
	store *Store
}

func (r *tutorEventRepo) AppendTutorRequest(ctx context.Context, data TutorEventData) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.store.db.ExecContext(ctx,
		`INSERT INTO tutor_events
			(timestamp, provider, model, latency_ms, success, error, input_chars, reply_chars)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		now, data.Provider, data.Model, data.LatencyMs,
		boolToInt(data.Success), data.Error, data.InputChars, data.ReplyChars,
	)
	if err != nil {
		return fmt.Errorf("append tutor event: %w", err)
	}
	return nil
}

func (r *tutorEventRepo) RecentTutorRequests(ctx context.Context, limit int) ([]TutorEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT id, timestamp, provider, model, latency_ms, success, error, input_chars, reply_chars
		 FROM tutor_events ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query tutor events: %w", err)
	}
	defer rows.Close()

	var events []TutorEvent
	for rows.Next() {
		var (
			ev      TutorEvent
			ts      string
			success int
		)
		if err := rows.Scan(&ev.ID, &ts, &ev.Provider, &ev.Model, &ev.LatencyMs,
			&success, &ev.Error, &ev.InputChars, &ev.ReplyChars); err != nil {
			return nil, fmt.Errorf("scan tutor event: %w", err)
		}
		ev.Success = success != 0
		if t, parseErr := time.Parse(time.RFC3339Nano, ts); parseErr == nil {
			ev.Timestamp = t
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
