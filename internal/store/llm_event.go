package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mathmentor/mathmentor/ent"
	"github.com/mathmentor/mathmentor/ent/llmrequestevent"
	"github.com/mathmentor/mathmentor/internal/llm"
)

// RequestEventLog persists model-call events. It satisfies
// llm.RequestLog so the provider middleware can write through it.
type RequestEventLog struct {
	client *ent.Client
}

var _ llm.RequestLog = (*RequestEventLog)(nil)

// RequestEvent is one recorded model call.
type RequestEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// PurposeUsage aggregates token spend per purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

func (l *RequestEventLog) RecordModelRequest(ctx context.Context, entry llm.RequestEntry) error {
	_, err := l.client.LLMRequestEvent.Create().
		SetProvider(entry.Provider).
		SetModel(entry.Model).
		SetPurpose(entry.Purpose).
		SetInputTokens(entry.InputTokens).
		SetOutputTokens(entry.OutputTokens).
		SetLatencyMs(entry.LatencyMs).
		SetSuccess(entry.Success).
		SetErrorMessage(entry.ErrorMessage).
		SetTimestamp(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save model request event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (l *RequestEventLog) Recent(ctx context.Context, limit int) ([]RequestEvent, error) {
	q := l.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query model request events: %w", err)
	}

	out := make([]RequestEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, RequestEvent{
			ID:           row.ID,
			Timestamp:    row.Timestamp,
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
		})
	}
	return out, nil
}

// UsageByPurpose aggregates calls and tokens per purpose label. Event
// volume here is per-deployment small, so aggregation happens in Go.
func (l *RequestEventLog) UsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := l.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query model request events: %w", err)
	}

	byPurpose := map[string]*PurposeUsage{}
	totalLatency := map[string]int64{}
	var order []string
	for _, row := range rows {
		u, ok := byPurpose[row.Purpose]
		if !ok {
			u = &PurposeUsage{Purpose: row.Purpose}
			byPurpose[row.Purpose] = u
			order = append(order, row.Purpose)
		}
		u.Calls++
		u.InputTokens += row.InputTokens
		u.OutputTokens += row.OutputTokens
		totalLatency[row.Purpose] += row.LatencyMs
	}

	out := make([]PurposeUsage, 0, len(order))
	for _, purpose := range order {
		u := byPurpose[purpose]
		if u.Calls > 0 {
			u.AvgLatencyMs = totalLatency[purpose] / int64(u.Calls)
		}
		out = append(out, *u)
	}
	return out, nil
}
