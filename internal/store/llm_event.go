package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/lectio/ent"
	"github.com/abhisek/lectio/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMEvent, len(events))
	for i, e := range events {
		out[i] = LLMEvent{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		}
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}

	byPurpose := make(map[string]*LLMUsage)
	for _, e := range events {
		u, ok := byPurpose[e.Purpose]
		if !ok {
			u = &LLMUsage{Purpose: e.Purpose}
			byPurpose[e.Purpose] = u
		}
		u.Requests++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		if !e.Success {
			u.Failures++
		}
	}

	out := make([]LLMUsage, 0, len(byPurpose))
	for _, u := range byPurpose {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}
