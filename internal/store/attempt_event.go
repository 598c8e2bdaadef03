package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lectio/ent"
	"github.com/abhisek/lectio/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSkillID(data.SkillID).
		SetKind(data.Kind).
		SetCorrect(data.Correct).
		SetLatencyMs(data.LatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) SkillAccuracy(ctx context.Context, skillID string) (float64, int, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.SkillID(skillID)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query skill attempts: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), len(events), nil
}

func (r *eventRepo) RecentSkillIDs(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	// Over-fetch because the same skill repeats across attempts.
	events, err := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(limit * 10).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}

	seen := make(map[string]bool, limit)
	var ids []string
	for _, e := range events {
		if seen[e.SkillID] {
			continue
		}
		seen[e.SkillID] = true
		ids = append(ids, e.SkillID)
		if len(ids) == limit {
			break
		}
	}
	return ids, nil
}
