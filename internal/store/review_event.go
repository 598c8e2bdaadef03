package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetFactID(data.FactID).
		SetRating(data.Rating).
		SetStability(data.Stability).
		SetDifficulty(data.Difficulty).
		SetRetrievability(data.Retrievability).
		SetIntervalDays(data.IntervalDays).
		SetDue(data.Due).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}
