package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetAttempts(data.Attempts).
		SetCorrect(data.Correct).
		SetDurationSecs(data.DurationSecs).
		SetWpm(data.WPM).
		SetConfidence(data.Confidence).
		SetNivel(data.Nivel).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
