package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendReading(ctx context.Context, data ReadingEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReadingEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetPageIndex(data.PageIndex).
		SetWordCount(data.WordCount).
		SetElapsedMs(data.ElapsedMs).
		SetWpm(data.WPM).
		SetFlag(data.Flag).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save reading event: %w", err)
	}
	return nil
}
