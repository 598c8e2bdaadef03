package pace

import (
	"time"

	"github.com/abhisek/lectio/internal/curriculum"
	"github.com/abhisek/lectio/internal/store"
)

// HistoryFromSnapshot restores the session WPM history from persisted
// snapshot data. Entries with unparseable timestamps are skipped rather
// than failing the whole restore.
func HistoryFromSnapshot(data *store.PaceSnapshotData) []SessionSnapshot {
	if data == nil {
		return nil
	}
	history := make([]SessionSnapshot, 0, len(data.Sessions))
	for _, sd := range data.Sessions {
		at, err := time.Parse(time.RFC3339, sd.At)
		if err != nil {
			continue
		}
		history = append(history, SessionSnapshot{
			At:         at,
			WPM:        sd.WPM,
			Confidence: Confidence(sd.Confidence),
			Nivel:      curriculum.Nivel(sd.Nivel),
		})
	}
	return history
}

// HistoryToSnapshot exports the session WPM history for persistence.
func HistoryToSnapshot(history []SessionSnapshot) *store.PaceSnapshotData {
	data := &store.PaceSnapshotData{
		Sessions: make([]store.PaceSessionData, len(history)),
	}
	for i, s := range history {
		data.Sessions[i] = store.PaceSessionData{
			At:         s.At.Format(time.RFC3339),
			WPM:        s.WPM,
			Confidence: string(s.Confidence),
			Nivel:      int(s.Nivel),
		}
	}
	return data
}
