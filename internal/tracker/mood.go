package tracker

import (
	"context"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/validation"
)

// LogMood records the ratings for entry.Date. A second log for the same
// day overwrites the first.
func (s *Service) LogMood(ctx context.Context, entry models.MoodEntry) (models.MoodEntry, error) {
	if err := validation.Struct(entry); err != nil {
		return models.MoodEntry{}, err
	}

	var saved models.MoodEntry
	err := s.store.WithTx(ctx, func(tx storage.Collections) error {
		var err error
		saved, err = upsertByDate(ctx, tx.Moods(), entry.Date, entry,
			func(m models.MoodEntry) string { return m.ID },
			storage.Fields{"mood": entry.Mood, "energy": entry.Energy, "numb": entry.Numb, "notes": entry.Notes})
		return err
	})
	return saved, err
}

func (s *Service) DeleteMood(ctx context.Context, id string) error {
	return s.store.Moods().Delete(ctx, id)
}

// MoodHistory returns the latest limit entries, newest first.
func (s *Service) MoodHistory(ctx context.Context, limit int) ([]models.MoodEntry, error) {
	return s.store.Moods().Find(ctx, storage.All().Descending("date").Take(limit))
}

func (s *Service) AddFocusSession(ctx context.Context, session models.FocusSession) (models.FocusSession, error) {
	if err := validation.Struct(session); err != nil {
		return models.FocusSession{}, err
	}
	id, err := s.store.FocusSessions().Add(ctx, session)
	if err != nil {
		return models.FocusSession{}, err
	}
	return s.store.FocusSessions().Get(ctx, id)
}

// FocusSessions returns the sessions logged on date in insertion order.
func (s *Service) FocusSessions(ctx context.Context, date string) ([]models.FocusSession, error) {
	if err := validation.Date("date", date); err != nil {
		return nil, err
	}
	return s.store.FocusSessions().Find(ctx, storage.Where("date", date))
}
