package tracker

import (
	"context"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/validation"
)

// LogDopamine records the verdict for entry.Date, replacing any earlier
// verdict for that day.
func (s *Service) LogDopamine(ctx context.Context, entry models.DopamineEntry) (models.DopamineEntry, error) {
	if err := validation.Struct(entry); err != nil {
		return models.DopamineEntry{}, err
	}

	var saved models.DopamineEntry
	err := s.store.WithTx(ctx, func(tx storage.Collections) error {
		var err error
		saved, err = upsertByDate(ctx, tx.Dopamine(), entry.Date, entry,
			func(e models.DopamineEntry) string { return e.ID },
			storage.Fields{"status": entry.Status, "notes": entry.Notes})
		return err
	})
	if err != nil {
		return models.DopamineEntry{}, err
	}
	return saved, s.refresh(ctx, saved.Date)
}

func (s *Service) DeleteDopamine(ctx context.Context, id string) error {
	var date string
	err := s.store.WithTx(ctx, func(tx storage.Collections) error {
		entry, err := tx.Dopamine().Get(ctx, id)
		if err != nil {
			return err
		}
		date = entry.Date
		return tx.Dopamine().Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	return s.refresh(ctx, date)
}

// RecentDopamine returns the latest limit entries, newest first.
func (s *Service) RecentDopamine(ctx context.Context, limit int) ([]models.DopamineEntry, error) {
	return s.store.Dopamine().Find(ctx, storage.All().Descending("date").Take(limit))
}
