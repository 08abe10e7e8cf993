// Package tracker is the single write path for lifetrack. Every mutation is
// validated, applied in one transaction and followed by a refresh of the
// affected day's DailyCompletion.
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/calendar"
	"github.com/julianstephens/lifetrack/internal/completion"
	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/metrics"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type Service struct {
	store     storage.Store
	engine    *metrics.Engine
	cache     *completion.Cache
	projector *calendar.Projector
	now       func() time.Time
}

func NewService(store storage.Store, now func() time.Time, opts metrics.Options) *Service {
	if now == nil {
		now = time.Now
	}
	engine := metrics.New(store, now, opts)
	return &Service{
		store:     store,
		engine:    engine,
		cache:     completion.New(store, engine),
		projector: calendar.NewProjector(store, engine),
		now:       now,
	}
}

func (s *Service) Engine() *metrics.Engine {
	return s.engine
}

func (s *Service) Cache() *completion.Cache {
	return s.cache
}

func (s *Service) Calendar() *calendar.Projector {
	return s.projector
}

func (s *Service) today() string {
	return utils.DateKey(s.now())
}

// refresh updates the cached summary for date after a committed write.
// Failure is reported as ErrCacheRefresh; the write itself stays.
func (s *Service) refresh(ctx context.Context, date string) error {
	if _, err := s.cache.Refresh(ctx, date); err != nil {
		logger.Warn("Daily completion refresh failed", "date", date, "error", err)
		return fmt.Errorf("%w for %s: %w", apperrors.ErrCacheRefresh, date, err)
	}
	return nil
}

// upsertByDate updates the record already stored for date, or inserts rec.
func upsertByDate[T any](ctx context.Context, c storage.Collection[T], date string, rec T, idOf func(T) string, fields storage.Fields) (T, error) {
	existing, err := c.First(ctx, storage.Where("date", date))
	switch {
	case err == nil:
		id := idOf(existing)
		if err := c.Update(ctx, id, fields); err != nil {
			return rec, err
		}
		return c.Get(ctx, id)
	case apperrors.IsNotFound(err):
		id, err := c.Add(ctx, rec)
		if err != nil {
			return rec, err
		}
		return c.Get(ctx, id)
	default:
		return rec, err
	}
}

// nextOrder returns max(order)+1 over recs, or 1 when recs is empty.
func nextOrder[T any](recs []T, orderOf func(T) int) int {
	next := 1
	for _, r := range recs {
		if o := orderOf(r); o >= next {
			next = o + 1
		}
	}
	return next
}
