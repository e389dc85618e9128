package holiday

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/histcal/internal/db"
	"github.com/alexanderramin/histcal/internal/repository"
)

// StoredFetcher serves years already persisted in SQLite and falls back to
// the remote fetcher for the rest, saving each fetched year atomically.
type StoredFetcher struct {
	remote  Fetcher
	country string
	conn    db.DBTX
	uow     db.UnitOfWork
	logger  *slog.Logger
}

// NewStoredFetcher wraps remote with the holiday tables behind conn.
func NewStoredFetcher(remote Fetcher, country string, conn db.DBTX, uow db.UnitOfWork, logger *slog.Logger) *StoredFetcher {
	if country == "" {
		country = DefaultCountry
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &StoredFetcher{remote: remote, country: country, conn: conn, uow: uow, logger: logger}
}

func (s *StoredFetcher) PublicHolidays(ctx context.Context, year int) ([]Entry, error) {
	repo := repository.NewSQLiteHolidayRepo(s.conn)
	cached, err := repo.YearCached(ctx, s.country, year)
	if err != nil {
		s.logger.Warn("holiday store unreadable", "year", year, "error", err)
	} else if cached {
		return repo.ListYear(ctx, s.country, year)
	}

	entries, err := s.remote.PublicHolidays(ctx, year)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteHolidayRepo(tx).ReplaceYear(ctx, s.country, year, entries)
	})
	if err != nil {
		// The fetched data is still good for this session.
		s.logger.Warn("holiday store write failed", "year", year, "error", fmt.Errorf("saving holidays: %w", err))
	}
	return entries, nil
}

// Refresh fetches year from the remote source and overwrites the stored copy.
func (s *StoredFetcher) Refresh(ctx context.Context, year int) ([]Entry, error) {
	entries, err := s.remote.PublicHolidays(ctx, year)
	if err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteHolidayRepo(tx).ReplaceYear(ctx, s.country, year, entries)
	})
	if err != nil {
		return nil, fmt.Errorf("saving holidays: %w", err)
	}
	return entries, nil
}
