package repository

import (
	"context"

	"github.com/alexanderramin/histcal/internal/domain"
)

// SettingsRepo is a small key/value store for persisted UI state.
type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// HolidayRepo persists fetched holiday years per country.
type HolidayRepo interface {
	YearCached(ctx context.Context, country string, year int) (bool, error)
	ListYear(ctx context.Context, country string, year int) ([]domain.Holiday, error)
	// ReplaceYear swaps a year's entries and marks it fetched. Run it inside
	// a UnitOfWork so readers never see a half-written year.
	ReplaceYear(ctx context.Context, country string, year int, entries []domain.Holiday) error
}

// ExportLogRepo records written export files.
type ExportLogRepo interface {
	Create(ctx context.Context, rec *domain.ExportRecord) error
	ListRecent(ctx context.Context, limit int) ([]*domain.ExportRecord, error)
}
