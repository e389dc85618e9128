package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/histcal/internal/db"
	"github.com/alexanderramin/histcal/internal/domain"
)

// SQLiteHolidayRepo implements HolidayRepo.
type SQLiteHolidayRepo struct {
	db db.DBTX
}

func NewSQLiteHolidayRepo(conn db.DBTX) *SQLiteHolidayRepo {
	return &SQLiteHolidayRepo{db: conn}
}

func yearBounds(year int) (string, string) {
	return fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year)
}

func (r *SQLiteHolidayRepo) YearCached(ctx context.Context, country string, year int) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM holiday_years WHERE country = ? AND year = ?`, country, year).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking holiday year %d: %w", year, err)
	}
	return n > 0, nil
}

func (r *SQLiteHolidayRepo) ListYear(ctx context.Context, country string, year int) ([]domain.Holiday, error) {
	from, to := yearBounds(year)
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, local_name, name FROM holidays
		WHERE country = ? AND date BETWEEN ? AND ?
		ORDER BY date, seq`, country, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing holidays %d: %w", year, err)
	}
	defer rows.Close()

	var out []domain.Holiday
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.Date, &h.LocalName, &h.Name); err != nil {
			return nil, fmt.Errorf("scanning holiday: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *SQLiteHolidayRepo) ReplaceYear(ctx context.Context, country string, year int, entries []domain.Holiday) error {
	from, to := yearBounds(year)
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM holidays WHERE country = ? AND date BETWEEN ? AND ?`, country, from, to); err != nil {
		return fmt.Errorf("clearing holidays %d: %w", year, err)
	}

	seq := map[string]int{}
	for _, h := range entries {
		if h.Date == "" {
			continue
		}
		seq[h.Date]++
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO holidays (country, date, seq, local_name, name) VALUES (?, ?, ?, ?, ?)`,
			country, h.Date, seq[h.Date], h.LocalName, h.Name); err != nil {
			return fmt.Errorf("inserting holiday %s: %w", h.Date, err)
		}
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO holiday_years (country, year, fetched_at) VALUES (?, ?, ?)`,
		country, year, nowUTC()); err != nil {
		return fmt.Errorf("marking holiday year %d: %w", year, err)
	}
	return nil
}
