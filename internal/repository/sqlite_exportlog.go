package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/histcal/internal/db"
	"github.com/alexanderramin/histcal/internal/domain"
)

// SQLiteExportLogRepo implements ExportLogRepo.
type SQLiteExportLogRepo struct {
	db db.DBTX
}

func NewSQLiteExportLogRepo(conn db.DBTX) *SQLiteExportLogRepo {
	return &SQLiteExportLogRepo{db: conn}
}

func (r *SQLiteExportLogRepo) Create(ctx context.Context, rec *domain.ExportRecord) error {
	createdAt := nowUTC()
	if !rec.CreatedAt.IsZero() {
		createdAt = rec.CreatedAt.UTC().Format(time.RFC3339)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO export_log (id, format, path, date_from, date_to, row_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Format), rec.Path, rec.DateFrom, rec.DateTo, rec.Rows, createdAt)
	if err != nil {
		return fmt.Errorf("inserting export record: %w", err)
	}
	return nil
}

func (r *SQLiteExportLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ExportRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, format, path, date_from, date_to, row_count, created_at
		FROM export_log ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing export records: %w", err)
	}
	defer rows.Close()

	var out []*domain.ExportRecord
	for rows.Next() {
		var rec domain.ExportRecord
		var format, createdAt string
		if err := rows.Scan(&rec.ID, &format, &rec.Path, &rec.DateFrom, &rec.DateTo, &rec.Rows, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning export record: %w", err)
		}
		rec.Format = domain.ExportFormat(format)
		rec.CreatedAt = parseTime(createdAt)
		out = append(out, &rec)
	}
	return out, rows.Err()
}
