package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/histcal/internal/domain"
	"github.com/alexanderramin/histcal/internal/repository"
)

var (
	// ErrEmptySelection is returned when there is nothing to export. Callers
	// treat it as a silent no-op.
	ErrEmptySelection = errors.New("no events selected")

	// ErrWriterUnavailable is returned when no spreadsheet writer is configured.
	ErrWriterUnavailable = errors.New("spreadsheet writer unavailable")
)

// WriterUnavailableMessage is shown to the user when ErrWriterUnavailable occurs.
const WriterUnavailableMessage = "Spreadsheet export needs an xlsx writer, which is not available."

// Selection is the input of an export: the selected dates and the union of
// their events, already ordered.
type Selection struct {
	Dates   []string
	Events  []domain.Event
	Options domain.FilterOptions
}

// Span returns the earliest and latest selected dates.
func (s Selection) Span() (string, string) {
	if len(s.Dates) == 0 {
		return "", ""
	}
	lo, hi := s.Dates[0], s.Dates[0]
	for _, d := range s.Dates[1:] {
		lo, hi = min(lo, d), max(hi, d)
	}
	return lo, hi
}

// Result describes a written export file.
type Result struct {
	Path   string
	Sheet  string
	Rows   int
	From   string
	To     string
	Format domain.ExportFormat
}

// Service writes selections to report files in Dir and records each write
// in the export log when one is configured.
type Service struct {
	Writer SheetWriter
	Dir    string
	Log    repository.ExportLogRepo
	Logger *slog.Logger
	Now    func() time.Time
}

// NewService returns a Service writing xlsx files with excelize into dir.
func NewService(dir string, log repository.ExportLogRepo, logger *slog.Logger) *Service {
	return &Service{Writer: ExcelizeWriter{}, Dir: dir, Log: log, Logger: logger}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (s *Service) target(name string) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	return filepath.Join(dir, name), nil
}

// XLSX writes the selection as a spreadsheet.
func (s *Service) XLSX(ctx context.Context, sel Selection) (Result, error) {
	if len(sel.Events) == 0 {
		return Result{}, ErrEmptySelection
	}
	if s == nil || s.Writer == nil {
		return Result{}, ErrWriterUnavailable
	}
	from, to := sel.Span()
	path, err := s.target(FileName(from, to, domain.ExportXLSX))
	if err != nil {
		return Result{}, err
	}

	rows := make([][]string, 0, len(sel.Events))
	for _, e := range sel.Events {
		rows = append(rows, Row(e, sel.Options))
	}
	sheet := SheetName(from, to)
	if err := s.Writer.WriteSheet(path, sheet, Headers, rows); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", path, err)
	}

	res := Result{Path: path, Sheet: sheet, Rows: len(rows), From: from, To: to, Format: domain.ExportXLSX}
	s.record(ctx, res)
	return res, nil
}

// ICS writes the selection as an iCalendar file.
func (s *Service) ICS(ctx context.Context, sel Selection) (Result, error) {
	if len(sel.Events) == 0 {
		return Result{}, ErrEmptySelection
	}
	from, to := sel.Span()
	path, err := s.target(FileName(from, to, domain.ExportICS))
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	if err := EncodeICS(&buf, sel.Events, sel.Options, s.now()); err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", path, err)
	}

	res := Result{Path: path, Rows: len(sel.Events), From: from, To: to, Format: domain.ExportICS}
	s.record(ctx, res)
	return res, nil
}

func (s *Service) record(ctx context.Context, res Result) {
	s.logger().Info("export written", "format", res.Format, "path", res.Path, "rows", res.Rows)
	if s.Log == nil {
		return
	}
	err := s.Log.Create(ctx, &domain.ExportRecord{
		ID:        uuid.NewString(),
		Format:    res.Format,
		Path:      res.Path,
		DateFrom:  res.From,
		DateTo:    res.To,
		Rows:      res.Rows,
		CreatedAt: s.now(),
	})
	if err != nil {
		s.logger().Warn("export log write failed", "error", err)
	}
}
