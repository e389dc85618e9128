package domain

import "time"

// Holiday is one public holiday entry from the holiday source.
type Holiday struct {
	Date      string `json:"date"`
	LocalName string `json:"localName"`
	Name      string `json:"name"`
}

// ExportFormat names an export artifact type.
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportICS  ExportFormat = "ics"
)

// ExportRecord is one entry of the local export audit trail.
type ExportRecord struct {
	ID        string
	Format    ExportFormat
	Path      string
	DateFrom  string
	DateTo    string
	Rows      int
	CreatedAt time.Time
}
