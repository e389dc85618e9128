package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/histcal/internal/domain"
)

// dateValue is a YYYY-MM-DD flag.
type dateValue struct {
	date domain.Date
}

var _ pflag.Value = (*dateValue)(nil)

func (v *dateValue) String() string { return v.date.String() }

func (v *dateValue) Set(s string) error {
	d, err := domain.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	v.date = d
	return nil
}

func (v *dateValue) Type() string { return "date" }

// formatValue is the export format flag, xlsx or ics.
type formatValue struct {
	format domain.ExportFormat
}

var _ pflag.Value = (*formatValue)(nil)

func (v *formatValue) String() string { return string(v.format) }

func (v *formatValue) Set(s string) error {
	switch f := domain.ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case domain.ExportXLSX, domain.ExportICS:
		v.format = f
		return nil
	default:
		return fmt.Errorf("unknown format %q: use xlsx or ics", s)
	}
}

func (v *formatValue) Type() string { return "format" }
