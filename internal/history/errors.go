package history

import (
	"errors"

	"github.com/alexanderramin/histcal/internal/calendar"
)

var (
	// ErrInvalidRange is returned when a custom week range is incomplete or
	// reversed. The controller state is left unchanged.
	ErrInvalidRange = calendar.ErrInvalidRange

	// ErrClosed is returned by operations on a closed controller.
	ErrClosed = errors.New("history controller closed")
)
