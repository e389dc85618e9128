package api

import "errors"

var (
	// ErrUnavailable indicates the history API could not be reached.
	ErrUnavailable = errors.New("history api unavailable")

	// ErrStatus indicates the API answered with a non-2xx status.
	ErrStatus = errors.New("history api returned error status")

	// ErrDecode indicates the response body was not the expected JSON shape.
	ErrDecode = errors.New("invalid history api response")
)
