package report

import "errors"

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrAccessDenied     = errors.New("access denied")
)
