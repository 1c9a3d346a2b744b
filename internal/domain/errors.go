package domain

import "errors"

var (
	ErrInvalidSchedule = errors.New("invalid schedule")
	ErrMalformedQuote  = errors.New("malformed quote")
	ErrMalformedRow    = errors.New("malformed row")
	ErrEmptySeries     = errors.New("empty series")
)
