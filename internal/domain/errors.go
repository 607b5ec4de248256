package domain

import "errors"

var (
	ErrNotFound    = errors.New("offer not found")
	ErrInvalidDate = errors.New("invalid date: want YYYY-MM-DD")
)
