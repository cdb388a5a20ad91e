package domain

import "errors"

var (
	ErrInvalidParams         = errors.New("invalid params")
	ErrInvalidHolidayPayload = errors.New("invalid holiday payload")
	ErrInvalidTimestamp      = errors.New("invalid message timestamp")
)
