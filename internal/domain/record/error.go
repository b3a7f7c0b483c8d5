package record

import "errors"

var (
	ErrUnknownUser     = errors.New("unknown user")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidInput    = errors.New("invalid record input")
)
