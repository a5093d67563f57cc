package usecase

import (
	"errors"
	"fmt"
)

// DetailedError pairs a sentinel with the client-facing message built for a
// specific request. errors.Is still matches the sentinel.
type DetailedError struct {
	Err    error
	Detail string
}

func (e *DetailedError) Error() string { return e.Detail }

func (e *DetailedError) Unwrap() error { return e.Err }

func detailed(err error, format string, args ...any) error {
	return &DetailedError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

// Detail returns the client-facing message carried by err, or fallback.
func Detail(err error, fallback string) string {
	var de *DetailedError
	if errors.As(err, &de) && de.Detail != "" {
		return de.Detail
	}
	return fallback
}
