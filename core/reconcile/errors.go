package reconcile

import (
	"errors"
	"fmt"
)

// ErrPageDegraded marks a page that kept failing after every retry.
// Callers treat such a page as contributing no records.
var ErrPageDegraded = errors.New("page degraded")

// ErrKindMismatch is returned when the two sources list different kinds.
var ErrKindMismatch = errors.New("sources list different kinds")

// TotalsError means the first-page totals could not be read from a source.
// Without both totals there is nothing to compare, so it aborts the comparison.
type TotalsError struct {
	Source string
	Err    error
}

func (e *TotalsError) Error() string {
	return fmt.Sprintf("fetch totals from %s: %v", e.Source, e.Err)
}

func (e *TotalsError) Unwrap() error {
	return e.Err
}
