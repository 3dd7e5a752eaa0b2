package applications

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrNotFound is returned when no application matches the lookup key.
	ErrNotFound = errors.New("application not found")

	// ErrUnauthorized is returned when the caller may not act on the record.
	ErrUnauthorized = errors.New("not authorized for this application")

	// Admission rejections. Each maps to a distinct error code on the wire
	// so a rejected applicant knows which rule stopped them.
	ErrVacancyNotFound = errors.New("vacancy not found")
	ErrCapacityReached = errors.New("vacancy has reached its application limit")
	ErrVacancyExpired  = errors.New("vacancy has expired")
	ErrVacancyInactive = errors.New("vacancy is not accepting applications")

	// ErrPersistence wraps store failures on the admission path. It is kept
	// separate from the rejection errors: a failed write is an outage, not
	// a verdict.
	ErrPersistence = errors.New("failed to persist application")
)

// CooldownError rejects an application made inside the cooldown window and
// carries how long the applicant still has to wait.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active, retry in %s", e.Remaining.Round(time.Second))
}

// RetryAfterSeconds reports the remaining wait rounded up to whole seconds,
// never zero while any wait remains.
func (e *CooldownError) RetryAfterSeconds() int {
	return int(math.Ceil(e.Remaining.Seconds()))
}
