package vacancies

import "errors"

var (
	// ErrNotFound is returned when no vacancy matches the lookup key. It is
	// also the answer for vacancies hidden from the caller, so probing ids
	// cannot distinguish "missing" from "not yours" on lookup paths that
	// deliberately blur the two.
	ErrNotFound = errors.New("vacancy not found")

	// ErrUnauthorized is returned when the vacancy exists but the principal
	// does not own it.
	ErrUnauthorized = errors.New("not authorized for this vacancy")

	// ErrTitleTaken is returned when another vacancy already holds the title.
	ErrTitleTaken = errors.New("vacancy title already in use")

	// ErrInvalidInput is returned for payloads that fail validation, such as
	// a non-positive application capacity.
	ErrInvalidInput = errors.New("invalid vacancy input")

	// ErrAlreadyActive and ErrAlreadyInactive reject redundant flag flips.
	ErrAlreadyActive   = errors.New("vacancy is already active")
	ErrAlreadyInactive = errors.New("vacancy is already inactive")
)
