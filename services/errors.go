// services/errors.go
package services

import "errors"

// Error taxonomy shared by the pricing and cancellation services. Controllers
// map these to HTTP statuses; nothing here is retried.
var (
	// ErrNotFound means no catalog row matched the given criteria.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedValue means a plan family, meal description, cohort size
	// or service code outside the recognized set.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrPreconditionFailed means the operation is not valid for the current
	// record state, e.g. cancelling a booking that is not ongoing.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrExpired means a one-time code is past its validity window.
	ErrExpired = errors.New("expired")
)
