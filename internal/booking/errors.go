package booking

import "errors"

var (
	// ErrSeatUnavailable covers both "already booked" and "no such seat for
	// this showtime"; the hot path deliberately does not look up which.
	ErrSeatUnavailable = errors.New("seat is unavailable")

	ErrTicketNotFound  = errors.New("ticket not found")
	ErrAlreadyCanceled = errors.New("ticket is already canceled")

	// ErrInconsistentState means the in-memory seat map and the database
	// disagreed; the operation was refused before it could widen the gap.
	ErrInconsistentState = errors.New("seat state diverged from ticket records")

	// ErrUnrecoverableState means a compensating action failed as well. The
	// seat map could not be restored and the condition needs an operator.
	ErrUnrecoverableState = errors.New("seat state diverged and could not be restored")
)
