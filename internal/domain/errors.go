package domain

import "errors"

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrEditConflict    = errors.New("edit conflict")
	ErrDuplicateTicket = errors.New("an active ticket already exists for this seat")
)
