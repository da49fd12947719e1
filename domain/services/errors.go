package services

import "errors"

// Sentinel failures surfaced by services. Handlers map these to HTTP
// statuses; everything else becomes a generic 500 through the global
// error handler. Ownership failures reuse the not-found sentinels so a
// foreign row is indistinguishable from an absent one.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrTimeEntryNotFound  = errors.New("time entry not found")
	ErrSprintNotFound     = errors.New("sprint not found")
	ErrInvalidDate        = errors.New("invalid date format")
)
