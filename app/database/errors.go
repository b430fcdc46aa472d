package database

import "errors"

var (
	// ErrNotFound covers both a missing row and a row outside the
	// caller's tenant; callers must not distinguish the two in
	// user-facing messages.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyDecided is returned when an approve or decline hits a
	// proposal or mark that already left the Pending state.
	ErrAlreadyDecided = errors.New("already decided")

	// ErrEmailExists is returned on duplicate user registration.
	ErrEmailExists = errors.New("email already exists")
)
