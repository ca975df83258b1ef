package store

import "errors"

var (
	// ErrNotFound means the targeted record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail means a user with the given email is already stored.
	ErrDuplicateEmail = errors.New("email already registered")
)
