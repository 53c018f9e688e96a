package service

import "errors"

// Domain errors. Handlers translate these into flash messages; none of
// them escapes the request boundary.
var (
	// ErrFieldsRequired means a required form field was empty.
	ErrFieldsRequired = errors.New("service: all fields are required")
	// ErrPasswordMismatch means password and confirmation differ.
	ErrPasswordMismatch = errors.New("service: passwords do not match")
	// ErrUsernameTaken means the username is already registered.
	ErrUsernameTaken = errors.New("service: username already exists")
	// ErrBadCredentials means the username/password pair did not verify.
	ErrBadCredentials = errors.New("service: invalid username or password")
	// ErrUserGone means the session references a user that no longer
	// exists in the store.
	ErrUserGone = errors.New("service: user no longer exists")
)
