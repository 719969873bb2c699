package services

import "errors"

// Validation and business-rule failures detected by the flows. The HTTP
// boundary maps each to a specific status and message; anything else is an
// unexpected backend failure and becomes a generic server error.
var (
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmailTaken       = errors.New("email already in use")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidPassword  = errors.New("invalid password")
)
