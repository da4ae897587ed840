// Package auth provides password hashing and credential verification.
package auth

import "errors"

// Common authentication errors
var (
	// ErrInvalidCredentials is returned for every failed login, whether the
	// email is unknown or the password does not match, so callers cannot
	// tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordMismatch indicates the password does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrEmptyPassword indicates an attempt to hash an empty password.
	ErrEmptyPassword = errors.New("password cannot be empty")
)
