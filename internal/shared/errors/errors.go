// Package errors contains the shared domain errors of the application.
//
// These errors are the single vocabulary between the repository, service
// and api layers. The api layer maps them to HTTP statuses; lower layers
// never touch HTTP codes directly.
package errors

import "errors"

var (
	// Input failed validation (missing fields, malformed email and so on).
	ErrInvalidInput = errors.New("please provide valid name, email, and password")
	// Login failed. Deliberately the same error for an unknown email and a
	// wrong password, so the response never says which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// A user with the same email is already registered.
	ErrAlreadyExists = errors.New("user already exists with this email")
	// Request body is not valid JSON.
	ErrBadJSON = errors.New("bad json")
	// No bearer token on a protected route.
	ErrUnauthenticated = errors.New("missing bearer token")
	// Token present but malformed, badly signed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// Resource does not exist.
	ErrNotFound = errors.New("not found")
	// Client exceeded the request rate limit.
	ErrTooManyRequests = errors.New("too many requests, please try again later")
	// Anything unexpected. The api layer returns a generic body for it.
	ErrInternal = errors.New("something went wrong")
)
