package services

import "errors"

var (
	// ErrNotFound marks a missing resource, empty result page or an
	// out-of-range category filter.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks a request that failed schema checks.
	ErrValidation = errors.New("validation failed")
	// ErrPersistence marks a store write or read that failed.
	ErrPersistence = errors.New("persistence failed")
	// ErrUnauthorized marks a rejected admin credential or token.
	ErrUnauthorized = errors.New("unauthorized")
)
