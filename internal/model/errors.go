package model

import "errors"

// Common errors used across the application
var (
	// ErrMalformedAction is returned when a request body cannot be decoded into a client action
	ErrMalformedAction = errors.New("malformed action")

	// Storage lookups
	ErrPlayerNotFound = errors.New("player not found")
	ErrMatchNotFound  = errors.New("match not found")
)
