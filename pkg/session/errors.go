package session

import "errors"

var (
	// ErrEmptyCookie indicates the supplied cookie was empty after trimming.
	ErrEmptyCookie = errors.New("session: cookie cannot be empty")

	// ErrSessionNotFound indicates no record exists for the given token.
	ErrSessionNotFound = errors.New("session: not found")

	// ErrTokenGeneration indicates the random source failed.
	ErrTokenGeneration = errors.New("session: token generation failed")
)
