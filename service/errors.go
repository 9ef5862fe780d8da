package service

import "errors"

var (
	ErrCafeNotFound     = errors.New("cafe not found")
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrIDGenerationExhausted means every attempt at a random employee id
	// collided with an existing one. The whole request can be retried.
	ErrIDGenerationExhausted = errors.New("unable to generate unique employee id")
)
