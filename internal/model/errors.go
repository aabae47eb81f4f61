package model

import "errors"

// Error kinds. Every failure is fatal for the run.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInsufficientWords    = errors.New("insufficient words")
	ErrResourceNotFound     = errors.New("resource not found")
)
