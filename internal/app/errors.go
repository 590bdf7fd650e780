package service

import "errors"

// Service errors. Callers match them with errors.Is.
var (
	ErrNotStarted = errors.New("service not started")
	ErrNotFound   = errors.New("country not found")
	ErrEmpty      = errors.New("dataset is empty")
)
