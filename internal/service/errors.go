package service

import "errors"

// Service construction errors.
var (
	// ErrNilDependency is returned when a constructor receives a nil collaborator.
	ErrNilDependency = errors.New("required dependency is nil")
)
