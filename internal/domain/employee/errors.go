package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNIKExists        = errors.New("NIK already registered")
	ErrInvalidRole      = errors.New("role must be one of security, lingkungan, kebersihan")
)
