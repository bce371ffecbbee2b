package repositories

import "errors"

// Sentinel errors for outcomes callers need to distinguish from generic
// store failures.
var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("user is already enrolled in this project")
)
