package services

import "errors"

var (
	ErrInterviewNotFound = errors.New("interview not found")
	ErrInvalidScore      = errors.New("score must be between 0 and 100")
	ErrUserRequired      = errors.New("user required")
)
