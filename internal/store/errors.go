package store

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInsufficientStock  = errors.New("insufficient blood stock")
	ErrBloodGroupNotFound = errors.New("blood group not found in stock")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
