package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for roster operations.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	ErrAlreadySignedUp = fmt.Errorf("%w: student already signed up", ErrConflict)
	ErrNotRegistered   = fmt.Errorf("%w: student not registered", ErrConflict)
)
