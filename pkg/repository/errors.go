package repository

import "github.com/m-mizutani/goerr/v2"

// Sentinels shared by every store implementation. The usecase layer converts
// them into domain errors of pkg/domain/types.
var (
	// ErrNotFound is returned by Get* methods for an unknown key
	ErrNotFound = goerr.New("record not found")

	// ErrAlreadyExists reports a unique key collision on create: repository
	// external ID, user ID or user email
	ErrAlreadyExists = goerr.New("record already exists")

	// ErrStaleValue is returned by compare-and-swap updates when the stored
	// value is not the expected one
	ErrStaleValue = goerr.New("stored value has changed")
)
