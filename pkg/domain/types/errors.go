package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidOption is returned when a configuration value is missing or malformed
	ErrInvalidOption = goerr.New("invalid option")

	ErrValidationFailed = goerr.New("validation failed")
	ErrUnauthorized     = goerr.New("unauthorized")
	ErrConflict         = goerr.New("conflict")

	ErrRepositoryNotFound  = goerr.New("repository not found")
	ErrPullRequestNotFound = goerr.New("pull request not found")
	ErrUserNotFound        = goerr.New("user not found")

	// ErrUpstreamFailure indicates GitHub API returned an error or timed out.
	// The call may be retried by the caller.
	ErrUpstreamFailure   = goerr.New("upstream failure")
	ErrPersistenceFailed = goerr.New("persistence failed")

	ErrTokenExpired            = goerr.New("token expired")
	ErrTokenInvalid            = goerr.New("token invalid")
	ErrTokenVerificationFailed = goerr.New("token verification failed")
)
