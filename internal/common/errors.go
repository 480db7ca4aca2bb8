// Package common defines shared constants and sentinel errors used across
// the club client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Error taxonomy for accessor results. Every failed Result wraps exactly
	// one of these so callers can branch without string matching.

	// ErrValidation marks a local precondition failure. No network call was
	// made when a result carries this error.
	ErrValidation = errors.New("validation error")

	// ErrTransport marks a network failure, a non-success HTTP status, or an
	// unparsable response body.
	ErrTransport = errors.New("transport error")

	// ErrAuthentication marks a transport failure that specifically signals
	// an invalid or expired token. Receiving it clears the stored token.
	ErrAuthentication = errors.New("authentication error")

	// ErrStorageConsistency marks a metadata write that failed after a
	// successful object-storage write. The stored object has been removed
	// (best effort) by the time the error is surfaced.
	ErrStorageConsistency = errors.New("storage consistency error")

	// ErrNotAuthenticated is reported when an operation needs an identity
	// and no token is stored. No network call is made in that case.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound is reported when a by-ID lookup returns an empty set.
	ErrNotFound = errors.New("not found")
)
