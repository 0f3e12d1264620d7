// Package news provides the news fallback use case: a primary provider
// followed by ordered fallback chains of alternate providers.
package news

import "errors"

// Sentinel errors for news use case operations.
var (
	// ErrFetchFailed indicates that the primary provider call failed.
	// Fallback chain failures never surface; they degrade to an empty result.
	ErrFetchFailed = errors.New("failed to fetch news")

	// ErrNoPrimary indicates that the service was built without a primary provider.
	ErrNoPrimary = errors.New("no primary news provider configured")
)
