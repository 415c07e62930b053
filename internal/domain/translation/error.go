package translation

import "errors"

var (
	// ErrNotConfigured means no provider credential is available.
	ErrNotConfigured = errors.New("translation provider not configured")
	// ErrUpstream covers provider failures: non-success status codes
	// and unparseable responses. Details are logged, never surfaced.
	ErrUpstream = errors.New("translation provider error")
	// ErrEmptyText is returned before any provider call is made.
	ErrEmptyText = errors.New("text is required")
)
