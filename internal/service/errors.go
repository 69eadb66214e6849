package service

import (
	"errors"

	"journalfetch/internal/cache"
	"journalfetch/internal/fetcher"
	"journalfetch/internal/preference"
	"journalfetch/internal/viewer"
)

// Error taxonomy surfaced to the presentation layer. Component errors wrap
// these, so callers match with errors.Is.
var (
	ErrNotFound          = fetcher.ErrNotFound
	ErrWriteFailure      = cache.ErrWriteFailure
	ErrDeleteFailure     = cache.ErrDeleteFailure
	ErrUnsupportedViewer = viewer.ErrUnsupportedViewer
	ErrOpenFailed        = viewer.ErrOpenFailed
	ErrPreferenceIO      = preference.ErrPreferenceIO

	// ErrNoCachedDocument is returned by view and delete before a successful download.
	ErrNoCachedDocument = errors.New("no cached document")
)
