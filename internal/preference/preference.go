package preference

import (
	"context"
	"errors"
)

// KeyDontShowPopup is the persisted key for the onboarding opt-out.
const KeyDontShowPopup = "dontShowPopup"

// ErrPreferenceIO marks a failed read or write of persisted preferences.
// Callers log it and carry on with defaults.
var ErrPreferenceIO = errors.New("preference storage failure")

// Store persists the single onboarding preference.
type Store interface {
	// GetSuppressPopup returns the persisted flag. It is false when never set;
	// on read errors it returns false together with an ErrPreferenceIO.
	GetSuppressPopup(ctx context.Context) (bool, error)
	// SetSuppressPopup overwrites the flag.
	SetSuppressPopup(ctx context.Context, suppress bool) error
}

// ParseFlag interprets a stored value. Only a literal true counts; legacy
// merged objects such as {"dontShowAgain":true} read as false.
func ParseFlag(v string) bool {
	return v == "true"
}

// FormatFlag is the inverse of ParseFlag.
func FormatFlag(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
