package service

import (
	"context"
	"log/slog"
	"sync"

	"journalfetch/internal/logging"
	"journalfetch/internal/model"
	"journalfetch/internal/preference"
)

// WelcomeMessage is the body of the onboarding popup.
const WelcomeMessage = "Welcome! Here you can download and read journals."

// Onboarding is the popup state machine: Shown -> Hidden, with Hidden terminal
// for the session.
type Onboarding interface {
	Popup() model.Popup
	// SetDontShowAgain updates the toggle in memory only.
	SetDontShowAgain(v bool) model.Popup
	// Dismiss persists the opt-out when the toggle is on, then hides the popup.
	Dismiss(ctx context.Context) model.Popup
}

type onboarding struct {
	store preference.Store
	log   *slog.Logger

	mu            sync.Mutex
	state         model.PopupState
	dontShowAgain bool
}

// NewOnboarding reads the persisted preference once to pick the initial state.
// Read failures are logged and the popup is shown.
func NewOnboarding(ctx context.Context, store preference.Store, log *slog.Logger) Onboarding {
	if log == nil {
		log = logging.Nop()
	}
	o := &onboarding{store: store, log: log, state: model.PopupShown}

	suppress, err := store.GetSuppressPopup(ctx)
	if err != nil {
		log.WarnContext(ctx, "preference_read_failed", slog.String("key", preference.KeyDontShowPopup), slog.String("error", err.Error()))
	}
	if err == nil && suppress {
		o.state = model.PopupHidden
	}
	return o
}

func (o *onboarding) Popup() model.Popup {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.popup()
}

func (o *onboarding) popup() model.Popup {
	return model.Popup{State: o.state, DontShowAgain: o.dontShowAgain, Message: WelcomeMessage}
}

func (o *onboarding) SetDontShowAgain(v bool) model.Popup {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.dontShowAgain = v
	return o.popup()
}

func (o *onboarding) Dismiss(ctx context.Context) model.Popup {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == model.PopupHidden {
		return o.popup()
	}
	if o.dontShowAgain {
		if err := o.store.SetSuppressPopup(ctx, true); err != nil {
			o.log.WarnContext(ctx, "preference_write_failed", slog.String("key", preference.KeyDontShowPopup), slog.String("error", err.Error()))
		}
	}
	o.state = model.PopupHidden
	return o.popup()
}
