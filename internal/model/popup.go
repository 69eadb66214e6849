package model

// PopupState is the visibility of the onboarding popup.
type PopupState string

const (
	PopupShown  PopupState = "shown"
	PopupHidden PopupState = "hidden"
)

// Popup is a snapshot of the onboarding popup for rendering.
type Popup struct {
	State         PopupState `json:"state"`
	DontShowAgain bool       `json:"dont_show_again"`
	Message       string     `json:"message"`
}
