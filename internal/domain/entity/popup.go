package entity

import "strings"

// PopupPolicy decides what happens when a page asks for a new window.
type PopupPolicy string

const (
	// PopupOpenTab opens every request as a new, active tab.
	PopupOpenTab PopupPolicy = "open-tab"
	// PopupBlock drops every request.
	PopupBlock PopupPolicy = "block"
	// PopupUserGesture opens only requests triggered by a click or key press.
	PopupUserGesture PopupPolicy = "user-gesture"
)

// ParsePopupPolicy maps a config value to a policy, defaulting to PopupOpenTab.
func ParsePopupPolicy(s string) (PopupPolicy, bool) {
	switch p := PopupPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PopupOpenTab, PopupBlock, PopupUserGesture:
		return p, true
	case "":
		return PopupOpenTab, true
	default:
		return PopupOpenTab, false
	}
}

// Allows reports whether a request should open a tab.
func (p PopupPolicy) Allows(userGesture bool) bool {
	switch p {
	case PopupBlock:
		return false
	case PopupUserGesture:
		return userGesture
	default:
		return true
	}
}
