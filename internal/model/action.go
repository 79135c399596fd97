package model

// ActionType is the closed set of operations a test step can map to.
type ActionType string

const (
	// ActionNavigate opens a URL.
	ActionNavigate ActionType = "navigate"
	// ActionClick clicks the target element.
	ActionClick ActionType = "click"
	// ActionFill types a value into the target element.
	ActionFill ActionType = "fill"
	// ActionSelect selects an option of the target element.
	ActionSelect ActionType = "select"
	// ActionCheck checks the target checkbox.
	ActionCheck ActionType = "check"
	// ActionUncheck unchecks the target checkbox.
	ActionUncheck ActionType = "uncheck"
	// ActionAssertVisible asserts the target element is visible.
	ActionAssertVisible ActionType = "assertVisible"
	// ActionScreenshot captures the current page.
	ActionScreenshot ActionType = "screenshot"
)

// Action is a single interpreted test step. Target is the identifier of
// a resolved element when the step references one; Locator carries its
// rendered expression so the caller can execute without a lookup.
type Action struct {
	Type        ActionType `json:"type"`
	Target      string     `json:"target,omitempty"`
	Locator     string     `json:"locator,omitempty"`
	Value       string     `json:"value,omitempty"`
	URL         string     `json:"url,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Valid reports whether the action type is part of the closed set.
func (a Action) Valid() bool {
	switch a.Type {
	case ActionNavigate, ActionClick, ActionFill, ActionSelect,
		ActionCheck, ActionUncheck, ActionAssertVisible, ActionScreenshot:
		return true
	}

	return false
}
