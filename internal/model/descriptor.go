// Package model defines the data structures for page-object generation.
package model

// Category is the closed semantic classification of a page element,
// assigned by the extraction layer rather than inferred here.
type Category string

const (
	// CategoryButton represents clickable button elements.
	CategoryButton Category = "button"
	// CategoryInput represents single-line text inputs.
	CategoryInput Category = "input"
	// CategoryLink represents anchor elements.
	CategoryLink Category = "link"
	// CategorySelect represents dropdown selects.
	CategorySelect Category = "select"
	// CategoryCheckbox represents checkbox inputs.
	CategoryCheckbox Category = "checkbox"
	// CategoryRadio represents radio inputs.
	CategoryRadio Category = "radio"
	// CategoryTextarea represents multi-line text inputs.
	CategoryTextarea Category = "textarea"
	// CategoryHeading represents h1-h6 elements.
	CategoryHeading Category = "heading"
	// CategoryOther captures interactive elements outside the known set.
	// They appear in snapshot metadata but never in generated code.
	CategoryOther Category = "other"
)

// Categories lists every category in the traversal order used for
// code generation and batch flattening.
var Categories = []Category{
	CategoryButton,
	CategoryInput,
	CategoryLink,
	CategorySelect,
	CategoryCheckbox,
	CategoryRadio,
	CategoryTextarea,
	CategoryHeading,
	CategoryOther,
}

// Role returns the ARIA role token used for role-based locators, and
// whether the category maps to one at all.
func (c Category) Role() (string, bool) {
	switch c {
	case CategoryButton:
		return "button", true
	case CategoryInput:
		return "textbox", true
	case CategoryLink:
		return "link", true
	case CategorySelect:
		return "combobox", true
	case CategoryCheckbox:
		return "checkbox", true
	case CategoryRadio:
		return "radio", true
	case CategoryTextarea:
		return "textbox", true
	case CategoryHeading:
		return "heading", true
	case CategoryOther:
		return "", false
	}

	return "", false
}

// Descriptor is the raw, extracted attribute set for one discovered
// element. Every field except Tag is nil when the attribute is absent
// from markup; an empty string means present but empty, and the two
// must never be conflated.
type Descriptor struct {
	Tag         string  `json:"tag"`
	Role        *string `json:"role,omitempty"`
	Label       *string `json:"label,omitempty"`
	Text        *string `json:"text,omitempty"`
	Placeholder *string `json:"placeholder,omitempty"`
	Name        *string `json:"name,omitempty"`
	ID          *string `json:"id,omitempty"`
	Class       *string `json:"class,omitempty"`
	Type        *string `json:"type,omitempty"`
	AriaLabel   *string `json:"ariaLabel,omitempty"`
	TestID      *string `json:"testId,omitempty"`
}

// Equal reports whether two descriptors carry identical attribute sets,
// treating absent and empty as distinct.
func (d Descriptor) Equal(other Descriptor) bool {
	if d.Tag != other.Tag {
		return false
	}

	pairs := [][2]*string{
		{d.Role, other.Role},
		{d.Label, other.Label},
		{d.Text, other.Text},
		{d.Placeholder, other.Placeholder},
		{d.Name, other.Name},
		{d.ID, other.ID},
		{d.Class, other.Class},
		{d.Type, other.Type},
		{d.AriaLabel, other.AriaLabel},
		{d.TestID, other.TestID},
	}

	for _, p := range pairs {
		if !ptrEqual(p[0], p[1]) {
			return false
		}
	}

	return true
}

func ptrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// String is a convenience constructor for optional descriptor fields.
func String(s string) *string {
	return &s
}

// Page carries the extraction result for a single visited page:
// descriptors grouped by category, in discovery order within each group.
type Page struct {
	URL         string                    `json:"url"`
	Title       string                    `json:"title"`
	Descriptors map[Category][]Descriptor `json:"descriptors"`
}
