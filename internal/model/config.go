package model

// NamingConfig controls identifier derivation.
type NamingConfig struct {
	// MaxTextLength is the longest visible text still usable as a name
	// source before falling back to other signals.
	MaxTextLength int `json:"maxTextLength" yaml:"max_text_length"`
	// CamelCase folds the base name to camelCase; when false the raw
	// base name is kept apart from non-alphanumeric stripping.
	CamelCase bool `json:"camelCase" yaml:"camel_case"`
	// Suffixes maps each category to the identifier suffix appended
	// after the base name.
	Suffixes map[Category]string `json:"suffixes" yaml:"suffixes"`
}

// IgnoreConfig drops descriptors before resolution. Classes and IDs are
// substring matches; Roles are exact matches.
type IgnoreConfig struct {
	Classes []string `json:"classes" yaml:"classes"`
	IDs     []string `json:"ids" yaml:"ids"`
	Roles   []string `json:"roles" yaml:"roles"`
}

// TemplateConfig controls what the synthesizer emits beyond field
// declarations and the constructor.
type TemplateConfig struct {
	Helpers bool `json:"helpers" yaml:"helpers"`
	Goto    bool `json:"goto" yaml:"goto"`
}

// Config is the complete configuration for one generation run. It is
// passed by value; a run never mutates it, and defaults are never
// mutated by merging.
type Config struct {
	Priorities []Strategy     `json:"priorities" yaml:"priorities"`
	Naming     NamingConfig   `json:"naming" yaml:"naming"`
	Ignore     IgnoreConfig   `json:"ignore" yaml:"ignore"`
	Template   TemplateConfig `json:"template" yaml:"template"`
}

// DefaultConfig returns the built-in configuration. Callers overlay user
// settings with Merge; the value returned here is fresh on every call so
// no shared state can leak between runs.
func DefaultConfig() Config {
	return Config{
		Priorities: append([]Strategy(nil), DefaultPriorities...),
		Naming: NamingConfig{
			MaxTextLength: 50,
			CamelCase:     true,
			Suffixes: map[Category]string{
				CategoryButton:   "Button",
				CategoryInput:    "Input",
				CategoryLink:     "Link",
				CategorySelect:   "Select",
				CategoryCheckbox: "Checkbox",
				CategoryRadio:    "Radio",
				CategoryTextarea: "Textarea",
				CategoryHeading:  "Heading",
				CategoryOther:    "Element",
			},
		},
		Ignore: IgnoreConfig{},
		Template: TemplateConfig{
			Helpers: true,
			Goto:    true,
		},
	}
}

// ConfigOverlay holds user-supplied configuration. Nil pointers and nil
// slices mean "not set".
type ConfigOverlay struct {
	Priorities []Strategy       `json:"priorities,omitempty" yaml:"priorities"`
	Naming     *NamingOverlay   `json:"naming,omitempty" yaml:"naming"`
	Ignore     *IgnoreConfig    `json:"ignore,omitempty" yaml:"ignore"`
	Template   *TemplateOverlay `json:"template,omitempty" yaml:"template"`
}

// NamingOverlay is the nil-able counterpart of NamingConfig.
type NamingOverlay struct {
	MaxTextLength *int                `json:"maxTextLength,omitempty" yaml:"max_text_length"`
	CamelCase     *bool               `json:"camelCase,omitempty" yaml:"camel_case"`
	Suffixes      map[Category]string `json:"suffixes,omitempty" yaml:"suffixes"`
}

// TemplateOverlay is the nil-able counterpart of TemplateConfig.
type TemplateOverlay struct {
	Helpers *bool `json:"helpers,omitempty" yaml:"helpers"`
	Goto    *bool `json:"goto,omitempty" yaml:"goto"`
}

// Merge produces a new Config from base and overlay. Neither input is
// mutated. Per-field semantics:
//   - Priorities: replaced wholesale when set.
//   - Naming.MaxTextLength, Naming.CamelCase: replaced when set.
//   - Naming.Suffixes: extended; user keys override per category,
//     categories the user omits keep the base suffix.
//   - Ignore.Classes/IDs/Roles: extended; user entries are appended to
//     the base lists.
//   - Template.Helpers, Template.Goto: replaced when set.
func Merge(base Config, overlay ConfigOverlay) Config {
	merged := base

	merged.Priorities = append([]Strategy(nil), base.Priorities...)
	if overlay.Priorities != nil {
		merged.Priorities = append([]Strategy(nil), overlay.Priorities...)
	}

	merged.Naming.Suffixes = make(map[Category]string, len(base.Naming.Suffixes))
	for c, s := range base.Naming.Suffixes {
		merged.Naming.Suffixes[c] = s
	}

	if overlay.Naming != nil {
		if overlay.Naming.MaxTextLength != nil {
			merged.Naming.MaxTextLength = *overlay.Naming.MaxTextLength
		}

		if overlay.Naming.CamelCase != nil {
			merged.Naming.CamelCase = *overlay.Naming.CamelCase
		}

		for c, s := range overlay.Naming.Suffixes {
			merged.Naming.Suffixes[c] = s
		}
	}

	merged.Ignore.Classes = append([]string(nil), base.Ignore.Classes...)
	merged.Ignore.IDs = append([]string(nil), base.Ignore.IDs...)
	merged.Ignore.Roles = append([]string(nil), base.Ignore.Roles...)

	if overlay.Ignore != nil {
		merged.Ignore.Classes = append(merged.Ignore.Classes, overlay.Ignore.Classes...)
		merged.Ignore.IDs = append(merged.Ignore.IDs, overlay.Ignore.IDs...)
		merged.Ignore.Roles = append(merged.Ignore.Roles, overlay.Ignore.Roles...)
	}

	if overlay.Template != nil {
		if overlay.Template.Helpers != nil {
			merged.Template.Helpers = *overlay.Template.Helpers
		}

		if overlay.Template.Goto != nil {
			merged.Template.Goto = *overlay.Template.Goto
		}
	}

	return merged
}
