package model

import (
	"fmt"
	"strings"
)

// Strategy identifies which locator-production rule won for an element.
type Strategy string

const (
	// StrategyRole locates by ARIA role plus accessible name.
	StrategyRole Strategy = "role"
	// StrategyLabel locates by associated label text.
	StrategyLabel Strategy = "label"
	// StrategyPlaceholder locates by placeholder attribute.
	StrategyPlaceholder Strategy = "placeholder"
	// StrategyTestID locates by test-id attribute.
	StrategyTestID Strategy = "testid"
	// StrategyText locates by visible text.
	StrategyText Strategy = "text"
	// StrategyCSS is the attribute fallback: id, name attribute, first
	// class token, or bare tag name. Always applicable.
	StrategyCSS Strategy = "css"
)

// DefaultPriorities is the default strategy order walked by the resolver.
var DefaultPriorities = []Strategy{
	StrategyRole,
	StrategyLabel,
	StrategyPlaceholder,
	StrategyTestID,
	StrategyText,
	StrategyCSS,
}

// Locator is the structured form of a locator expression. Value (and
// Role, for the role strategy) is stored already escaped, so rendering
// to source text is plain interpolation.
type Locator struct {
	Strategy Strategy `json:"strategy"`
	Role     string   `json:"role,omitempty"`
	Value    string   `json:"value"`
}

// NewLocator builds a locator for a single-argument strategy, escaping
// the argument.
func NewLocator(strategy Strategy, value string) Locator {
	return Locator{Strategy: strategy, Value: Escape(value)}
}

// NewRoleLocator builds a role+accessible-name locator, escaping the name.
func NewRoleLocator(role, name string) Locator {
	return Locator{Strategy: StrategyRole, Role: role, Value: Escape(name)}
}

// Source renders the locator as Playwright locator source text. This is
// the wire form embedded in generated code and compared by the differ.
func (l Locator) Source() string {
	switch l.Strategy {
	case StrategyRole:
		return fmt.Sprintf("getByRole('%s', { name: '%s' })", l.Role, l.Value)
	case StrategyLabel:
		return fmt.Sprintf("getByLabel('%s')", l.Value)
	case StrategyPlaceholder:
		return fmt.Sprintf("getByPlaceholder('%s')", l.Value)
	case StrategyTestID:
		return fmt.Sprintf("getByTestId('%s')", l.Value)
	case StrategyText:
		return fmt.Sprintf("getByText('%s')", l.Value)
	case StrategyCSS:
		return fmt.Sprintf("locator('%s')", l.Value)
	}

	return fmt.Sprintf("locator('%s')", l.Value)
}

// ParseLocator parses locator source text back into its structured form.
// Round-trips losslessly with Source.
func ParseLocator(src string) (Locator, error) {
	src = strings.TrimSpace(src)

	switch {
	case strings.HasPrefix(src, "getByRole("):
		inner, ok := stripCall(src, "getByRole")
		if !ok {
			return Locator{}, fmt.Errorf("malformed locator expression: %q", src)
		}

		role, rest, err := takeQuoted(inner)
		if err != nil {
			return Locator{}, fmt.Errorf("malformed role locator %q: %w", src, err)
		}

		rest = strings.TrimPrefix(strings.TrimSpace(rest), ",")
		rest = strings.TrimSpace(rest)
		if !strings.HasPrefix(rest, "{ name:") || !strings.HasSuffix(rest, "}") {
			return Locator{}, fmt.Errorf("malformed role locator %q: missing name option", src)
		}

		rest = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(rest, "{ name:"), "}"))

		name, trailing, err := takeQuoted(rest)
		if err != nil || strings.TrimSpace(trailing) != "" {
			return Locator{}, fmt.Errorf("malformed role locator %q: bad name argument", src)
		}

		return Locator{Strategy: StrategyRole, Role: role, Value: name}, nil

	case strings.HasPrefix(src, "getByLabel("):
		return parseSingleArg(src, "getByLabel", StrategyLabel)
	case strings.HasPrefix(src, "getByPlaceholder("):
		return parseSingleArg(src, "getByPlaceholder", StrategyPlaceholder)
	case strings.HasPrefix(src, "getByTestId("):
		return parseSingleArg(src, "getByTestId", StrategyTestID)
	case strings.HasPrefix(src, "getByText("):
		return parseSingleArg(src, "getByText", StrategyText)
	case strings.HasPrefix(src, "locator("):
		return parseSingleArg(src, "locator", StrategyCSS)
	}

	return Locator{}, fmt.Errorf("unknown locator expression: %q", src)
}

func parseSingleArg(src, fn string, strategy Strategy) (Locator, error) {
	inner, ok := stripCall(src, fn)
	if !ok {
		return Locator{}, fmt.Errorf("malformed locator expression: %q", src)
	}

	value, trailing, err := takeQuoted(inner)
	if err != nil || strings.TrimSpace(trailing) != "" {
		return Locator{}, fmt.Errorf("malformed locator expression %q: bad argument", src)
	}

	return Locator{Strategy: strategy, Value: value}, nil
}

// stripCall removes "fn(" and the closing ")" around the argument list.
func stripCall(src, fn string) (string, bool) {
	if !strings.HasPrefix(src, fn+"(") || !strings.HasSuffix(src, ")") {
		return "", false
	}

	return src[len(fn)+1 : len(src)-1], true
}

// takeQuoted consumes a leading single-quoted string, honoring backslash
// escapes, and returns its content (still escaped) plus the remainder.
func takeQuoted(s string) (string, string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '\'' {
		return "", "", fmt.Errorf("expected quoted string at %q", s)
	}

	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '\'':
			return s[1:i], s[i+1:], nil
		}
	}

	return "", "", fmt.Errorf("unterminated quoted string at %q", s)
}

// Escape makes a string safe to embed as a single-quoted argument in
// generated source: surrounding whitespace is trimmed, newlines collapse
// to single spaces, and backslashes and single quotes are escaped.
func Escape(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)

	return s
}
