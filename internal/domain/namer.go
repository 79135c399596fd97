package domain

import (
	"strings"
	"unicode"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// ResolveName derives the code-safe identifier for one descriptor. The
// base name comes from the first usable signal in fixed order:
// aria-label, label, placeholder, visible text (within the configured
// length), name attribute, id, test-id, then the unnamed<Category>
// placeholder. A signal is usable when it is present, non-blank and
// still yields at least one word after stripping. The category suffix
// from the naming config is always appended.
//
// Name selection runs independently of locator resolution; the two may
// pick different signals for the same element.
func ResolveName(d m.Descriptor, c m.Category, naming m.NamingConfig) string {
	base := ""

	for _, candidate := range nameCandidates(d, c, naming.MaxTextLength) {
		if candidate == nil {
			continue
		}

		folded := foldIdentifier(*candidate, naming.CamelCase)
		if folded != "" {
			base = folded
			break
		}
	}

	if base == "" {
		base = "unnamed" + capitalize(string(c))
	}

	identifier := base + naming.Suffixes[c]

	// A leading digit would not be a valid identifier in any target
	// language the artifact is emitted for.
	if identifier != "" && unicode.IsDigit(rune(identifier[0])) {
		identifier = "_" + identifier
	}

	return identifier
}

func nameCandidates(d m.Descriptor, _ m.Category, maxTextLength int) []*string {
	text := d.Text
	if text != nil && len([]rune(strings.TrimSpace(*text))) > maxTextLength {
		text = nil
	}

	return []*string{
		d.AriaLabel,
		d.Label,
		d.Placeholder,
		text,
		d.Name,
		d.ID,
		d.TestID,
	}
}

// foldIdentifier turns arbitrary text into an identifier fragment.
// Non-alphanumeric runes act as word breaks and are stripped. With
// camel folding everything is lowercased; a break that contains
// punctuation capitalizes the next word (submit-btn -> submitBtn),
// while plain whitespace joins words directly (Log in -> login), so
// natural-language labels stay readable and code-ish sources camelize.
// Without camel folding the words keep their original case and are
// simply concatenated.
func foldIdentifier(s string, camel bool) string {
	if !camel {
		return strings.Join(splitWords(s), "")
	}

	var b strings.Builder

	pendingCap := false
	started := false

	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			folded := unicode.ToLower(r)
			if pendingCap && started {
				folded = unicode.ToUpper(folded)
			}

			b.WriteRune(folded)

			started = true
			pendingCap = false
		case unicode.IsSpace(r):
			// Plain word join.
		default:
			pendingCap = true
		}
	}

	return b.String()
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
