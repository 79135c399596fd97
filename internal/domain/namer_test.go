package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

func defaultNaming() m.NamingConfig {
	return m.DefaultConfig().Naming
}

func TestResolveNameSignalOrder(t *testing.T) {
	naming := defaultNaming()

	t.Run("aria-label first", func(t *testing.T) {
		d := m.Descriptor{Tag: "button", AriaLabel: m.String("Log in"), Label: m.String("Submit form")}

		assert.Equal(t, "loginButton", ResolveName(d, m.CategoryButton, naming))
	})

	t.Run("label before placeholder", func(t *testing.T) {
		d := m.Descriptor{Tag: "input", Label: m.String("Email address"), Placeholder: m.String("you@example.com")}

		assert.Equal(t, "emailaddressInput", ResolveName(d, m.CategoryInput, naming))
	})

	t.Run("text only within configured length", func(t *testing.T) {
		long := strings.Repeat("word ", 20)
		d := m.Descriptor{Tag: "a", Text: m.String(long), ID: m.String("promo-link")}

		assert.Equal(t, "promoLinkLink", ResolveName(d, m.CategoryLink, naming))
	})

	t.Run("name attribute before id", func(t *testing.T) {
		d := m.Descriptor{Tag: "input", Name: m.String("user_email"), ID: m.String("field-3")}

		assert.Equal(t, "userEmailInput", ResolveName(d, m.CategoryInput, naming))
	})

	t.Run("test-id as the last real signal", func(t *testing.T) {
		d := m.Descriptor{Tag: "input", TestID: m.String("search-box")}

		assert.Equal(t, "searchBoxInput", ResolveName(d, m.CategoryInput, naming))
	})
}

func TestResolveNameUnnamedFallback(t *testing.T) {
	naming := defaultNaming()

	d := m.Descriptor{Tag: "div"}
	assert.Equal(t, "unnamedOtherElement", ResolveName(d, m.CategoryOther, naming))

	// Blank signals fall through to the synthetic placeholder.
	blank := m.Descriptor{Tag: "div", AriaLabel: m.String("   "), ID: m.String("---")}
	assert.Equal(t, "unnamedOtherElement", ResolveName(blank, m.CategoryOther, naming))
}

func TestResolveNameFolding(t *testing.T) {
	naming := defaultNaming()

	t.Run("whitespace joins words plainly", func(t *testing.T) {
		d := m.Descriptor{Tag: "button", AriaLabel: m.String("Log in")}

		assert.Equal(t, "loginButton", ResolveName(d, m.CategoryButton, naming))
	})

	t.Run("punctuation camelizes", func(t *testing.T) {
		d := m.Descriptor{Tag: "button", TestID: m.String("submit-btn")}

		assert.Equal(t, "submitBtnButton", ResolveName(d, m.CategoryButton, naming))
	})

	t.Run("case folding disabled keeps raw case", func(t *testing.T) {
		raw := naming
		raw.CamelCase = false
		d := m.Descriptor{Tag: "button", AriaLabel: m.String("Log In!")}

		assert.Equal(t, "LogInButton", ResolveName(d, m.CategoryButton, raw))
	})

	t.Run("leading digit gets a safe prefix", func(t *testing.T) {
		d := m.Descriptor{Tag: "a", Text: m.String("24 hours")}

		name := ResolveName(d, m.CategoryLink, naming)
		assert.Equal(t, "_24hoursLink", name)
	})
}

func TestResolveNameSuffixPerCategory(t *testing.T) {
	naming := defaultNaming()
	d := m.Descriptor{Tag: "x", AriaLabel: m.String("save")}

	for category, want := range map[m.Category]string{
		m.CategoryButton:   "saveButton",
		m.CategoryInput:    "saveInput",
		m.CategoryLink:     "saveLink",
		m.CategorySelect:   "saveSelect",
		m.CategoryCheckbox: "saveCheckbox",
		m.CategoryRadio:    "saveRadio",
		m.CategoryTextarea: "saveTextarea",
		m.CategoryHeading:  "saveHeading",
		m.CategoryOther:    "saveElement",
	} {
		assert.Equal(t, want, ResolveName(d, category, naming), "category %s", category)
	}
}
