package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

func TestResolveLocatorTotality(t *testing.T) {
	t.Run("descriptor with every optional field absent", func(t *testing.T) {
		for _, category := range m.Categories {
			loc, err := ResolveLocator(m.Descriptor{Tag: "div"}, category, m.DefaultPriorities)
			require.NoError(t, err, "category %s", category)
			assert.NotEmpty(t, loc.Source(), "category %s", category)
		}
	})

	t.Run("bare tag fallback when nothing else applies", func(t *testing.T) {
		loc, err := ResolveLocator(m.Descriptor{Tag: "section"}, m.CategoryOther, m.DefaultPriorities)
		require.NoError(t, err)
		assert.Equal(t, m.StrategyCSS, loc.Strategy)
		assert.Equal(t, "locator('section')", loc.Source())
	})

	t.Run("chain stays total when configured list has no fallback", func(t *testing.T) {
		loc, err := ResolveLocator(m.Descriptor{Tag: "div"}, m.CategoryOther, []m.Strategy{m.StrategyLabel})
		require.NoError(t, err)
		assert.Equal(t, "locator('div')", loc.Source())
	})

	t.Run("empty priority list fails fast", func(t *testing.T) {
		_, err := ResolveLocator(m.Descriptor{Tag: "div"}, m.CategoryButton, nil)
		require.ErrorIs(t, err, m.ErrEmptyPriorities)
	})
}

func TestResolveLocatorRoleStrategy(t *testing.T) {
	t.Run("aria-label wins over visible text", func(t *testing.T) {
		d := m.Descriptor{Tag: "button", AriaLabel: m.String("Log in"), Text: m.String("Sign in")}

		loc, err := ResolveLocator(d, m.CategoryButton, m.DefaultPriorities)
		require.NoError(t, err)
		assert.Equal(t, m.StrategyRole, loc.Strategy)
		assert.Equal(t, "getByRole('button', { name: 'Log in' })", loc.Source())
	})

	t.Run("visible text usable for button, link and heading only", func(t *testing.T) {
		d := m.Descriptor{Tag: "input", Text: m.String("Search")}

		loc, err := ResolveLocator(d, m.CategoryInput, m.DefaultPriorities)
		require.NoError(t, err)
		assert.NotEqual(t, m.StrategyRole, loc.Strategy)

		d.Tag = "button"
		loc, err = ResolveLocator(d, m.CategoryButton, m.DefaultPriorities)
		require.NoError(t, err)
		assert.Equal(t, m.StrategyRole, loc.Strategy)
	})

	t.Run("long text disqualifies the role strategy", func(t *testing.T) {
		long := strings.Repeat("x", 51)
		d := m.Descriptor{Tag: "button", Text: m.String(long)}

		loc, err := ResolveLocator(d, m.CategoryButton, m.DefaultPriorities)
		require.NoError(t, err)
		assert.Equal(t, m.StrategyCSS, loc.Strategy)
	})

	t.Run("other category never maps to a role", func(t *testing.T) {
		d := m.Descriptor{Tag: "div", AriaLabel: m.String("Widget")}

		loc, err := ResolveLocator(d, m.CategoryOther, m.DefaultPriorities)
		require.NoError(t, err)
		assert.NotEqual(t, m.StrategyRole, loc.Strategy)
	})
}

func TestResolveLocatorPriorityOrdering(t *testing.T) {
	// Satisfies both the role and label strategies; order decides.
	d := m.Descriptor{Tag: "input", AriaLabel: m.String("Email"), Label: m.String("Email address")}

	loc, err := ResolveLocator(d, m.CategoryInput, []m.Strategy{m.StrategyRole, m.StrategyLabel, m.StrategyCSS})
	require.NoError(t, err)
	assert.Equal(t, m.StrategyRole, loc.Strategy)

	loc, err = ResolveLocator(d, m.CategoryInput, []m.Strategy{m.StrategyLabel, m.StrategyRole, m.StrategyCSS})
	require.NoError(t, err)
	assert.Equal(t, m.StrategyLabel, loc.Strategy)
	assert.Equal(t, "getByLabel('Email address')", loc.Source())
}

func TestResolveLocatorMiddleStrategies(t *testing.T) {
	cases := []struct {
		name string
		d    m.Descriptor
		want string
	}{
		{"placeholder", m.Descriptor{Tag: "input", Placeholder: m.String("you@example.com")}, "getByPlaceholder('you@example.com')"},
		{"testid", m.Descriptor{Tag: "input", TestID: m.String("email-field")}, "getByTestId('email-field')"},
		{"text on link", m.Descriptor{Tag: "a", Text: m.String("Forgot password?")}, "getByRole('link', { name: 'Forgot password?' })"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			category := m.CategoryInput
			if tc.d.Tag == "a" {
				category = m.CategoryLink
			}

			loc, err := ResolveLocator(tc.d, category, m.DefaultPriorities)
			require.NoError(t, err)
			assert.Equal(t, tc.want, loc.Source())
		})
	}
}

func TestResolveLocatorCSSFallbackSubOrder(t *testing.T) {
	d := m.Descriptor{
		Tag:   "input",
		ID:    m.String("email"),
		Name:  m.String("user_email"),
		Class: m.String("form-control wide"),
	}

	priorities := []m.Strategy{m.StrategyCSS}

	loc, err := ResolveLocator(d, m.CategoryInput, priorities)
	require.NoError(t, err)
	assert.Equal(t, "locator('#email')", loc.Source())

	d.ID = nil
	loc, err = ResolveLocator(d, m.CategoryInput, priorities)
	require.NoError(t, err)
	assert.Equal(t, `locator('input[name="user_email"]')`, loc.Source())

	d.Name = nil
	loc, err = ResolveLocator(d, m.CategoryInput, priorities)
	require.NoError(t, err)
	assert.Equal(t, "locator('.form-control')", loc.Source())

	d.Class = nil
	loc, err = ResolveLocator(d, m.CategoryInput, priorities)
	require.NoError(t, err)
	assert.Equal(t, "locator('input')", loc.Source())
}

func TestResolveLocatorEscapesArguments(t *testing.T) {
	d := m.Descriptor{Tag: "button", Text: m.String("It's\nfine")}

	loc, err := ResolveLocator(d, m.CategoryButton, m.DefaultPriorities)
	require.NoError(t, err)
	assert.NotContains(t, loc.Source(), "\n")
	assert.Equal(t, `getByRole('button', { name: 'It\'s fine' })`, loc.Source())
}
