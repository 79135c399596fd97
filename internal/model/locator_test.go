package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	t.Run("escapes quotes and collapses newlines", func(t *testing.T) {
		escaped := Escape("  Log\nin 'now'\r\nplease  ")

		assert.NotContains(t, escaped, "\n")
		assert.NotContains(t, escaped, "\r")
		assert.Equal(t, `Log in \'now\' please`, escaped)
	})

	t.Run("doubles backslashes before escaping quotes", func(t *testing.T) {
		assert.Equal(t, `a\\b\'c`, Escape(`a\b'c`))
	})

	t.Run("no raw single quote survives", func(t *testing.T) {
		escaped := Escape("it's a 'test'\nline")
		for i := 0; i < len(escaped); i++ {
			if escaped[i] == '\'' {
				require.Greater(t, i, 0)
				assert.Equal(t, byte('\\'), escaped[i-1])
			}
		}
	})
}

func TestLocatorSource(t *testing.T) {
	cases := []struct {
		name    string
		locator Locator
		want    string
	}{
		{"role", NewRoleLocator("button", "Log in"), "getByRole('button', { name: 'Log in' })"},
		{"label", NewLocator(StrategyLabel, "Email address"), "getByLabel('Email address')"},
		{"placeholder", NewLocator(StrategyPlaceholder, "you@example.com"), "getByPlaceholder('you@example.com')"},
		{"testid", NewLocator(StrategyTestID, "submit-btn"), "getByTestId('submit-btn')"},
		{"text", NewLocator(StrategyText, "Forgot password?"), "getByText('Forgot password?')"},
		{"css", NewLocator(StrategyCSS, "#login"), "locator('#login')"},
		{"escaped quote", NewLocator(StrategyText, "it's here"), `getByText('it\'s here')`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.locator.Source())
		})
	}
}

func TestParseLocatorRoundTrip(t *testing.T) {
	locators := []Locator{
		NewRoleLocator("button", "Log in"),
		NewRoleLocator("textbox", "it's 'quoted'"),
		NewLocator(StrategyLabel, "Email"),
		NewLocator(StrategyPlaceholder, "Search…"),
		NewLocator(StrategyTestID, "nav-home"),
		NewLocator(StrategyText, "Read\nmore"),
		NewLocator(StrategyCSS, `[name="email"]`),
	}

	for _, loc := range locators {
		t.Run(string(loc.Strategy)+"/"+loc.Value, func(t *testing.T) {
			parsed, err := ParseLocator(loc.Source())
			require.NoError(t, err)
			assert.Equal(t, loc, parsed)
			assert.Equal(t, loc.Source(), parsed.Source())
		})
	}
}

func TestParseLocatorRejectsMalformed(t *testing.T) {
	for _, src := range []string{
		"",
		"getByMagic('x')",
		"getByLabel('unterminated",
		"getByRole('button')",
		"locator('a') extra",
	} {
		t.Run(src, func(t *testing.T) {
			_, err := ParseLocator(src)
			require.Error(t, err)
		})
	}
}

func TestDefaultPrioritiesEndWithTotalFallback(t *testing.T) {
	require.NotEmpty(t, DefaultPriorities)
	assert.Equal(t, StrategyCSS, DefaultPriorities[len(DefaultPriorities)-1])
}
