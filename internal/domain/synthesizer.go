package domain

import (
	"fmt"
	"strings"
	"unicode"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

// Synthesize renders a deduplicated batch as a Playwright page-object
// class in TypeScript. It is a pure serialization of already-resolved
// data: one readonly field per element in fixed category order, a
// constructor wiring each field to its locator, an optional goto helper
// and optional per-category action helpers. Elements of the "other"
// category stay out of generated code; they exist only in metadata.
func Synthesize(batch m.ResolvedBatch, tmpl m.TemplateConfig, naming m.NamingConfig, pageName, url string) string {
	var b strings.Builder

	b.WriteString("import { Page, Locator } from '@playwright/test';\n\n")
	fmt.Fprintf(&b, "export class %s {\n", className(pageName))
	b.WriteString("  readonly page: Page;\n")

	elements := codegenElements(batch)
	for _, e := range elements {
		fmt.Fprintf(&b, "  readonly %s: Locator;\n", e.Identifier)
	}

	b.WriteString("\n  constructor(page: Page) {\n")
	b.WriteString("    this.page = page;\n")

	for _, e := range elements {
		fmt.Fprintf(&b, "    this.%s = page.%s;\n", e.Identifier, e.Expression)
	}

	b.WriteString("  }\n")

	if tmpl.Goto {
		b.WriteString("\n  async goto(): Promise<void> {\n")
		fmt.Fprintf(&b, "    await this.page.goto('%s');\n", m.Escape(url))
		b.WriteString("  }\n")
	}

	if tmpl.Helpers {
		for _, e := range elements {
			writeHelpers(&b, e, naming)
		}
	}

	b.WriteString("}\n")

	return b.String()
}

// codegenElements flattens the batch in generation order, skipping the
// metadata-only "other" category.
func codegenElements(batch m.ResolvedBatch) []m.ResolvedElement {
	var out []m.ResolvedElement

	for _, c := range m.Categories {
		if c == m.CategoryOther {
			continue
		}

		out = append(out, batch.ByCategory(c)...)
	}

	return out
}

func writeHelpers(b *strings.Builder, e m.ResolvedElement, naming m.NamingConfig) {
	stem := helperStem(e.Identifier, naming.Suffixes[e.Category])

	switch e.Category {
	case m.CategoryButton, m.CategoryLink:
		fmt.Fprintf(b, "\n  async click%s(): Promise<void> {\n    await this.%s.click();\n  }\n", stem, e.Identifier)
	case m.CategoryInput, m.CategoryTextarea:
		fmt.Fprintf(b, "\n  async fill%s(value: string): Promise<void> {\n    await this.%s.fill(value);\n  }\n", stem, e.Identifier)
	case m.CategorySelect:
		fmt.Fprintf(b, "\n  async select%s(value: string): Promise<void> {\n    await this.%s.selectOption(value);\n  }\n", stem, e.Identifier)
	case m.CategoryCheckbox:
		fmt.Fprintf(b, "\n  async check%s(): Promise<void> {\n    await this.%s.check();\n  }\n", stem, e.Identifier)
		fmt.Fprintf(b, "\n  async uncheck%s(): Promise<void> {\n    await this.%s.uncheck();\n  }\n", stem, e.Identifier)
	case m.CategoryRadio, m.CategoryHeading, m.CategoryOther:
		// No helper operations for these categories.
	}
}

// helperStem strips the category suffix from an identifier to build a
// helper method name, preserving any deduplication digits: loginButton
// -> Login, submitButton2 -> Submit2.
func helperStem(identifier, suffix string) string {
	digits := ""
	base := identifier

	for len(base) > 0 && unicode.IsDigit(rune(base[len(base)-1])) {
		digits = string(base[len(base)-1]) + digits
		base = base[:len(base)-1]
	}

	if suffix != "" && strings.HasSuffix(base, suffix) && len(base) > len(suffix) {
		base = strings.TrimSuffix(base, suffix)
	}

	return capitalize(base) + digits
}

// className derives the exported class name from the page name:
// checkout-flow -> CheckoutFlowPage.
func className(pageName string) string {
	var b strings.Builder
	for _, word := range splitWords(pageName) {
		b.WriteString(capitalize(strings.ToLower(word)))
	}

	if b.Len() == 0 {
		b.WriteString("Generated")
	}

	b.WriteString("Page")

	return b.String()
}
