package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

func batchOf(identifiers ...string) m.ResolvedBatch {
	batch := make(m.ResolvedBatch, 0, len(identifiers))
	for _, id := range identifiers {
		batch = append(batch, m.ResolvedElement{
			Identifier: id,
			Category:   m.CategoryButton,
			Expression: "locator('button')",
		})
	}

	return batch
}

func identifiers(batch m.ResolvedBatch) []string {
	out := make([]string, len(batch))
	for i, e := range batch {
		out[i] = e.Identifier
	}

	return out
}

func TestDeduplicate(t *testing.T) {
	t.Run("first occurrence keeps the plain name", func(t *testing.T) {
		out := Deduplicate(batchOf("submitButton", "submitButton"))

		assert.Equal(t, []string{"submitButton", "submitButton2"}, identifiers(out))
	})

	t.Run("probing continues past taken suffixes", func(t *testing.T) {
		out := Deduplicate(batchOf("saveButton", "saveButton2", "saveButton"))

		assert.Equal(t, []string{"saveButton", "saveButton2", "saveButton3"}, identifiers(out))
	})

	t.Run("suffix counter starts at 2 per name", func(t *testing.T) {
		out := Deduplicate(batchOf("a", "b", "a", "a", "b"))

		assert.Equal(t, []string{"a", "b", "a2", "a3", "b2"}, identifiers(out))
	})

	t.Run("all identifiers pairwise distinct", func(t *testing.T) {
		out := Deduplicate(batchOf("x", "x", "x2", "x", "x3", "x"))

		seen := map[string]bool{}
		for _, id := range identifiers(out) {
			require.False(t, seen[id], "duplicate %s", id)
			seen[id] = true
		}
	})

	t.Run("input order decides the winner", func(t *testing.T) {
		first := Deduplicate(batchOf("okButton", "okButton"))
		require.Equal(t, "okButton", first[0].Identifier)

		// The element that comes first always keeps the unsuffixed name.
		assert.Equal(t, "okButton2", first[1].Identifier)
	})

	t.Run("does not mutate the input batch", func(t *testing.T) {
		in := batchOf("dupButton", "dupButton")
		_ = Deduplicate(in)

		assert.Equal(t, "dupButton", in[1].Identifier)
	})
}
