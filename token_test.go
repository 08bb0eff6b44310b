package wikiwords_test

import (
	"slices"
	"testing"

	"github.com/fwojciec/wikiwords"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	t.Run("strips apostrophes and lowercases", func(t *testing.T) {
		t.Parallel()

		got := slices.Collect(wikiwords.Tokenize("Don't stop"))
		assert.Equal(t, []string{"dont", "stop"}, got)
	})

	t.Run("empty text yields empty sequence", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, slices.Collect(wikiwords.Tokenize("")))
	})

	t.Run("no word characters yields empty sequence", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, slices.Collect(wikiwords.Tokenize("... !!! ---")))
	})

	t.Run("case folding makes duplicates", func(t *testing.T) {
		t.Parallel()

		got := slices.Collect(wikiwords.Tokenize("Word WORD"))
		assert.Equal(t, []string{"word", "word"}, got)
	})

	t.Run("preserves duplicates in order", func(t *testing.T) {
		t.Parallel()

		got := slices.Collect(wikiwords.Tokenize("cats like cats"))
		assert.Equal(t, []string{"cats", "like", "cats"}, got)
	})

	t.Run("punctuation delimits tokens", func(t *testing.T) {
		t.Parallel()

		got := slices.Collect(wikiwords.Tokenize("one,two;three.four"))
		assert.Equal(t, []string{"one", "two", "three", "four"}, got)
	})

	t.Run("digits and underscore are word characters", func(t *testing.T) {
		t.Parallel()

		got := slices.Collect(wikiwords.Tokenize("snake_case route66"))
		assert.Equal(t, []string{"snake_case", "route66"}, got)
	})

	t.Run("unicode letters form tokens", func(t *testing.T) {
		t.Parallel()

		got := slices.Collect(wikiwords.Tokenize("Zürich café"))
		assert.Equal(t, []string{"zürich", "café"}, got)
	})

	t.Run("CJK runs are single tokens", func(t *testing.T) {
		t.Parallel()

		// Logographic scripts are not word-segmented; a run of CJK
		// characters is one token.
		got := slices.Collect(wikiwords.Tokenize("日本語 text"))
		assert.Equal(t, []string{"日本語", "text"}, got)
	})

	t.Run("consumable in a partial forward pass", func(t *testing.T) {
		t.Parallel()

		var got []string
		for token := range wikiwords.Tokenize("one two three") {
			got = append(got, token)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []string{"one", "two"}, got)
	})
}

func TestTokenizeAll(t *testing.T) {
	t.Parallel()

	t.Run("concatenates fragments in order", func(t *testing.T) {
		t.Parallel()

		got := slices.Collect(wikiwords.TokenizeAll([]string{"Cats like", "", "cats!"}))
		assert.Equal(t, []string{"cats", "like", "cats"}, got)
	})

	t.Run("no fragments yields empty sequence", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, slices.Collect(wikiwords.TokenizeAll(nil)))
	})
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dont stop", wikiwords.NormalizeText("Don't Stop"))
}
