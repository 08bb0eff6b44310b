package wikiwords_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/wikiwords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	t.Parallel()

	t.Run("tallies occurrences", func(t *testing.T) {
		t.Parallel()

		d := wikiwords.Count(wikiwords.Tokenize("cats like cats"))

		assert.Equal(t, 2, d.Len())
		assert.Equal(t, 2.0, d.Value("cats"))
		assert.Equal(t, 1.0, d.Value("like"))
		assert.Equal(t, 3.0, d.Total())
	})

	t.Run("unseen words have value zero", func(t *testing.T) {
		t.Parallel()

		d := wikiwords.Count(wikiwords.Tokenize("cats"))
		assert.Zero(t, d.Value("dogs"))
	})

	t.Run("empty sequence yields empty distribution", func(t *testing.T) {
		t.Parallel()

		d := wikiwords.Count(wikiwords.Tokenize(""))
		assert.Zero(t, d.Len())
		assert.Empty(t, d.Words())
	})

	t.Run("records words in first-seen order", func(t *testing.T) {
		t.Parallel()

		d := wikiwords.Count(wikiwords.Tokenize("b a c a b"))
		assert.Equal(t, []string{"b", "a", "c"}, d.Words())
	})
}

func TestDistribution_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("values sum to one", func(t *testing.T) {
		t.Parallel()

		d := wikiwords.Count(wikiwords.Tokenize("a a a b c c d e f g"))
		n, err := d.Normalize()
		require.NoError(t, err)

		var sum float64
		for _, word := range n.Words() {
			sum += n.Value(word)
		}
		assert.InDelta(t, 1.0, sum, 1e-9*float64(n.Len()))
	})

	t.Run("divides each count by the total", func(t *testing.T) {
		t.Parallel()

		d := wikiwords.Count(wikiwords.Tokenize("cats like cats"))
		n, err := d.Normalize()
		require.NoError(t, err)

		assert.InDelta(t, 2.0/3.0, n.Value("cats"), 1e-9)
		assert.InDelta(t, 1.0/3.0, n.Value("like"), 1e-9)
	})

	t.Run("does not mutate the original", func(t *testing.T) {
		t.Parallel()

		d := wikiwords.Count(wikiwords.Tokenize("cats like cats"))
		_, err := d.Normalize()
		require.NoError(t, err)

		assert.Equal(t, 2.0, d.Value("cats"))
	})

	t.Run("preserves word order", func(t *testing.T) {
		t.Parallel()

		d := wikiwords.Count(wikiwords.Tokenize("b a c"))
		n, err := d.Normalize()
		require.NoError(t, err)

		assert.Equal(t, []string{"b", "a", "c"}, n.Words())
	})

	t.Run("empty distribution is an error", func(t *testing.T) {
		t.Parallel()

		d := wikiwords.NewDistribution()
		_, err := d.Normalize()

		require.Error(t, err)
		assert.Equal(t, wikiwords.EINVALID, wikiwords.ErrorCode(err))
	})
}

func TestDistribution_Top(t *testing.T) {
	t.Parallel()

	t.Run("ranks by value descending", func(t *testing.T) {
		t.Parallel()

		d := wikiwords.Count(wikiwords.Tokenize("b a a c c c"))
		top := d.Top(3)

		require.Len(t, top, 3)
		assert.Equal(t, wikiwords.WordValue{Word: "c", Value: 3}, top[0])
		assert.Equal(t, wikiwords.WordValue{Word: "a", Value: 2}, top[1])
		assert.Equal(t, wikiwords.WordValue{Word: "b", Value: 1}, top[2])
	})

	t.Run("truncates to k", func(t *testing.T) {
		t.Parallel()

		d := wikiwords.Count(wikiwords.Tokenize("a b c d e"))
		assert.Len(t, d.Top(2), 2)
	})

	t.Run("k beyond vocabulary returns everything", func(t *testing.T) {
		t.Parallel()

		d := wikiwords.Count(wikiwords.Tokenize("a b"))
		assert.Len(t, d.Top(10), 2)
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		t.Parallel()

		d := wikiwords.Count(wikiwords.Tokenize("zebra apple mango"))
		top := d.Top(3)

		require.Len(t, top, 3)
		assert.Equal(t, "zebra", top[0].Word)
		assert.Equal(t, "apple", top[1].Word)
		assert.Equal(t, "mango", top[2].Word)
	})
}

func TestDistribution_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("flat object in first-seen order", func(t *testing.T) {
		t.Parallel()

		d := wikiwords.Count(wikiwords.Tokenize("cats like cats"))
		data, err := json.Marshal(d)
		require.NoError(t, err)

		assert.JSONEq(t, `{"cats": 2, "like": 1}`, string(data))
		assert.Equal(t, `{"cats":2,"like":1}`, string(data))
	})

	t.Run("empty distribution marshals to empty object", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(wikiwords.NewDistribution())
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})
}
