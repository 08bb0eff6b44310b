package wikiwords

import (
	"bytes"
	"encoding/json"
	"iter"
	"sort"
)

// Distribution maps words to non-negative values: occurrence counts after
// Count, fractions of the total after Normalize. Words are also recorded in
// first-seen order so that ranking ties resolve deterministically.
//
// The zero value is usable; NewDistribution is the conventional constructor.
type Distribution struct {
	values map[string]float64
	words  []string
}

// NewDistribution returns an empty distribution.
func NewDistribution() *Distribution {
	return &Distribution{values: make(map[string]float64)}
}

// Count tallies occurrences of each token in the sequence, consuming it in a
// single pass. An empty sequence yields an empty distribution.
func Count(tokens iter.Seq[string]) *Distribution {
	d := NewDistribution()
	for token := range tokens {
		d.Add(token, 1)
	}
	return d
}

// Add increases the value for word by n, registering the word on first use.
func (d *Distribution) Add(word string, n float64) {
	if d.values == nil {
		d.values = make(map[string]float64)
	}
	if _, ok := d.values[word]; !ok {
		d.words = append(d.words, word)
	}
	d.values[word] += n
}

// Value returns the value recorded for word, or 0 if the word is absent.
func (d *Distribution) Value(word string) float64 {
	return d.values[word]
}

// Len returns the number of distinct words.
func (d *Distribution) Len() int {
	return len(d.words)
}

// Words returns the distinct words in first-seen order. The returned slice
// is shared with the distribution; callers must not modify it.
func (d *Distribution) Words() []string {
	return d.words
}

// Total returns the sum of all values.
func (d *Distribution) Total() float64 {
	var total float64
	for _, v := range d.values {
		total += v
	}
	return total
}

// Normalize returns a new distribution with every value divided by the
// total, so the values sum to 1. Word order is preserved. Normalizing an
// empty distribution returns EINVALID rather than dividing by zero.
func (d *Distribution) Normalize() (*Distribution, error) {
	total := d.Total()
	if total == 0 {
		return nil, Errorf(EINVALID, "cannot normalize empty distribution")
	}
	n := NewDistribution()
	for _, word := range d.words {
		n.Add(word, d.values[word]/total)
	}
	return n, nil
}

// WordValue pairs a word with its value for ranked display.
type WordValue struct {
	Word  string
	Value float64
}

// Top returns the k highest-valued words in descending value order. Equal
// values keep first-seen order. A k larger than the vocabulary returns the
// whole vocabulary.
func (d *Distribution) Top(k int) []WordValue {
	if k < 0 {
		k = 0
	}
	ranked := make([]WordValue, 0, len(d.words))
	for _, word := range d.words {
		ranked = append(ranked, WordValue{Word: word, Value: d.values[word]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// MarshalJSON encodes the distribution as a flat JSON object mapping words
// to values, in first-seen word order.
func (d *Distribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, word := range d.words {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(word)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(d.values[word])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
