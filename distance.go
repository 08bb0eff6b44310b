package wikiwords

import "math"

// Distance returns the Euclidean distance between two distributions, where
// every distinct word across both vocabularies is one axis and a word absent
// from a distribution contributes zero on its axis.
//
// Distance(d, d) == 0, Distance(a, b) == Distance(b, a), and the result is
// never negative. Two empty distributions are at distance 0; an empty
// distribution is at distance equal to the Euclidean norm of the other.
func Distance(a, b *Distribution) float64 {
	var sum float64
	for _, word := range a.words {
		diff := a.values[word] - b.values[word]
		sum += diff * diff
	}
	// Words only b has contribute their full value.
	for _, word := range b.words {
		if _, ok := a.values[word]; ok {
			continue
		}
		v := b.values[word]
		sum += v * v
	}
	return math.Sqrt(sum)
}
