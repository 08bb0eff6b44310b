package wikiwords

import (
	"fmt"
	"strings"
)

// FormatTop formats the k most frequent words of a distribution as ranked
// lines under a heading naming the extraction method. Values print as
// integers for counts and as decimals for fractions.
func FormatTop(method string, dist *Distribution, k int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Top %d most common words using %s:\n", k, method)
	for i, wv := range dist.Top(k) {
		fmt.Fprintf(&b, "%d\t%s, %g\n", i+1, wv.Word, wv.Value)
	}
	return b.String()
}

// FormatJudgment renders a judgment as a single human-readable sentence.
func FormatJudgment(j Judgment) string {
	return fmt.Sprintf("%s is closer to %s than to %s", j.Anchor.Name, j.Closer.Name, j.Farther.Name)
}
