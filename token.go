package wikiwords

import (
	"iter"
	"regexp"
	"strings"
)

// wordPattern matches one maximal run of word characters: Unicode letters,
// digits, and underscore. Go's \w is ASCII-only, so the classes are spelled
// out.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// NormalizeText prepares text for tokenization: apostrophes are stripped and
// the text is lowercased, so "Don't" tokenizes as "dont".
func NormalizeText(text string) string {
	return strings.ToLower(strings.ReplaceAll(text, "'", ""))
}

// Tokenize splits text into normalized word tokens: every maximal run of
// word characters becomes one token, in order of appearance, duplicates
// preserved. Non-word characters delimit tokens and are discarded. Text with
// no word characters yields an empty sequence.
//
// The sequence is lazy and finite; the caller is expected to consume it in a
// single forward pass.
//
// Known limitation: logographic scripts without inter-word delimiters (e.g.
// Chinese, Japanese) are not segmented into words. Each unbroken run of CJK
// characters comes back as a single token.
func Tokenize(text string) iter.Seq[string] {
	text = NormalizeText(text)
	return func(yield func(string) bool) {
		for start := 0; start < len(text); {
			loc := wordPattern.FindStringIndex(text[start:])
			if loc == nil {
				return
			}
			if !yield(text[start+loc[0] : start+loc[1]]) {
				return
			}
			start += loc[1]
		}
	}
}

// TokenizeAll tokenizes each fragment in order and concatenates the results
// into a single lazy sequence.
func TokenizeAll(fragments []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, fragment := range fragments {
			for token := range Tokenize(fragment) {
				if !yield(token) {
					return
				}
			}
		}
	}
}
