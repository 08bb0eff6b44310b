// Package goquery provides a goquery-based implementation of
// wikiwords.Extractor for scope-aware text extraction from HTML.
package goquery

import (
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikiwords"
	"golang.org/x/net/html"
)

// Ensure Extractor implements wikiwords.Extractor at compile time.
var _ wikiwords.Extractor = (*Extractor)(nil)

// Extractor extracts word tokens from HTML markup under a structural scope.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses markup as required by scope and returns the token stream
// over the selected text fragments in document order.
//
// ScopeRaw skips parsing entirely and tokenizes the markup string, so tag
// names and attribute text become tokens too. ScopeDocument visits every
// text node, script and style contents included. ScopeBody restricts to the
// body element; ScopeParagraph restricts to p elements, and a document with
// no paragraphs yields an empty sequence.
func (e *Extractor) Extract(markup string, scope wikiwords.Scope) (iter.Seq[string], error) {
	if scope == wikiwords.ScopeRaw {
		return wikiwords.Tokenize(markup), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, wikiwords.Errorf(wikiwords.EINVALID, "failed to parse HTML: %v", err)
	}

	var fragments []string
	switch scope {
	case wikiwords.ScopeDocument:
		fragments = textFragments(doc.Selection)
	case wikiwords.ScopeBody:
		if !hasBodyTag(markup) {
			return nil, wikiwords.Errorf(wikiwords.ESTRUCTURE, "markup has no body element")
		}
		fragments = textFragments(doc.Find("body"))
	case wikiwords.ScopeParagraph:
		doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
			fragments = append(fragments, textFragments(sel)...)
		})
	default:
		return nil, wikiwords.Errorf(wikiwords.EINVALID, "unknown scope %d", scope)
	}

	return wikiwords.TokenizeAll(fragments), nil
}

// textFragments collects the text nodes under the selection in document
// order.
func textFragments(sel *goquery.Selection) []string {
	var fragments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			fragments = append(fragments, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, node := range sel.Nodes {
		walk(node)
	}
	return fragments
}

// hasBodyTag reports whether the markup contains an explicit body start tag.
// html.Parse synthesizes a body element for every document it parses, so the
// parsed tree cannot distinguish a real body element from a synthesized one;
// the raw markup is scanned instead.
func hasBodyTag(markup string) bool {
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "body" {
				return true
			}
		}
	}
}
