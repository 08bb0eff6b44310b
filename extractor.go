package wikiwords

import "iter"

// Scope selects the structural subset of a document's text used for
// extraction.
type Scope int

const (
	// ScopeRaw tokenizes the markup string directly, without structural
	// parsing. Tag names and attribute text become tokens too.
	ScopeRaw Scope = iota

	// ScopeDocument uses every text fragment in the parsed document.
	ScopeDocument

	// ScopeBody uses text fragments inside the body element only.
	ScopeBody

	// ScopeParagraph uses text fragments inside paragraph elements only.
	ScopeParagraph
)

// Scopes lists all scopes in display order.
func Scopes() []Scope {
	return []Scope{ScopeRaw, ScopeDocument, ScopeBody, ScopeParagraph}
}

// String returns the CLI name of the scope.
func (s Scope) String() string {
	switch s {
	case ScopeRaw:
		return "raw"
	case ScopeDocument:
		return "document"
	case ScopeBody:
		return "body"
	case ScopeParagraph:
		return "paragraph"
	}
	return "unknown"
}

// ParseScope maps a scope name to its Scope. Unknown names return EINVALID.
func ParseScope(name string) (Scope, error) {
	switch name {
	case "raw":
		return ScopeRaw, nil
	case "document":
		return ScopeDocument, nil
	case "body":
		return ScopeBody, nil
	case "paragraph":
		return ScopeParagraph, nil
	}
	return 0, Errorf(EINVALID, "unknown scope %q", name)
}

// Extractor produces the token stream for a document under a structural
// scope. Implementations delegate structural parsing to an HTML parser and
// perform no other side effects.
type Extractor interface {
	// Extract parses markup as required by scope and returns a lazy token
	// sequence over the selected text fragments, in document order.
	// ScopeBody returns ESTRUCTURE when the markup has no body element;
	// ScopeParagraph on a document without paragraphs yields an empty
	// sequence.
	Extract(markup string, scope Scope) (iter.Seq[string], error)
}
