// Package wikiwords collects and compares word frequencies from Wikipedia
// pages. Each page is reduced to a frequency distribution over its words;
// treating distributions as vectors, the Euclidean distance between them
// quantifies how dissimilar two pages are, which in turn supports judging
// which of two pages is closer to a third.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package wikiwords
