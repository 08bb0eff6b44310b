package wikiwords

// Profile pairs a page name with its frequency distribution. Profiles are
// built fresh for each comparison run and never mutated afterwards.
type Profile struct {
	Name string
	Dist *Distribution
}

// Judgment states which of two candidate profiles is closer to an anchor.
type Judgment struct {
	Anchor  *Profile
	Closer  *Profile
	Farther *Profile

	// Distances from the anchor, for reporting.
	CloserDistance  float64
	FartherDistance float64
}

// Judge compares both candidates against the anchor and designates the
// closer one. On exactly equal distances the first-listed candidate wins, so
// the outcome is deterministic but order-dependent. Judge does not mutate
// its inputs.
func Judge(anchor, candidate1, candidate2 *Profile) Judgment {
	d1 := Distance(anchor.Dist, candidate1.Dist)
	d2 := Distance(anchor.Dist, candidate2.Dist)
	if d1 <= d2 {
		return Judgment{
			Anchor:          anchor,
			Closer:          candidate1,
			Farther:         candidate2,
			CloserDistance:  d1,
			FartherDistance: d2,
		}
	}
	return Judgment{
		Anchor:          anchor,
		Closer:          candidate2,
		Farther:         candidate1,
		CloserDistance:  d2,
		FartherDistance: d1,
	}
}
