package ktorrent

// Extractor applies selector rules to HTML pages.
type Extractor interface {
	// Extract parses html and applies rule to it.
	// Values are returned in document order; duplicates are preserved.
	// Strict kinds fail with EMISSINGNODE or EMISSINGATTR and return no values.
	Extract(html string, rule Rule) ([]string, error)
}
