package t2e

// Extractor pulls the ordered list of enum items out of raw input.
type Extractor interface {
	// Extract returns the items found in input, in input order.
	// Duplicates and empty strings are preserved.
	// Returns EMALFORMED or EMISSINGATTR if the input cannot be scanned,
	// in which case no items are returned.
	Extract(input string) ([]string, error)
}
