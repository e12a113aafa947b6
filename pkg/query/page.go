package query

// DefaultLimit is the number of results shown before truncating.
const DefaultLimit = 10

// Page returns the first limit items and how many were left out.
// A limit of zero or less shows everything.
func Page[T any](items []T, limit int) (shown []T, remaining int) {
	if limit <= 0 || len(items) <= limit {
		return items, 0
	}
	return items[:limit], len(items) - limit
}
