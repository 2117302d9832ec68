package reconcile

// Union returns the union of a and b, preserving first-seen order and
// dropping duplicates by value equality. Reference lists must be normalized
// to their canonical string form before being passed in, so differently
// typed identifier representations compare equal.
func Union[T comparable](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	seen := make(map[T]struct{}, len(a)+len(b))
	for _, list := range [][]T{a, b} {
		for _, v := range list {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Dedup removes duplicate values from a single list, keeping the first
// occurrence of each.
func Dedup[T comparable](values []T) []T {
	return Union(values, nil)
}

// Without returns values with every occurrence of unwanted removed.
func Without[T comparable](values []T, unwanted T) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		if v != unwanted {
			out = append(out, v)
		}
	}
	return out
}

// HasDuplicates reports whether the list contains any value more than once.
func HasDuplicates[T comparable](values []T) bool {
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}
