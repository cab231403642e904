// Package xproduct computes the cartesian product of a list of
// candidate lists, used by the parameter binder to enumerate every
// combination of leaf substitutions for a skeleton's free slots.
// Ported from the reference implementation's cartesian_product
// (original_source/src/airs/utility.rs), generalized with a Go type
// parameter in place of Rust's generic Clone bound.
package xproduct

// Product returns every combination obtained by choosing one element
// from each list in lists, in order. An empty lists argument returns a
// single empty combination; a lists entry that is itself empty makes
// the whole product empty, since no choice is possible for that
// position.
func Product[T any](lists [][]T) [][]T {
	result := [][]T{{}}

	for _, list := range lists {
		next := make([][]T, 0, len(result)*len(list))
		for _, prefix := range result {
			for _, element := range list {
				combo := make([]T, len(prefix)+1)
				copy(combo, prefix)
				combo[len(prefix)] = element
				next = append(next, combo)
			}
		}
		result = next
	}

	return result
}
