// Package setops provides the set operations as free functions, so neither
// operand is privileged as the receiver, along with the multi-set-argument
// operations that have no natural home on a single set: Cartesian products,
// partition checking, and inclusion-exclusion counting.
package setops

import (
	"github.com/rdeusser/settheory/set"
)

// Union returns a new set containing the items that exist in either set.
func Union[T comparable](a, b set.Interface[T]) set.Interface[T] {
	return a.Union(b)
}

// Intersect returns a new set containing only the items that exist in both
// sets.
func Intersect[T comparable](a, b set.Interface[T]) set.Interface[T] {
	return a.Intersect(b)
}

// Difference returns a new set with items contained in a that are not
// present in b.
func Difference[T comparable](a, b set.Interface[T]) set.Interface[T] {
	return a.Difference(b)
}

// SymmetricDifference returns a new set with all items which are in either
// set, but not both, computed as (A∪B)−(A∩B). The Set method computes the
// same set as (A−B)∪(B−A); the two formulas agree for every input.
func SymmetricDifference[T comparable](a, b set.Interface[T]) set.Interface[T] {
	return a.Union(b).Difference(a.Intersect(b))
}

// Complement returns a new set with the items of the universal set that are
// not in a.
func Complement[T comparable](a, universal set.Interface[T]) set.Interface[T] {
	return a.Complement(universal)
}
