package setops

import (
	"github.com/rdeusser/settheory/set"
)

// InclusionExclusion2 counts the items of A∪B without materializing the
// union: |A| + |B| − |A∩B|.
func InclusionExclusion2[T comparable](a, b set.Interface[T]) int {
	return a.Cardinality() + b.Cardinality() - a.Intersect(b).Cardinality()
}

// InclusionExclusion3 counts the items of A∪B∪C without materializing the
// union: |A| + |B| + |C| − |A∩B| − |A∩C| − |B∩C| + |A∩B∩C|.
func InclusionExclusion3[T comparable](a, b, c set.Interface[T]) int {
	return a.Cardinality() + b.Cardinality() + c.Cardinality() -
		a.Intersect(b).Cardinality() -
		a.Intersect(c).Cardinality() -
		b.Intersect(c).Cardinality() +
		a.Intersect(b).Intersect(c).Cardinality()
}
