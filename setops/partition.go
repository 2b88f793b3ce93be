package setops

import (
	"github.com/rdeusser/settheory/set"
)

// IsPartition determines whether the family of parts partitions the original
// set: every part is non-empty, the parts are pairwise disjoint, and their
// union reconstructs the original exactly.
func IsPartition[T comparable](parts *set.Family[T], original set.Interface[T]) bool {
	members := parts.ToSlice()

	for _, part := range members {
		if part.IsEmpty() {
			return false
		}
	}

	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if !members[i].IsDisjoint(members[j]) {
				return false
			}
		}
	}

	union := set.NewSet[T]()
	for _, part := range members {
		union = union.Union(part)
	}

	return union.Equal(original)
}
