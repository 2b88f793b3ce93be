package set

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Family is a set whose items are themselves sets. Go map keys must be
// comparable and Set values are not, so a Family keeps its members in a
// slice and deduplicates with structural Equal: two freshly constructed
// sets holding the same items are one member, not two.
type Family[T comparable] struct {
	members []Interface[T]
	mu      sync.RWMutex
}

// NewFamily returns a family initialized with the provided sets. Structural
// duplicates collapse silently.
func NewFamily[T comparable](members ...Interface[T]) *Family[T] {
	f := &Family[T]{
		mu: sync.RWMutex{},
	}

	for _, member := range members {
		f.Add(member)
	}

	return f
}

// Add a set to the family.
func (f *Family[T]) Add(member Interface[T]) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.contains(member) {
		return false
	}

	f.members = append(f.members, member)

	return true
}

// Remove a set from the family. Membership is structural, so any set equal
// to a member removes that member.
func (f *Family[T]) Remove(member Interface[T]) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, m := range f.members {
		if m.Equal(member) {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return true
		}
	}

	return false
}

// Contains determines whether a set structurally equal to the provided one
// is in the family.
func (f *Family[T]) Contains(member Interface[T]) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.contains(member)
}

// Cardinality returns the number of member sets.
func (f *Family[T]) Cardinality() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.members)
}

// IsEmpty returns whether the family has no members.
func (f *Family[T]) IsEmpty() bool {
	return f.Cardinality() == 0
}

// ForEach iterates over member sets and executes the provided function
// against each one. Returning true from the function stops the iteration.
func (f *Family[T]) ForEach(fn func(Interface[T]) bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, member := range f.members {
		if fn(member) {
			break
		}
	}
}

// ToSlice returns the member sets as a slice.
func (f *Family[T]) ToSlice() []Interface[T] {
	f.mu.RLock()
	defer f.mu.RUnlock()

	members := make([]Interface[T], len(f.members))
	copy(members, f.members)

	return members
}

// Equal determines if the two families hold structurally equal member sets.
// Order is irrelevant.
func (f *Family[T]) Equal(other *Family[T]) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	if len(f.members) != len(other.members) {
		return false
	}

	for _, member := range f.members {
		if !other.contains(member) {
			return false
		}
	}

	return true
}

// String provides a string representation of the family. The empty family
// renders as the empty-set symbol.
func (f *Family[T]) String() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if len(f.members) == 0 {
		return "∅"
	}

	members := make([]string, 0, len(f.members))

	for _, member := range f.members {
		members = append(members, member.String())
	}

	sort.Strings(members)

	return fmt.Sprintf("{%s}", strings.Join(members, ", "))
}

// append adds a member without the duplicate scan. Callers must guarantee
// the member is not already present.
func (f *Family[T]) append(member Interface[T]) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.members = append(f.members, member)
}

func (f *Family[T]) contains(member Interface[T]) bool {
	for _, m := range f.members {
		if m.Equal(member) {
			return true
		}
	}

	return false
}
