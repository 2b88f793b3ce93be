package set

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MaxPowerSetCardinality is the largest input cardinality PowerSet accepts.
// Subsets are addressed by bits of a uint64 index, and the loop bound 2^n
// must itself fit, so n is capped at 63. In practice memory runs out long
// before the cap does; callers should keep n small (around 20 or less).
const MaxPowerSetCardinality = 63

// Set is an unordered collection of unique items.
type Set[T comparable] struct {
	m  map[T]struct{}
	mu sync.RWMutex
}

// Ensure Set satisfies set.Interface at compile-time.
var _ Interface[string] = (*Set[string])(nil)

// NewSet returns a set initialized with the provided items. Duplicates
// collapse silently.
func NewSet[T comparable](items ...T) Interface[T] {
	s := &Set[T]{
		m:  make(map[T]struct{}),
		mu: sync.RWMutex{},
	}

	for _, item := range items {
		s.m[item] = struct{}{}
	}

	return s
}

// Add an item to the set.
func (s *Set[T]) Add(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.m)
	s.m[item] = struct{}{}

	return before != len(s.m)
}

// Remove an item from the set.
func (s *Set[T]) Remove(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.m)
	delete(s.m, item)

	return before != len(s.m)
}

// Clear removes all items from the set.
func (s *Set[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m = make(map[T]struct{})
}

// Contains determines whether the provided items are in the set.
func (s *Set[T]) Contains(items ...T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range items {
		if !s.contains(item) {
			return false
		}
	}

	return true
}

// Cardinality returns the number of distinct items in the set.
func (s *Set[T]) Cardinality() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.m)
}

// IsEmpty returns whether the set has no items.
func (s *Set[T]) IsEmpty() bool {
	return s.Cardinality() == 0
}

// ForEach iterates over items and executes the provided function against each
// item.
func (s *Set[T]) ForEach(fn func(T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for item := range s.m {
		if fn(item) {
			break
		}
	}
}

// String provides a string representation of the set. The empty set renders
// as the empty-set symbol; item order is whatever the map yields.
func (s *Set[T]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.m) == 0 {
		return "∅"
	}

	items := make([]string, 0, len(s.m))

	for item := range s.m {
		items = append(items, fmt.Sprint(item))
	}

	sort.Strings(items)

	return fmt.Sprintf("{%s}", strings.Join(items, ", "))
}

// ToSlice returns the set as a slice.
func (s *Set[T]) ToSlice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, 0, len(s.m))

	for item := range s.m {
		items = append(items, item)
	}

	return items
}

// Filter returns a new set holding the items for which fn returns true.
func (s *Set[T]) Filter(fn func(T) bool) Interface[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := NewSet[T]()

	for item := range s.m {
		if fn(item) {
			result.Add(item)
		}
	}

	return result
}

// IsSuperSet determines if every item in the provided set is in this set.
func (s *Set[T]) IsSuperSet(other Interface[T]) bool {
	o := other.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	for item := range o.m {
		if !s.contains(item) {
			return false
		}
	}

	return true
}

// IsProperSuperSet determines if this set is a superset of the provided set
// and holds at least one item the provided set does not.
func (s *Set[T]) IsProperSuperSet(other Interface[T]) bool {
	return other.IsProperSubSet(s)
}

// IsSubSet determines if every item in this set is in the provided set.
func (s *Set[T]) IsSubSet(other Interface[T]) bool {
	o := other.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	for item := range s.m {
		if !o.contains(item) {
			return false
		}
	}

	return true
}

// IsProperSubSet determines if this set is a subset of the provided set and
// the provided set holds at least one extra item. Equal-cardinality subsets
// are never proper.
func (s *Set[T]) IsProperSubSet(other Interface[T]) bool {
	return s.IsSubSet(other) && s.Cardinality() < other.Cardinality()
}

// Equal determines if the two sets are equal.
//
// Note: If both sets have the same number of items and contain the same
// items, they're equal. Order is irrelevant.
func (s *Set[T]) Equal(other Interface[T]) bool {
	o := other.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	if len(s.m) != len(o.m) {
		return false
	}

	for item := range s.m {
		if !o.contains(item) {
			return false
		}
	}

	return true
}

// IsEquivalentTo determines if the two sets have the same cardinality.
// Which items they hold is irrelevant.
func (s *Set[T]) IsEquivalentTo(other Interface[T]) bool {
	return s.Cardinality() == other.Cardinality()
}

// IsDisjoint determines if the two sets share no items.
func (s *Set[T]) IsDisjoint(other Interface[T]) bool {
	o := other.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	for item := range s.m {
		if o.contains(item) {
			return false
		}
	}

	return true
}

// Intersect returns a new set containing only the items that exist in both
// sets.
func (s *Set[T]) Intersect(other Interface[T]) Interface[T] {
	o := other.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	result := NewSet[T]()

	// To eliminate looping over items of both sets, we can go over the
	// smallest set.
	if len(s.m) < len(o.m) {
		for item := range s.m {
			if o.contains(item) {
				result.Add(item)
			}
		}
	} else {
		for item := range o.m {
			if s.contains(item) {
				result.Add(item)
			}
		}
	}

	return result
}

// Union returns a new set containing the items that exist in either set.
func (s *Set[T]) Union(other Interface[T]) Interface[T] {
	o := other.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	result := NewSet[T]()

	for item := range s.m {
		result.Add(item)
	}

	for item := range o.m {
		result.Add(item)
	}

	return result
}

// Difference returns a new set with items contained in this set that are not
// present in the provided set.
func (s *Set[T]) Difference(other Interface[T]) Interface[T] {
	o := other.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	result := NewSet[T]()

	for item := range s.m {
		if !o.contains(item) {
			result.Add(item)
		}
	}

	return result
}

// SymmetricDifference returns a new set with all items which are in either
// set, but not both.
func (s *Set[T]) SymmetricDifference(other Interface[T]) Interface[T] {
	o := other.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	o.mu.RLock()
	defer o.mu.RUnlock()

	result := NewSet[T]()

	for item := range s.m {
		if !o.contains(item) {
			result.Add(item)
		}
	}

	for item := range o.m {
		if !s.contains(item) {
			result.Add(item)
		}
	}

	return result
}

// Complement returns a new set with the items of the universal set that are
// not in this set. Items of this set missing from the universal set are
// ignored rather than reported as an error.
func (s *Set[T]) Complement(universal Interface[T]) Interface[T] {
	u := universal.(*Set[T])

	s.mu.RLock()
	defer s.mu.RUnlock()
	u.mu.RLock()
	defer u.mu.RUnlock()

	result := NewSet[T]()

	for item := range u.m {
		if !s.contains(item) {
			result.Add(item)
		}
	}

	return result
}

// PowerSet returns the family of all 2^n subsets of the set. Each subset
// corresponds to one value of a uint64 index: bit i set means item i of a
// fixed enumeration of the set is included. The subsets of the empty set are
// the family holding only the empty set.
func (s *Set[T]) PowerSet() (*Family[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.m)
	if n > MaxPowerSetCardinality {
		return nil, fmt.Errorf("set: cannot enumerate subsets of %d items, the subset index supports at most %d", n, MaxPowerSetCardinality)
	}

	items := make([]T, 0, n)
	for item := range s.m {
		items = append(items, item)
	}

	family := NewFamily[T]()

	for index := uint64(0); index < 1<<uint(n); index++ {
		subset := NewSet[T]()
		for i := 0; i < n; i++ {
			if index&(1<<uint(i)) != 0 {
				subset.Add(items[i])
			}
		}
		// Every index yields a distinct subset, so skip the structural
		// duplicate scan Add would do.
		family.append(subset)
	}

	return family, nil
}

func (s *Set[T]) contains(item T) bool {
	_, ok := s.m[item]
	return ok
}
