package multiset

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rdeusser/settheory/set"
)

// Multiset is an unordered collection that counts how many times each item
// occurs. Stored multiplicities are always positive; an item whose count
// drops to zero is deleted, never kept at zero.
type Multiset[T comparable] struct {
	m  map[T]int
	mu sync.RWMutex
}

// NewMultiset returns a multiset initialized with the provided items. Each
// occurrence raises the item's multiplicity by one.
func NewMultiset[T comparable](items ...T) *Multiset[T] {
	ms := &Multiset[T]{
		m:  make(map[T]int),
		mu: sync.RWMutex{},
	}

	for _, item := range items {
		ms.m[item]++
	}

	return ms
}

// Add raises an item's multiplicity by count. A count of zero or less is a
// no-op.
func (ms *Multiset[T]) Add(item T, count int) {
	if count <= 0 {
		return
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.m[item] += count
}

// Remove lowers an item's multiplicity by count, deleting the item once its
// multiplicity reaches zero. Removing an absent item or passing a count of
// zero or less is a no-op.
func (ms *Multiset[T]) Remove(item T, count int) {
	if count <= 0 {
		return
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.m[item] <= count {
		delete(ms.m, item)
		return
	}

	ms.m[item] -= count
}

// Multiplicity returns how many times an item occurs, zero if absent.
func (ms *Multiset[T]) Multiplicity(item T) int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	return ms.m[item]
}

// Contains determines whether the provided items occur at least once.
func (ms *Multiset[T]) Contains(items ...T) bool {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	for _, item := range items {
		if ms.m[item] == 0 {
			return false
		}
	}

	return true
}

// Cardinality returns the total number of occurrences, repeats included.
func (ms *Multiset[T]) Cardinality() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	total := 0
	for _, count := range ms.m {
		total += count
	}

	return total
}

// UniqueCount returns the number of distinct items.
func (ms *Multiset[T]) UniqueCount() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	return len(ms.m)
}

// IsEmpty returns whether the multiset has no items.
func (ms *Multiset[T]) IsEmpty() bool {
	return ms.UniqueCount() == 0
}

// ForEach iterates over distinct items with their multiplicities and
// executes the provided function against each pair. Returning true from the
// function stops the iteration.
func (ms *Multiset[T]) ForEach(fn func(item T, count int) bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	for item, count := range ms.m {
		if fn(item, count) {
			break
		}
	}
}

// Union returns a new multiset where each item occurs as many times as its
// higher multiplicity in either multiset.
func (ms *Multiset[T]) Union(other *Multiset[T]) *Multiset[T] {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	result := NewMultiset[T]()

	for item, count := range ms.m {
		result.m[item] = count
	}

	for item, count := range other.m {
		if count > result.m[item] {
			result.m[item] = count
		}
	}

	return result
}

// Intersect returns a new multiset where each item occurs as many times as
// its lower multiplicity in the two multisets. Items absent from either side
// are excluded.
func (ms *Multiset[T]) Intersect(other *Multiset[T]) *Multiset[T] {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	result := NewMultiset[T]()

	for item, count := range ms.m {
		if o := other.m[item]; o > 0 {
			if o < count {
				result.m[item] = o
			} else {
				result.m[item] = count
			}
		}
	}

	return result
}

// Difference returns a new multiset where each item occurs as many times as
// its multiplicity here exceeds its multiplicity in the provided multiset.
// Subtraction clamps at zero, so no item ever goes negative.
func (ms *Multiset[T]) Difference(other *Multiset[T]) *Multiset[T] {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	result := NewMultiset[T]()

	for item, count := range ms.m {
		if remaining := count - other.m[item]; remaining > 0 {
			result.m[item] = remaining
		}
	}

	return result
}

// Sum returns a new multiset where each item's multiplicity is the sum of
// its multiplicities in the two multisets.
func (ms *Multiset[T]) Sum(other *Multiset[T]) *Multiset[T] {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	result := NewMultiset[T]()

	for item, count := range ms.m {
		result.m[item] = count
	}

	for item, count := range other.m {
		result.m[item] += count
	}

	return result
}

// ToSet returns the distinct items as a set, multiplicities discarded.
func (ms *Multiset[T]) ToSet() set.Interface[T] {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	result := set.NewSet[T]()

	for item := range ms.m {
		result.Add(item)
	}

	return result
}

// String provides a string representation of the multiset, rendering each
// distinct item with its multiplicity.
func (ms *Multiset[T]) String() string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	if len(ms.m) == 0 {
		return "∅"
	}

	items := make([]string, 0, len(ms.m))

	for item, count := range ms.m {
		items = append(items, fmt.Sprintf("%v:%d", item, count))
	}

	sort.Strings(items)

	return fmt.Sprintf("{%s}", strings.Join(items, ", "))
}
