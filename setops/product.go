package setops

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rdeusser/settheory/set"
)

// Pair is an ordered pair. Both fields are comparable, so a Pair can be an
// item of a set.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// String provides a string representation of the pair.
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// CartesianProduct returns the set of all ordered pairs (a, b) with a drawn
// from the first set and b from the second. Its cardinality is the product
// of the input cardinalities; either input being empty makes it empty.
func CartesianProduct[A, B comparable](a set.Interface[A], b set.Interface[B]) set.Interface[Pair[A, B]] {
	result := set.NewSet[Pair[A, B]]()

	a.ForEach(func(first A) bool {
		b.ForEach(func(second B) bool {
			result.Add(Pair[A, B]{First: first, Second: second})
			return false
		})
		return false
	})

	return result
}

// Tuples is a collection of distinct n-tuples, the result shape of an n-ary
// Cartesian product. Slices are not comparable, so tuples cannot be items of
// a set; membership is checked element-wise instead.
type Tuples[T comparable] struct {
	tuples [][]T
	mu     sync.RWMutex
}

// Len returns the number of tuples.
func (t *Tuples[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.tuples)
}

// IsEmpty returns whether the collection has no tuples.
func (t *Tuples[T]) IsEmpty() bool {
	return t.Len() == 0
}

// Contains determines whether the provided tuple is in the collection.
// Tuples match when they have the same length and the same item at every
// position.
func (t *Tuples[T]) Contains(tuple []T) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, candidate := range t.tuples {
		if tupleEqual(candidate, tuple) {
			return true
		}
	}

	return false
}

// ToSlice returns the tuples as a slice of slices.
func (t *Tuples[T]) ToSlice() [][]T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tuples := make([][]T, len(t.tuples))
	for i, tuple := range t.tuples {
		tuples[i] = make([]T, len(tuple))
		copy(tuples[i], tuple)
	}

	return tuples
}

// ForEach iterates over tuples and executes the provided function against
// each one. Returning true from the function stops the iteration.
func (t *Tuples[T]) ForEach(fn func([]T) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, tuple := range t.tuples {
		if fn(tuple) {
			break
		}
	}
}

// String provides a string representation of the tuple collection.
func (t *Tuples[T]) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.tuples) == 0 {
		return "∅"
	}

	rendered := make([]string, 0, len(t.tuples))

	for _, tuple := range t.tuples {
		parts := make([]string, len(tuple))
		for i, item := range tuple {
			parts[i] = fmt.Sprint(item)
		}
		rendered = append(rendered, fmt.Sprintf("(%s)", strings.Join(parts, ", ")))
	}

	sort.Strings(rendered)

	return fmt.Sprintf("{%s}", strings.Join(rendered, ", "))
}

// CartesianProductN returns all n-tuples whose item at position i is drawn
// from sets[i]. An empty input list, or any empty input set, yields an empty
// result. The inputs are sets, so every produced tuple is distinct by
// construction.
func CartesianProductN[T comparable](sets []set.Interface[T]) *Tuples[T] {
	if len(sets) == 0 {
		return &Tuples[T]{}
	}

	for _, s := range sets {
		if s.IsEmpty() {
			return &Tuples[T]{}
		}
	}

	tuples := [][]T{{}}

	for _, s := range sets {
		items := s.ToSlice()
		extended := make([][]T, 0, len(tuples)*len(items))

		for _, tuple := range tuples {
			for _, item := range items {
				next := make([]T, len(tuple), len(tuple)+1)
				copy(next, tuple)
				extended = append(extended, append(next, item))
			}
		}

		tuples = extended
	}

	return &Tuples[T]{tuples: tuples}
}

func tupleEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
