package set

type Interface[T comparable] interface {
	// Adds an item to the set. Reports whether the set was modified.
	Add(T) bool

	// Removes an item from the set. Reports whether the set was modified.
	Remove(T) bool

	// Removes all items from the set.
	Clear()

	// Returns whether the provided items are in the set.
	Contains(...T) bool

	// Returns the number of distinct items in the set.
	Cardinality() int

	// Returns whether the set has no items.
	IsEmpty() bool

	// Iterates over items and executes the provided function against each
	// item. Returning true from the function stops the iteration.
	ForEach(func(T) bool)

	// Provides a string representation of the set.
	String() string

	// Returns the set as a slice.
	ToSlice() []T

	// Returns a new set holding the items for which fn returns true.
	Filter(fn func(T) bool) Interface[T]

	// Determines if every item in the provided set is in this set.
	IsSuperSet(Interface[T]) bool

	// Determines if every item in the provided set is in this set and this
	// set holds at least one item the provided set does not.
	IsProperSuperSet(Interface[T]) bool

	// Determines if every item in this set is in the provided set.
	IsSubSet(Interface[T]) bool

	// Determines if every item in this set is in the provided set and the
	// provided set holds at least one item this set does not.
	IsProperSubSet(Interface[T]) bool

	// Determines if the two sets are equal.
	//
	// Note: If both sets have the same number of items and contain the same
	// items, they're equal. Order is irrelevant.
	Equal(Interface[T]) bool

	// Determines if the two sets have the same cardinality. The items
	// themselves are irrelevant.
	IsEquivalentTo(Interface[T]) bool

	// Determines if the two sets share no items.
	IsDisjoint(Interface[T]) bool

	// Returns a new set containing only the items that exist in both sets.
	Intersect(Interface[T]) Interface[T]

	// Returns a new set containing the items that exist in either set.
	Union(Interface[T]) Interface[T]

	// Returns a new set with items contained in this set that are not present in
	// the provided set.
	Difference(Interface[T]) Interface[T]

	// Returns a new set with all items which are in either set, but not both.
	SymmetricDifference(Interface[T]) Interface[T]

	// Returns a new set with the items of the universal set that are not in
	// this set. Items of this set missing from the universal set are ignored.
	Complement(universal Interface[T]) Interface[T]

	// Returns the family of all subsets of this set.
	PowerSet() (*Family[T], error)
}
