// Package setlaws checks the algebraic laws of set theory against concrete
// sets. Each predicate evaluates both sides of the named identity with the
// ordinary set operations and compares the results, so the laws double as a
// correctness oracle for the operations themselves. None of them proves a
// law in general; they decide it for the sets given.
package setlaws

import (
	"github.com/rdeusser/settheory/set"
	"github.com/rdeusser/settheory/setops"
)

// Identity checks A∪∅ = A and A∩U = A.
func Identity[T comparable](a, universal set.Interface[T]) bool {
	empty := set.NewSet[T]()

	return setops.Union(a, empty).Equal(a) &&
		setops.Intersect(a, universal).Equal(a)
}

// Domination checks the null laws A∩∅ = ∅ and A∪U = U.
func Domination[T comparable](a, universal set.Interface[T]) bool {
	empty := set.NewSet[T]()

	return setops.Intersect(a, empty).Equal(empty) &&
		setops.Union(a, universal).Equal(universal)
}

// Complementation checks A∪A′ = U and A∩A′ = ∅.
func Complementation[T comparable](a, universal set.Interface[T]) bool {
	complement := setops.Complement(a, universal)

	return setops.Union(a, complement).Equal(universal) &&
		setops.Intersect(a, complement).IsEmpty()
}

// Idempotent checks A∪A = A and A∩A = A.
func Idempotent[T comparable](a set.Interface[T]) bool {
	return setops.Union(a, a).Equal(a) &&
		setops.Intersect(a, a).Equal(a)
}

// Involution checks (A′)′ = A.
func Involution[T comparable](a, universal set.Interface[T]) bool {
	return setops.Complement(setops.Complement(a, universal), universal).Equal(a)
}

// Absorption checks A∪(A∩B) = A and A∩(A∪B) = A.
func Absorption[T comparable](a, b set.Interface[T]) bool {
	return setops.Union(a, setops.Intersect(a, b)).Equal(a) &&
		setops.Intersect(a, setops.Union(a, b)).Equal(a)
}

// Commutative checks A∪B = B∪A and A∩B = B∩A.
func Commutative[T comparable](a, b set.Interface[T]) bool {
	return setops.Union(a, b).Equal(setops.Union(b, a)) &&
		setops.Intersect(a, b).Equal(setops.Intersect(b, a))
}

// Associative checks A∪(B∪C) = (A∪B)∪C and A∩(B∩C) = (A∩B)∩C.
func Associative[T comparable](a, b, c set.Interface[T]) bool {
	return setops.Union(a, setops.Union(b, c)).Equal(setops.Union(setops.Union(a, b), c)) &&
		setops.Intersect(a, setops.Intersect(b, c)).Equal(setops.Intersect(setops.Intersect(a, b), c))
}

// Distributive checks A∪(B∩C) = (A∪B)∩(A∪C) and A∩(B∪C) = (A∩B)∪(A∩C).
func Distributive[T comparable](a, b, c set.Interface[T]) bool {
	return setops.Union(a, setops.Intersect(b, c)).
		Equal(setops.Intersect(setops.Union(a, b), setops.Union(a, c))) &&
		setops.Intersect(a, setops.Union(b, c)).
			Equal(setops.Union(setops.Intersect(a, b), setops.Intersect(a, c)))
}

// DeMorgan checks (A∩B)′ = A′∪B′ and (A∪B)′ = A′∩B′.
func DeMorgan[T comparable](a, b, universal set.Interface[T]) bool {
	return setops.Complement(setops.Intersect(a, b), universal).
		Equal(setops.Union(setops.Complement(a, universal), setops.Complement(b, universal))) &&
		setops.Complement(setops.Union(a, b), universal).
			Equal(setops.Intersect(setops.Complement(a, universal), setops.Complement(b, universal)))
}

// ComplementBounds checks ∅′ = U and U′ = ∅ with respect to the given
// universal set.
func ComplementBounds[T comparable](universal set.Interface[T]) bool {
	empty := set.NewSet[T]()

	return setops.Complement(empty, universal).Equal(universal) &&
		setops.Complement(universal, universal).IsEmpty()
}
