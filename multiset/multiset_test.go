package multiset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdeusser/settheory/set"
)

func TestNewMultiset(t *testing.T) {
	ms := NewMultiset("a", "a", "a", "c", "d", "d")
	assert.Equal(t, 3, ms.Multiplicity("a"))
	assert.Equal(t, 1, ms.Multiplicity("c"))
	assert.Equal(t, 2, ms.Multiplicity("d"))
	assert.Equal(t, 0, ms.Multiplicity("z"))
	assert.Equal(t, 6, ms.Cardinality())
	assert.Equal(t, 3, ms.UniqueCount())
}

func TestAdd(t *testing.T) {
	ms := NewMultiset[string]()
	ms.Add("a", 2)
	assert.Equal(t, 2, ms.Multiplicity("a"))

	ms.Add("a", 1)
	assert.Equal(t, 3, ms.Multiplicity("a"))

	t.Run("zero or negative count is a no-op", func(t *testing.T) {
		ms.Add("a", 0)
		ms.Add("a", -5)
		assert.Equal(t, 3, ms.Multiplicity("a"))
		ms.Add("b", -1)
		assert.Equal(t, 0, ms.Multiplicity("b"))
	})
}

func TestRemove(t *testing.T) {
	ms := NewMultiset("a", "a", "a", "b")

	ms.Remove("a", 1)
	assert.Equal(t, 2, ms.Multiplicity("a"))

	t.Run("removing more than present deletes the item", func(t *testing.T) {
		ms.Remove("a", 10)
		assert.Equal(t, 0, ms.Multiplicity("a"))
		assert.Equal(t, 1, ms.UniqueCount())
	})

	t.Run("removing an absent item is a no-op", func(t *testing.T) {
		ms.Remove("z", 1)
		assert.Equal(t, 1, ms.UniqueCount())
	})

	t.Run("zero or negative count is a no-op", func(t *testing.T) {
		ms.Remove("b", 0)
		ms.Remove("b", -3)
		assert.Equal(t, 1, ms.Multiplicity("b"))
	})
}

func TestContains(t *testing.T) {
	ms := NewMultiset("a", "b")
	assert.True(t, ms.Contains("a"))
	assert.True(t, ms.Contains("a", "b"))
	assert.False(t, ms.Contains("a", "z"))
}

func TestUnion(t *testing.T) {
	p := NewMultiset("a", "a", "a", "c", "d", "d")
	q := NewMultiset("a", "a", "b", "c", "c")

	union := p.Union(q)
	assert.Equal(t, 3, union.Multiplicity("a"))
	assert.Equal(t, 1, union.Multiplicity("b"))
	assert.Equal(t, 2, union.Multiplicity("c"))
	assert.Equal(t, 2, union.Multiplicity("d"))
	assert.Equal(t, 8, union.Cardinality())
}

func TestIntersect(t *testing.T) {
	p := NewMultiset("a", "a", "a", "c", "d", "d")
	q := NewMultiset("a", "a", "b", "c", "c")

	intersection := p.Intersect(q)
	assert.Equal(t, 2, intersection.Multiplicity("a"))
	assert.Equal(t, 1, intersection.Multiplicity("c"))
	assert.Equal(t, 0, intersection.Multiplicity("b"))
	assert.Equal(t, 0, intersection.Multiplicity("d"))
	assert.Equal(t, 2, intersection.UniqueCount())
}

func TestDifference(t *testing.T) {
	p := NewMultiset("a", "a", "a", "c", "d", "d")
	q := NewMultiset("a", "a", "b", "c", "c")

	difference := p.Difference(q)
	assert.Equal(t, 1, difference.Multiplicity("a"))
	assert.Equal(t, 2, difference.Multiplicity("d"))
	assert.Equal(t, 0, difference.Multiplicity("c"))
	assert.Equal(t, 2, difference.UniqueCount())
}

func TestSum(t *testing.T) {
	p := NewMultiset("a", "a", "a", "c", "d", "d")
	q := NewMultiset("a", "a", "b", "c", "c")

	sum := p.Sum(q)
	assert.Equal(t, 5, sum.Multiplicity("a"))
	assert.Equal(t, 1, sum.Multiplicity("b"))
	assert.Equal(t, 3, sum.Multiplicity("c"))
	assert.Equal(t, 2, sum.Multiplicity("d"))
	assert.Equal(t, 11, sum.Cardinality())
}

func TestToSet(t *testing.T) {
	items := []string{"a", "a", "b", "c", "c", "c"}
	assert.True(t, NewMultiset(items...).ToSet().Equal(set.NewSet(items...)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "∅", NewMultiset[string]().String())
	assert.Equal(t, "{a:2, b:1}", NewMultiset("a", "b", "a").String())
}
