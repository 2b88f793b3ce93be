package setops

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdeusser/settheory/set"
)

func TestCartesianProduct(t *testing.T) {
	a := set.NewSet(1, 2)
	b := set.NewSet("x", "y", "z")

	product := CartesianProduct(a, b)
	assert.Equal(t, a.Cardinality()*b.Cardinality(), product.Cardinality())
	assert.True(t, product.Contains(Pair[int, string]{First: 1, Second: "x"}))
	assert.True(t, product.Contains(Pair[int, string]{First: 2, Second: "z"}))
	assert.False(t, product.Contains(Pair[int, string]{First: 3, Second: "x"}))
}

func TestCartesianProductWithEmptySet(t *testing.T) {
	a := set.NewSet(1, 2)
	empty := set.NewSet[string]()

	assert.True(t, CartesianProduct(a, empty).IsEmpty())
	assert.True(t, CartesianProduct(empty, a).IsEmpty())
}

func TestCartesianProductN(t *testing.T) {
	sets := []set.Interface[int]{
		set.NewSet(1, 2),
		set.NewSet(3, 4),
		set.NewSet(5),
	}

	product := CartesianProductN(sets)
	assert.Equal(t, 4, product.Len())
	assert.True(t, product.Contains([]int{1, 3, 5}))
	assert.True(t, product.Contains([]int{2, 4, 5}))
	assert.False(t, product.Contains([]int{3, 1, 5}))

	// Tuple position i always draws from sets[i].
	product.ForEach(func(tuple []int) bool {
		assert.Len(t, tuple, len(sets))
		for i, item := range tuple {
			assert.True(t, sets[i].Contains(item))
		}
		return false
	})
}

func TestCartesianProductNDegenerateInputs(t *testing.T) {
	t.Run("no sets", func(t *testing.T) {
		assert.True(t, CartesianProductN[int](nil).IsEmpty())
		assert.True(t, CartesianProductN([]set.Interface[int]{}).IsEmpty())
	})

	t.Run("any empty set empties the product", func(t *testing.T) {
		sets := []set.Interface[int]{
			set.NewSet(1, 2),
			set.NewSet[int](),
			set.NewSet(5),
		}
		assert.True(t, CartesianProductN(sets).IsEmpty())
	})

	t.Run("single set", func(t *testing.T) {
		product := CartesianProductN([]set.Interface[int]{set.NewSet(1, 2)})
		assert.Equal(t, 2, product.Len())
		assert.True(t, product.Contains([]int{1}))
		assert.True(t, product.Contains([]int{2}))
	})
}

func TestPairString(t *testing.T) {
	assert.Equal(t, "(1, x)", Pair[int, string]{First: 1, Second: "x"}.String())
}
