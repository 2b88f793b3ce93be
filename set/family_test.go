package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamilyAdd(t *testing.T) {
	f := NewFamily[int]()
	assert.True(t, f.Add(NewSet(1, 2)))
	assert.Equal(t, 1, f.Cardinality())

	// A freshly constructed set with the same items is the same member.
	assert.False(t, f.Add(NewSet(2, 1)))
	assert.Equal(t, 1, f.Cardinality())

	assert.True(t, f.Add(NewSet(1, 2, 3)))
	assert.Equal(t, 2, f.Cardinality())
}

func TestFamilyContains(t *testing.T) {
	f := NewFamily(NewSet("foo"), NewSet("foo", "bar"))
	assert.True(t, f.Contains(NewSet("foo")))
	assert.True(t, f.Contains(NewSet("bar", "foo")))
	assert.False(t, f.Contains(NewSet("bar")))
}

func TestFamilyRemove(t *testing.T) {
	f := NewFamily(NewSet(1), NewSet(1, 2))
	assert.True(t, f.Remove(NewSet(2, 1)))
	assert.Equal(t, 1, f.Cardinality())
	assert.False(t, f.Remove(NewSet(1, 2)))
}

func TestFamilyEqual(t *testing.T) {
	testCases := []struct {
		testName string
		f        *Family[int]
		o        *Family[int]
		want     bool
	}{
		{
			"equal regardless of order",
			NewFamily(NewSet(1), NewSet(2, 3)),
			NewFamily(NewSet(3, 2), NewSet(1)),
			true,
		},
		{
			"not equal different members",
			NewFamily(NewSet(1), NewSet(2)),
			NewFamily(NewSet(1), NewSet(3)),
			false,
		},
		{
			"not equal different length",
			NewFamily(NewSet(1)),
			NewFamily(NewSet(1), NewSet(2)),
			false,
		},
		{
			"empty families",
			NewFamily[int](),
			NewFamily[int](),
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.f.Equal(tc.o))
		})
	}
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "∅", NewFamily[int]().String())
	assert.Equal(t, "{{1, 2}, ∅}", NewFamily(NewSet(2, 1), NewSet[int]()).String())
}
