package twofour

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderingComparable(t *testing.T) {
	t.Parallel()

	assert.True(t, Natural[int]().Comparable(0))
	assert.True(t, Natural[string]().Comparable(""))
	assert.True(t, Natural[float64]().Comparable(math.Inf(-1)))
	assert.False(t, Natural[float64]().Comparable(math.NaN()))
	assert.False(t, Natural[float32]().Comparable(float32(math.NaN())))

	assert.True(t, Bytes().Comparable([]byte{}))
	assert.False(t, Bytes().Comparable(nil))

	assert.True(t, Ints().Comparable(-3))
	assert.False(t, Ints().Comparable("3"))
	assert.False(t, Ints().Comparable(int32(3)))
	assert.False(t, Ints().Comparable(nil))

	assert.True(t, Func(strings.EqualFold).Comparable("anything"))
}

func TestComparerPredicates(t *testing.T) {
	t.Parallel()

	c := comparer[int]{ord: Natural[int]()}
	for _, tc := range []struct {
		a, b               int
		lt, le, gt, ge, eq bool
	}{
		{a: 1, b: 2, lt: true, le: true},
		{a: 2, b: 2, le: true, ge: true, eq: true},
		{a: 3, b: 2, gt: true, ge: true},
	} {
		assert.Equal(t, tc.lt, c.less(tc.a, tc.b), "%d < %d", tc.a, tc.b)
		assert.Equal(t, tc.le, c.lessOrEqual(tc.a, tc.b), "%d <= %d", tc.a, tc.b)
		assert.Equal(t, tc.gt, c.greater(tc.a, tc.b), "%d > %d", tc.a, tc.b)
		assert.Equal(t, tc.ge, c.greaterOrEqual(tc.a, tc.b), "%d >= %d", tc.a, tc.b)
		assert.Equal(t, tc.eq, c.equal(tc.a, tc.b), "%d == %d", tc.a, tc.b)
	}

	require.NoError(t, c.check(4))
	require.ErrorIs(t, comparer[any]{ord: Ints()}.check("4"), ErrInvalidKey)
}

func TestBytesTree(t *testing.T) {
	t.Parallel()

	tree := New[[]byte, []byte](Bytes(), WithInvariantChecks())
	for _, w := range []string{"pear", "apple", "fig", "kiwi", "banana", "cherry", "date"} {
		require.NoError(t, tree.Insert([]byte(w), []byte(strings.ToUpper(w))))
	}
	val, err := tree.Find([]byte("kiwi"))
	require.NoError(t, err)
	assert.Equal(t, "KIWI", string(val))

	require.ErrorIs(t, tree.Insert(nil, []byte("x")), ErrInvalidKey)
	_, err = tree.Find([]byte("plum"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFuncTreeReverseOrder(t *testing.T) {
	t.Parallel()

	tree := New[int, int](Func(func(a, b int) bool { return a > b }), WithInvariantChecks())
	for k := 1; k <= 20; k++ {
		require.NoError(t, tree.Insert(k, k*k))
	}
	var keys []int
	tree.Ascend(func(k, _ int) bool {
		keys = append(keys, k)
		return len(keys) < 3
	})
	assert.Equal(t, []int{20, 19, 18}, keys)

	val, err := tree.Find(9)
	require.NoError(t, err)
	assert.Equal(t, 81, val)
}
