package twofour

import (
	"bytes"
	"cmp"

	"github.com/cockroachdb/errors"
)

// Ordering is a total order over keys.
//
// Less must be a strict weak ordering over every key for which Comparable
// returns true. The tree only calls Less on keys that passed Comparable.
type Ordering[K any] interface {
	Less(a, b K) bool
	// Comparable reports whether k belongs to the domain Less is defined on.
	Comparable(k K) bool
}

type natural[K cmp.Ordered] struct{}

// Natural orders keys with the < operator. NaN is rejected since it has no
// place in a total order.
func Natural[K cmp.Ordered]() Ordering[K] {
	return natural[K]{}
}

func (natural[K]) Less(a, b K) bool { return a < b }

// NaN is the only value that is not equal to itself.
func (natural[K]) Comparable(k K) bool { return k == k }

type byteOrder struct{}

// Bytes orders byte slices lexicographically. A nil slice is not a key.
func Bytes() Ordering[[]byte] {
	return byteOrder{}
}

func (byteOrder) Less(a, b []byte) bool { return bytes.Compare(a, b) < 0 }

func (byteOrder) Comparable(k []byte) bool { return k != nil }

type intOrder struct{}

// Ints orders dynamically typed keys that must hold an int. Any other
// dynamic type fails Comparable.
func Ints() Ordering[any] {
	return intOrder{}
}

func (intOrder) Less(a, b any) bool { return a.(int) < b.(int) }

func (intOrder) Comparable(k any) bool {
	_, ok := k.(int)
	return ok
}

type funcOrder[K any] func(a, b K) bool

// Func adapts a less function into an Ordering that accepts every key.
func Func[K any](less func(a, b K) bool) Ordering[K] {
	return funcOrder[K](less)
}

func (f funcOrder[K]) Less(a, b K) bool { return f(a, b) }

func (funcOrder[K]) Comparable(K) bool { return true }

// comparer derives the remaining predicates from Less.
type comparer[K any] struct {
	ord Ordering[K]
}

func (c comparer[K]) check(k K) error {
	if !c.ord.Comparable(k) {
		return errors.Wrapf(ErrInvalidKey, "%v", k)
	}
	return nil
}

func (c comparer[K]) less(a, b K) bool { return c.ord.Less(a, b) }

func (c comparer[K]) lessOrEqual(a, b K) bool { return !c.ord.Less(b, a) }

func (c comparer[K]) greater(a, b K) bool { return c.ord.Less(b, a) }

func (c comparer[K]) greaterOrEqual(a, b K) bool { return !c.ord.Less(a, b) }

func (c comparer[K]) equal(a, b K) bool { return !c.ord.Less(a, b) && !c.ord.Less(b, a) }
