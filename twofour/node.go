package twofour

import "github.com/cockroachdb/errors"

const (
	maxItems    = 3
	maxChildren = maxItems + 1
)

type node[K, V any] struct {
	// one spare slot each so a node can hold the fourth item (and fifth child)
	// between an insert and the split that resolves it.
	items    [maxItems + 1]*Item[K, V]
	children [maxChildren + 1]*node[K, V]
	numItems int
	// parent is a back-link only. It is written by setChildAt and nowhere else.
	parent *node[K, V]
}

func (n *node[K, V]) isLeaf() bool {
	return n.children[0] == nil
}

func (n *node[K, V]) overflowed() bool {
	return n.numItems > maxItems
}

func (n *node[K, V]) itemCount() int {
	return n.numItems
}

// itemAt requires 0 <= i < itemCount().
func (n *node[K, V]) itemAt(i int) *Item[K, V] {
	if i < 0 || i >= n.numItems {
		panic(errors.AssertionFailedf("item index %d out of range [0,%d)", i, n.numItems))
	}
	return n.items[i]
}

// childAt requires 0 <= i <= itemCount(). Leaves return nil.
func (n *node[K, V]) childAt(i int) *node[K, V] {
	if i < 0 || i > n.numItems {
		panic(errors.AssertionFailedf("child index %d out of range [0,%d]", i, n.numItems))
	}
	return n.children[i]
}

// setChildAt links child into slot i and points its parent back at n.
func (n *node[K, V]) setChildAt(i int, child *node[K, V]) {
	n.children[i] = child
	if child != nil {
		child.parent = n
	}
}

/*
insertItemAt places item at pos and shifts the items after it one slot right.
Child pointers shift with them: the child that was at pos ends up at pos+1 and
slot pos is left empty for the caller to fill with setChildAt.
*/
func (n *node[K, V]) insertItemAt(pos int, item *Item[K, V]) {
	if n.numItems > maxItems {
		panic(errors.AssertionFailedf("insert into node already holding %d items", n.numItems))
	}
	copy(n.items[pos+1:n.numItems+1], n.items[pos:n.numItems])
	n.items[pos] = item
	copy(n.children[pos+1:n.numItems+2], n.children[pos:n.numItems+1])
	n.children[pos] = nil
	n.numItems++
}

// removeItemAt undoes insertItemAt: item pos and child slot pos are dropped and
// everything to their right moves one slot left.
func (n *node[K, V]) removeItemAt(pos int) *Item[K, V] {
	item := n.itemAt(pos)
	copy(n.items[pos:n.numItems-1], n.items[pos+1:n.numItems])
	n.items[n.numItems-1] = nil
	copy(n.children[pos:n.numItems], n.children[pos+1:n.numItems+1])
	n.children[n.numItems] = nil
	n.numItems--
	return item
}

// search returns the first index whose key is >= key, or itemCount() when
// every key in n is smaller. That index is also the child to descend into.
func (n *node[K, V]) search(c comparer[K], key K) int {
	i := 0
	for ; i < n.numItems; i++ {
		if c.greaterOrEqual(n.items[i].key, key) {
			return i
		}
	}
	return i
}

// childIndex returns the slot of n in its parent. A parent that does not hold
// n means the back-links are corrupt.
func (n *node[K, V]) childIndex() int {
	p := n.parent
	for i := 0; i <= p.numItems; i++ {
		if p.children[i] == n {
			return i
		}
	}
	panic(errors.AssertionFailedf("unable to locate child node in parent node"))
}
