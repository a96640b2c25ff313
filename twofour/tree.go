package twofour

import "github.com/cockroachdb/errors"

/*
Tree is a 2-4 tree: every node holds 1 to 3 items and one more child than items,
and all leaves sit at the same depth.
Tree only keeps a pointer to its root node and the number of items stored.

A Tree is not safe for concurrent use. A split may rewrite links on every node
from a leaf up to the root, so callers sharing a Tree must serialize all access
to the whole tree, not to individual nodes.
*/
type Tree[K, V any] struct {
	root *node[K, V]
	size int
	cmp  comparer[K]
	opts Options
}

func New[K, V any](ord Ordering[K], opts ...Option) *Tree[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[K, V]{cmp: comparer[K]{ord: ord}, opts: o}
}

func (t *Tree[K, V]) Size() int {
	return t.size
}

func (t *Tree[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Height is the number of nodes on any root-to-leaf path; 0 for an empty tree.
func (t *Tree[K, V]) Height() int {
	h := 0
	for n := t.root; n != nil; n = n.children[0] {
		h++
	}
	return h
}

/*
Find returns the value stored under key.
At each node the first item with a key >= key either matches, or its left child
is the only subtree that can hold key. Falling off the bottom means the key is absent.
*/
func (t *Tree[K, V]) Find(key K) (V, error) {
	var zero V
	if err := t.cmp.check(key); err != nil {
		t.opts.logger.Warn("find rejected key", "key", key)
		return zero, err
	}
	for next := t.root; next != nil; {
		pos := next.search(t.cmp, key)
		if pos < next.numItems && t.cmp.equal(next.items[pos].key, key) {
			return next.items[pos].val, nil
		}
		next = next.children[pos]
	}
	return zero, errors.Wrapf(ErrNotFound, "%v", key)
}

/*
Insert adds an item for key. It never replaces an existing item: inserting a key
that is already present stores a second item beside the first, and Find keeps
returning whichever one it reaches first on the way down.

The new item always lands in a leaf. If that leaf now holds four items it is
split, and the split repeats on each ancestor pushed to four items in turn.
*/
func (t *Tree[K, V]) Insert(key K, val V) error {
	if err := t.cmp.check(key); err != nil {
		t.opts.logger.Warn("insert rejected key", "key", key)
		return err
	}

	// The tree is empty, so initialize a new leaf as the root.
	if t.root == nil {
		t.root = &node[K, V]{}
	}

	// Descend without stopping on equal keys until the chosen child is missing.
	var (
		leaf *node[K, V]
		pos  int
	)
	for next := t.root; next != nil; next = next.children[pos] {
		leaf = next
		pos = next.search(t.cmp, key)
	}
	leaf.insertItemAt(pos, newItem(key, val))
	t.size++

	for n := leaf; n != nil && n.overflowed(); {
		n = t.split(n)
	}

	if t.opts.checkInvariants {
		if err := t.Check(); err != nil {
			t.opts.logger.Error("invariant check failed after insert", "key", key, "error", err)
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "tree corrupted by insert"))
		}
	}
	return nil
}

/*
split resolves an overflowed node holding items a b c d (and, if internal,
children c0..c4). c moves up into the parent, d moves into a new right sibling
together with c3 and c4, and n keeps a b with c0 c1 c2:

	        [.. c ..]
	        /       \
	  [a b]           [d]
	 /  |  \         /   \
	c0  c1  c2      c3    c4

A root split creates a new root above n; this is the only way the tree grows.
split returns the parent, which may now be overflowed itself.
*/
func (t *Tree[K, V]) split(n *node[K, V]) *node[K, V] {
	if n.numItems != maxItems+1 {
		panic(errors.AssertionFailedf("split of node holding %d items", n.numItems))
	}

	sibling := &node[K, V]{}
	sibling.insertItemAt(0, n.items[3])
	sibling.setChildAt(0, n.children[3])
	sibling.setChildAt(1, n.children[4])

	median := n.items[2]
	third := n.children[2]
	n.removeItemAt(2)
	n.removeItemAt(2)
	n.setChildAt(2, third)

	parent, pos := n.parent, 0
	if parent == nil {
		parent = &node[K, V]{}
		t.root = parent
	} else {
		pos = n.childIndex()
	}
	parent.insertItemAt(pos, median)
	parent.setChildAt(pos, n)
	parent.setChildAt(pos+1, sibling)

	if parent.numItems == 1 {
		t.opts.logger.Debug("split root", "median", median.key, "height", t.Height(), "size", t.size)
	} else {
		t.opts.logger.Debug("split node", "median", median.key, "pos", pos, "parentItems", parent.numItems)
	}
	return parent
}

// Remove is not implemented. Every call fails with ErrNotFound once the key
// has been validated, and the tree is left untouched.
func (t *Tree[K, V]) Remove(key K) (V, error) {
	var zero V
	if err := t.cmp.check(key); err != nil {
		t.opts.logger.Warn("remove rejected key", "key", key)
		return zero, err
	}
	t.opts.logger.Warn("remove is not supported", "key", key)
	return zero, errors.WithHint(errors.Wrapf(ErrNotFound, "%v", key), "removal is not implemented for this tree")
}

// Ascend calls fn for every item in key order until fn returns false.
func (t *Tree[K, V]) Ascend(fn func(key K, val V) bool) {
	if t.root != nil {
		t.root.ascend(fn)
	}
}

func (n *node[K, V]) ascend(fn func(key K, val V) bool) bool {
	for i := 0; i < n.numItems; i++ {
		if c := n.children[i]; c != nil && !c.ascend(fn) {
			return false
		}
		if !fn(n.items[i].key, n.items[i].val) {
			return false
		}
	}
	if c := n.children[n.numItems]; c != nil {
		return c.ascend(fn)
	}
	return true
}
