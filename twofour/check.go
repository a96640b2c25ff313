package twofour

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
)

type bound[K any] struct {
	key K
	set bool
}

type checker[K, V any] struct {
	cmp       comparer[K]
	seen      map[*node[K, V]]bool
	leafDepth int
	items     int
}

/*
Check walks the whole tree and reports the first structural fault it finds:
item counts outside 1..3, keys out of order, a node with some but not all of its
children, leaves at different depths, a child whose keys escape the separators
around it, a parent link that disagrees with the child slot holding the node,
a node linked twice, or a size that does not match the items stored.

Equal neighbouring keys are accepted since duplicates may coexist, so the bounds
around each child are inclusive.
*/
func (t *Tree[K, V]) Check() error {
	if t.root == nil {
		if t.size != 0 {
			return errors.Newf("empty tree reports size %d", t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return errors.New("root has a parent")
	}
	c := &checker[K, V]{cmp: t.cmp, seen: map[*node[K, V]]bool{}, leafDepth: -1}
	if err := c.walk(t.root, 0, bound[K]{}, bound[K]{}); err != nil {
		return err
	}
	if c.items != t.size {
		return errors.Newf("tree holds %d items but reports size %d", c.items, t.size)
	}
	return nil
}

func (c *checker[K, V]) walk(n *node[K, V], depth int, lo, hi bound[K]) error {
	if c.seen[n] {
		return errors.Newf("node %s is linked more than once", n)
	}
	c.seen[n] = true

	if n.numItems < 1 || n.numItems > maxItems {
		return errors.Newf("node %s holds %d items", n, n.numItems)
	}
	c.items += n.numItems

	for i := 0; i < n.numItems; i++ {
		k := n.items[i].key
		if i > 0 && c.cmp.less(k, n.items[i-1].key) {
			return errors.Newf("node %s keys out of order at %d", n, i)
		}
		if lo.set && !c.cmp.lessOrEqual(lo.key, k) {
			return errors.Newf("node %s key %v below separator %v", n, k, lo.key)
		}
		if hi.set && c.cmp.greater(k, hi.key) {
			return errors.Newf("node %s key %v above separator %v", n, k, hi.key)
		}
	}
	for i := n.numItems; i < len(n.items); i++ {
		if n.items[i] != nil {
			return errors.Newf("node %s has a stale item in slot %d", n, i)
		}
	}

	if n.isLeaf() {
		for i, child := range n.children {
			if child != nil {
				return errors.Newf("leaf %s has child in slot %d", n, i)
			}
		}
		if c.leafDepth < 0 {
			c.leafDepth = depth
		} else if c.leafDepth != depth {
			return errors.Newf("leaf %s at depth %d, expected %d", n, depth, c.leafDepth)
		}
		return nil
	}

	for i := n.numItems + 1; i < len(n.children); i++ {
		if n.children[i] != nil {
			return errors.Newf("node %s has %d items but a child in slot %d", n, n.numItems, i)
		}
	}
	for i := 0; i <= n.numItems; i++ {
		child := n.children[i]
		if child == nil {
			return errors.Newf("node %s is missing child %d", n, i)
		}
		if child.parent != n {
			return errors.Newf("child %d of %s does not point back at it", i, n)
		}
		clo, chi := lo, hi
		if i > 0 {
			clo = bound[K]{key: n.items[i-1].key, set: true}
		}
		if i < n.numItems {
			chi = bound[K]{key: n.items[i].key, set: true}
		}
		if err := c.walk(child, depth+1, clo, chi); err != nil {
			return err
		}
	}
	return nil
}

// String renders the shape of the tree on one line: each node in brackets with
// its children interleaved between its keys, e.g. [[16 22] 47 [83]].
func (t *Tree[K, V]) String() string {
	if t.root == nil {
		return "<empty>"
	}
	var sb strings.Builder
	t.root.write(&sb)
	return sb.String()
}

func (n *node[K, V]) String() string {
	keys := make([]string, n.numItems)
	for i := range keys {
		keys[i] = fmt.Sprint(n.items[i].key)
	}
	return "[" + strings.Join(keys, " ") + "]"
}

func (n *node[K, V]) write(sb *strings.Builder) {
	sb.WriteByte('[')
	for i := 0; i <= n.numItems; i++ {
		if c := n.children[i]; c != nil {
			if i > 0 {
				sb.WriteByte(' ')
			}
			c.write(sb)
		}
		if i < n.numItems {
			if i > 0 || n.children[0] != nil {
				sb.WriteByte(' ')
			}
			fmt.Fprint(sb, n.items[i].key)
		}
	}
	sb.WriteByte(']')
}

// Fingerprint hashes the shape reported by String. Two trees built by the same
// insert sequence share a fingerprint.
func (t *Tree[K, V]) Fingerprint() uint64 {
	return xxhash.Sum64String(t.String())
}
