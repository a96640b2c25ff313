package twofour

import "fmt"

/*
Item is a key/value association stored in a node slot.
It is immutable once created; splits move the pointer between nodes, they never copy it.
*/
type Item[K, V any] struct {
	key K
	val V
}

func newItem[K, V any](key K, val V) *Item[K, V] {
	return &Item[K, V]{key: key, val: val}
}

func (i *Item[K, V]) Key() K {
	return i.key
}

func (i *Item[K, V]) Value() V {
	return i.val
}

func (i *Item[K, V]) String() string {
	return fmt.Sprintf("%v:%v", i.key, i.val)
}
