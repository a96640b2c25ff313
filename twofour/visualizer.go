package twofour

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	rootColor     = color.New(color.FgMagenta, color.Bold)
	internalColor = color.New(color.FgCyan)
	leafColor     = color.New(color.FgGreen)
)

// Visualizer prints a tree one node per line, children indented four spaces
// under their parent. Colour follows fatih/color, so it switches off with
// color.NoColor or when stdout is not a terminal.
type Visualizer[K, V any] struct {
	Tree *Tree[K, V]
}

func (v *Visualizer[K, V]) Visualize() string {
	if v.Tree == nil || v.Tree.root == nil {
		return "The tree is empty"
	}
	var lines []string
	var walk func(n *node[K, V], depth int)
	walk = func(n *node[K, V], depth int) {
		keys := make([]string, n.numItems)
		for i := range keys {
			keys[i] = fmt.Sprint(n.items[i].key)
		}
		c := internalColor
		switch {
		case depth == 0:
			c = rootColor
		case n.isLeaf():
			c = leafColor
		}
		lines = append(lines, strings.Repeat(" ", 4*depth)+c.Sprint(strings.Join(keys, " ")))
		for i := 0; i <= n.numItems; i++ {
			if child := n.children[i]; child != nil {
				walk(child, depth+1)
			}
		}
	}
	walk(v.Tree.root, 0)
	return strings.Join(lines, "\n")
}
