package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"twofour/twofour"
)

type Cli struct {
	scanner    *bufio.Scanner
	out        io.Writer
	tree       *twofour.Tree[int, string]
	visualizer *twofour.Visualizer[int, string]
}

func NewCli(s *bufio.Scanner, out io.Writer, t *twofour.Tree[int, string]) *Cli {
	v := &twofour.Visualizer[int, string]{
		Tree: t,
	}
	return &Cli{scanner: s, out: out, tree: t, visualizer: v}
}

// Start reads commands until EXIT or the end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprint(c.out, `
2-4 Tree CLI

Available Commands:
  SET <key> <val> Insert a key-value pair into the tree (integer keys)
  GET <key>       Retrieve the value for key from the tree
  DEL <key>       Remove a key-value pair from the tree (not supported)
  SIZE            Print the number of stored items
  LIST            Print all items in key order
  PRINT           Print the tree, one node per line
  CHECK           Verify the tree structure
  HASH            Print the fingerprint of the tree shape
  HELP            Print this message
  EXIT            Terminate this session

`)
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

// processInput runs one command line and reports whether to keep reading.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Fprintf(c.out, "Unknown command \"%s\"\n", command)
	case "set":
		c.processSetCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "size":
		fmt.Fprintln(c.out, c.tree.Size())
	case "list":
		c.tree.Ascend(func(key int, val string) bool {
			fmt.Fprintf(c.out, "%d %s\n", key, val)
			return true
		})
	case "print":
		fmt.Fprintln(c.out, c.visualizer.Visualize())
	case "check":
		if err := c.tree.Check(); err != nil {
			fmt.Fprintf(c.out, "Tree is corrupt: %v\n", err)
			return true
		}
		fmt.Fprintln(c.out, "OK")
	case "hash":
		fmt.Fprintf(c.out, "%016x\n", c.tree.Fingerprint())
	case "help":
		c.printHelp()
	case "exit":
		return false
	}
	return true
}

func (c *Cli) parseKey(arg string) (int, bool) {
	key, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid key")
		return 0, false
	}
	return key, true
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "Usage: SET <key> <value>")
		return
	}
	key, ok := c.parseKey(args[0])
	if !ok {
		return
	}
	if err := c.tree.Insert(key, args[1]); err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintln(c.out, c.tree)
	fmt.Fprintln(c.out, c.visualizer.Visualize())
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: DEL <key>")
		return
	}
	key, ok := c.parseKey(args[0])
	if !ok {
		return
	}
	if _, err := c.tree.Remove(key); err != nil {
		if errors.Is(err, twofour.ErrNotFound) {
			fmt.Fprintln(c.out, "Key not found.")
			return
		}
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintln(c.out, c.tree)
	fmt.Fprintln(c.out, c.visualizer.Visualize())
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: GET <key>")
		return
	}
	key, ok := c.parseKey(args[0])
	if !ok {
		return
	}
	val, err := c.tree.Find(key)
	if err != nil {
		if errors.Is(err, twofour.ErrNotFound) {
			fmt.Fprintln(c.out, "Key not found.")
			return
		}
		fmt.Fprintln(c.out, err)
		return
	}
	fmt.Fprintln(c.out, val)
}
