// Package nav implements the menu navigation state machine. A Navigator
// tracks the path from the root of an immutable menu.Tree to the current
// node together with a cursor over the current node's visible rows, and turns
// key events into cursor moves, descents, ascents, or a command to run.
//
// Below the root, row 0 is a synthetic ".." row that ascends one level, so
// child i is shown at row i+1. At the root there is no such row and child i
// is row i. All operations assume the invariants hold (the path is never
// empty, the cursor is always a valid row); a violation is a programming
// error and panics rather than being repaired.
package nav

import (
	"fmt"

	"github.com/atomicstack/runmenu/internal/logging/events"
	"github.com/atomicstack/runmenu/internal/menu"
)

// UpLabel is the label of the synthetic row that ascends one level.
const UpLabel = ".."

// Navigator owns the navigation state for one menu session. It is not safe
// for concurrent use; the tree it reads may be shared.
type Navigator struct {
	tree   *menu.Tree
	path   []menu.NodeID
	cursor int
}

// New starts a navigator at the root of tree with the cursor on row 0.
func New(tree *menu.Tree) *Navigator {
	if tree == nil {
		panic("nav: nil menu tree")
	}
	if len(tree.Children(tree.Root())) == 0 {
		panic("nav: menu root has no entries")
	}
	return &Navigator{
		tree: tree,
		path: []menu.NodeID{tree.Root()},
	}
}

// Tree returns the menu the navigator walks.
func (n *Navigator) Tree() *menu.Tree {
	return n.tree
}

// Cursor returns the highlighted row index.
func (n *Navigator) Cursor() int {
	return n.cursor
}

// Path returns a copy of the node identifiers from the root to the current node.
func (n *Navigator) Path() []menu.NodeID {
	return append([]menu.NodeID(nil), n.path...)
}

// Depth returns the number of levels below the root.
func (n *Navigator) Depth() int {
	return len(n.path) - 1
}

// AtRoot reports whether the current node is the root.
func (n *Navigator) AtRoot() bool {
	return len(n.path) == 1
}

// Current returns the node whose children are on screen.
func (n *Navigator) Current() menu.NodeID {
	if len(n.path) == 0 {
		panic("nav: empty path")
	}
	return n.path[len(n.path)-1]
}

// Breadcrumb returns the labels of the nodes below the root on the current path.
func (n *Navigator) Breadcrumb() []string {
	if len(n.path) <= 1 {
		return nil
	}
	labels := make([]string, 0, len(n.path)-1)
	for _, id := range n.path[1:] {
		labels = append(labels, n.tree.Name(id))
	}
	return labels
}

// RowCount returns the number of visible rows for the current node.
func (n *Navigator) RowCount() int {
	count := len(n.tree.Children(n.Current()))
	if !n.AtRoot() {
		count++
	}
	return count
}

// MoveUp moves the cursor one row up, stopping at the first row. It reports
// whether the cursor changed.
func (n *Navigator) MoveUp() bool {
	n.mustBeValid()
	if n.cursor == 0 {
		return false
	}
	n.cursor--
	events.Nav.Cursor(n.tree.Name(n.Current()), n.cursor)
	return true
}

// MoveDown moves the cursor one row down, stopping at the last row. It
// reports whether the cursor changed.
func (n *Navigator) MoveDown() bool {
	n.mustBeValid()
	last := len(n.tree.Children(n.Current())) - 1
	if !n.AtRoot() {
		// the ".." row shifts every child down by one
		last++
	}
	if n.cursor >= last {
		return false
	}
	n.cursor++
	events.Nav.Cursor(n.tree.Name(n.Current()), n.cursor)
	return true
}

// Descend enters the branch at child position i of the current node and
// resets the cursor. i is a child index, not a row index.
func (n *Navigator) Descend(i int) {
	n.mustBeValid()
	from := n.Current()
	child := n.tree.Child(from, i)
	if n.tree.IsLeaf(child) {
		panic(fmt.Sprintf("nav: cannot descend into leaf %q", n.tree.Name(child)))
	}
	n.path = append(n.path, child)
	n.cursor = 0
	events.Nav.Descend(n.tree.Name(from), n.tree.Name(child), n.Depth())
}

// Ascend returns to the parent of the current node and resets the cursor.
func (n *Navigator) Ascend() {
	n.mustBeValid()
	if n.AtRoot() {
		panic("nav: cannot ascend above the root")
	}
	from := n.Current()
	n.path = n.path[:len(n.path)-1]
	n.cursor = 0
	events.Nav.Ascend(n.tree.Name(from), n.tree.Name(n.Current()), n.Depth())
}

// Activate acts on the highlighted row: the ".." row ascends, a branch is
// descended into, and a leaf yields its command. Activating a leaf leaves the
// position and cursor untouched.
func (n *Navigator) Activate() (string, bool) {
	n.mustBeValid()
	if !n.AtRoot() && n.cursor == 0 {
		events.Nav.Activate(n.tree.Name(n.Current()), UpLabel)
		n.Ascend()
		return "", false
	}
	idx := n.childIndex()
	child := n.tree.Child(n.Current(), idx)
	events.Nav.Activate(n.tree.Name(n.Current()), n.tree.Name(child))
	if !n.tree.IsLeaf(child) {
		n.Descend(idx)
		return "", false
	}
	return n.tree.Node(child).Command, true
}

// HandleKey applies a key event and returns the command to run, if any.
func (n *Navigator) HandleKey(k Key) (string, bool) {
	switch k {
	case KeyMoveUp:
		n.MoveUp()
	case KeyMoveDown:
		n.MoveDown()
	case KeyActivate:
		return n.Activate()
	}
	return "", false
}

// childIndex maps the cursor to a position among the current node's children.
func (n *Navigator) childIndex() int {
	if n.AtRoot() {
		return n.cursor
	}
	return n.cursor - 1
}

func (n *Navigator) mustBeValid() {
	if len(n.path) == 0 {
		panic("nav: empty path")
	}
	if rows := n.RowCount(); n.cursor < 0 || n.cursor >= rows {
		panic(fmt.Sprintf("nav: cursor %d out of range [0,%d) at %q", n.cursor, rows, n.tree.Name(n.Current())))
	}
}
