package menu

import "fmt"

// NodeID identifies a node within a Tree. IDs are arena indices and are only
// meaningful for the tree that issued them.
type NodeID int

// Node represents a single menu entry. A node is a leaf iff it has no
// children; only leaves carry a command that can be emitted.
type Node struct {
	Name     string
	Command  string
	Children []NodeID
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Tree is an immutable, index-based menu hierarchy. The root is always node 0.
type Tree struct {
	title string
	nodes []Node
}

const rootID NodeID = 0

// Root returns the identifier of the root node.
func (t *Tree) Root() NodeID {
	return rootID
}

// Title returns the display title for the menu.
func (t *Tree) Title() string {
	return t.title
}

// Len returns the number of nodes including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node for id. Unknown identifiers are a programming error.
func (t *Tree) Node(id NodeID) Node {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("menu: node %d out of range [0,%d)", id, len(t.nodes)))
	}
	return t.nodes[id]
}

// Name returns the label of the node.
func (t *Tree) Name(id NodeID) string {
	return t.Node(id).Name
}

// IsLeaf reports whether id has no children.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.Node(id).IsLeaf()
}

// Children returns the ordered child identifiers of id. The returned slice is
// shared with the tree and must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.Node(id).Children
}

// Child resolves the child at position i below parent.
func (t *Tree) Child(parent NodeID, i int) NodeID {
	children := t.Children(parent)
	if i < 0 || i >= len(children) {
		panic(fmt.Sprintf("menu: child index %d out of range for %q (%d children)", i, t.nodes[parent].Name, len(children)))
	}
	return children[i]
}

// Walk visits every node below the root in depth-first order. The path holds
// the labels from the first level down to and including the visited node.
func (t *Tree) Walk(fn func(id NodeID, path []string)) {
	var visit func(id NodeID, path []string)
	visit = func(id NodeID, path []string) {
		for _, child := range t.nodes[id].Children {
			next := append(append([]string(nil), path...), t.nodes[child].Name)
			fn(child, next)
			visit(child, next)
		}
	}
	visit(rootID, nil)
}

// Subtree returns a new tree whose root is id. The title of the new tree is
// the label of id.
func (t *Tree) Subtree(id NodeID) *Tree {
	src := t.Node(id)
	out := &Tree{title: src.Name}
	var copyNode func(from NodeID) NodeID
	copyNode = func(from NodeID) NodeID {
		n := t.nodes[from]
		idx := NodeID(len(out.nodes))
		out.nodes = append(out.nodes, Node{Name: n.Name, Command: n.Command})
		children := make([]NodeID, 0, len(n.Children))
		for _, child := range n.Children {
			children = append(children, copyNode(child))
		}
		out.nodes[idx].Children = children
		return idx
	}
	copyNode(id)
	return out
}
