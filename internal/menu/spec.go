package menu

import (
	"errors"
	"fmt"
	"strings"
)

const defaultTitle = "List"

// ErrInvalidSpec is returned when a menu definition cannot be turned into a tree.
var ErrInvalidSpec = errors.New("invalid menu definition")

// Spec is the static configuration a Tree is built from.
type Spec struct {
	Title string     `yaml:"title"`
	Items []ItemSpec `yaml:"items"`
}

// ItemSpec describes one menu entry. Entries with Items are sub-menus; all
// others are leaves and need either Command or Script.
type ItemSpec struct {
	Name    string     `yaml:"name"`
	Command string     `yaml:"command,omitempty"`
	Script  string     `yaml:"script,omitempty"`
	Items   []ItemSpec `yaml:"items,omitempty"`
}

// Build validates spec and constructs the immutable tree. Script entries must
// already have been resolved into Command by the caller.
func Build(spec Spec) (*Tree, error) {
	if len(spec.Items) == 0 {
		return nil, fmt.Errorf("%w: menu has no items", ErrInvalidSpec)
	}
	title := strings.TrimSpace(spec.Title)
	if title == "" {
		title = defaultTitle
	}
	t := &Tree{title: title, nodes: []Node{{Name: "root"}}}
	children, err := t.addItems(spec.Items, nil)
	if err != nil {
		return nil, err
	}
	t.nodes[rootID].Children = children
	return t, nil
}

func (t *Tree) addItems(items []ItemSpec, parents []string) ([]NodeID, error) {
	ids := make([]NodeID, 0, len(items))
	for i, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: item %d under %q has no name", ErrInvalidSpec, i, itemPath(parents))
		}
		path := append(append([]string(nil), parents...), name)
		if item.Script != "" {
			return nil, fmt.Errorf("%w: %s: script %q was not resolved", ErrInvalidSpec, itemPath(path), item.Script)
		}
		if len(item.Items) == 0 && strings.TrimSpace(item.Command) == "" {
			return nil, fmt.Errorf("%w: %s: leaf has no command", ErrInvalidSpec, itemPath(path))
		}
		id := NodeID(len(t.nodes))
		t.nodes = append(t.nodes, Node{Name: name, Command: item.Command})
		if len(item.Items) > 0 {
			children, err := t.addItems(item.Items, path)
			if err != nil {
				return nil, err
			}
			t.nodes[id].Children = children
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func itemPath(parts []string) string {
	if len(parts) == 0 {
		return "(root)"
	}
	return strings.Join(parts, "/")
}
