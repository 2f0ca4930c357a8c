package nav

// Key is an abstract key event. Hosts map raw input onto these values;
// anything unrecognised is KeyOther and changes nothing.
type Key int

const (
	KeyOther Key = iota
	KeyMoveUp
	KeyMoveDown
	KeyActivate
)

func (k Key) String() string {
	switch k {
	case KeyMoveUp:
		return "move-up"
	case KeyMoveDown:
		return "move-down"
	case KeyActivate:
		return "activate"
	default:
		return "other"
	}
}

// RowKind tells a renderer how to style a row.
type RowKind int

const (
	RowUp RowKind = iota
	RowBranch
	RowLeaf
)

func (k RowKind) String() string {
	switch k {
	case RowUp:
		return "up"
	case RowBranch:
		return "branch"
	default:
		return "leaf"
	}
}

// Row is one visible line of the current menu level.
type Row struct {
	Label string
	Kind  RowKind
}

// Rows returns the visible rows of the current node in display order.
func (n *Navigator) Rows() []Row {
	current := n.Current()
	children := n.tree.Children(current)
	rows := make([]Row, 0, len(children)+1)
	if !n.AtRoot() {
		rows = append(rows, Row{Label: UpLabel, Kind: RowUp})
	}
	for _, child := range children {
		kind := RowLeaf
		if !n.tree.IsLeaf(child) {
			kind = RowBranch
		}
		rows = append(rows, Row{Label: n.tree.Name(child), Kind: kind})
	}
	return rows
}
