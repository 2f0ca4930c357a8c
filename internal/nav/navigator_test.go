package nav

import (
	"math/rand"
	"testing"

	"github.com/atomicstack/runmenu/internal/menu"
	"github.com/stretchr/testify/require"
)

// root -> [A(leaf "cmd1"), B -> [C(leaf "cmd2")]]
func scenarioTree(t *testing.T) *menu.Tree {
	t.Helper()
	tree, err := menu.Build(menu.Spec{Items: []menu.ItemSpec{
		{Name: "A", Command: "cmd1"},
		{Name: "B", Items: []menu.ItemSpec{{Name: "C", Command: "cmd2"}}},
	}})
	require.NoError(t, err)
	return tree
}

func deepTree(t *testing.T) *menu.Tree {
	t.Helper()
	tree, err := menu.Build(menu.Spec{Items: []menu.ItemSpec{
		{Name: "one", Command: "echo one"},
		{Name: "two", Items: []menu.ItemSpec{
			{Name: "two-a", Command: "echo 2a"},
			{Name: "two-b", Items: []menu.ItemSpec{
				{Name: "two-b-x", Command: "echo 2bx"},
				{Name: "two-b-y", Command: "echo 2by"},
			}},
			{Name: "two-c", Command: "echo 2c"},
		}},
		{Name: "three", Command: "echo three"},
		{Name: "four", Items: []menu.ItemSpec{{Name: "four-a", Command: "echo 4a"}}},
	}})
	require.NoError(t, err)
	return tree
}

func TestNewStartsAtRoot(t *testing.T) {
	tree := scenarioTree(t)
	n := New(tree)
	require.Equal(t, []menu.NodeID{tree.Root()}, n.Path())
	require.Equal(t, 0, n.Cursor())
	require.True(t, n.AtRoot())
	require.Equal(t, 0, n.Depth())
	require.Nil(t, n.Breadcrumb())
}

func TestNewRejectsNilTree(t *testing.T) {
	require.Panics(t, func() { New(nil) })
}

func TestScenarioWalkthrough(t *testing.T) {
	tree := scenarioTree(t)
	n := New(tree)

	cmd, ok := n.HandleKey(KeyMoveDown)
	require.False(t, ok)
	require.Empty(t, cmd)
	require.Equal(t, 1, n.Cursor())

	n.HandleKey(KeyMoveDown)
	require.Equal(t, 1, n.Cursor(), "cursor clamps at the last root child")

	_, ok = n.HandleKey(KeyActivate)
	require.False(t, ok)
	b := tree.Child(tree.Root(), 1)
	require.Equal(t, []menu.NodeID{tree.Root(), b}, n.Path())
	require.Equal(t, 0, n.Cursor())
	require.Equal(t, []Row{{Label: "..", Kind: RowUp}, {Label: "C", Kind: RowLeaf}}, n.Rows())
	require.Equal(t, []string{"B"}, n.Breadcrumb())

	n.HandleKey(KeyMoveDown)
	require.Equal(t, 1, n.Cursor())
	n.HandleKey(KeyMoveDown)
	require.Equal(t, 1, n.Cursor(), "cursor clamps at row_count-1 below the root")

	cmd, ok = n.HandleKey(KeyActivate)
	require.True(t, ok)
	require.Equal(t, "cmd2", cmd)
	require.Equal(t, []menu.NodeID{tree.Root(), b}, n.Path())
	require.Equal(t, 1, n.Cursor())
}

func TestActivateUpRowAscends(t *testing.T) {
	tree := scenarioTree(t)
	n := New(tree)
	n.Descend(1)
	require.Equal(t, 0, n.Cursor())

	cmd, ok := n.HandleKey(KeyActivate)
	require.False(t, ok)
	require.Empty(t, cmd)
	require.Equal(t, []menu.NodeID{tree.Root()}, n.Path())
	require.Equal(t, 0, n.Cursor())
}

func TestRootHasNoUpRow(t *testing.T) {
	tree := scenarioTree(t)
	n := New(tree)
	rows := n.Rows()
	require.Equal(t, []Row{{Label: "A", Kind: RowLeaf}, {Label: "B", Kind: RowBranch}}, rows)
	require.Equal(t, 2, n.RowCount())

	cmd, ok := n.Activate()
	require.True(t, ok, "row 0 at the root is the first real child")
	require.Equal(t, "cmd1", cmd)
	require.True(t, n.AtRoot())
}

func TestMoveUpSaturatesAtZero(t *testing.T) {
	n := New(deepTree(t))
	require.False(t, n.MoveUp())
	require.Equal(t, 0, n.Cursor())
	n.MoveDown()
	require.True(t, n.MoveUp())
	require.False(t, n.MoveUp())
	require.Equal(t, 0, n.Cursor())
}

func TestOtherKeyIsNoOp(t *testing.T) {
	tree := deepTree(t)
	n := New(tree)
	n.MoveDown()
	before := n.Path()
	cmd, ok := n.HandleKey(KeyOther)
	require.False(t, ok)
	require.Empty(t, cmd)
	require.Equal(t, before, n.Path())
	require.Equal(t, 1, n.Cursor())
}

func TestDescendResetsCursorAndGrowsPath(t *testing.T) {
	tree := deepTree(t)
	n := New(tree)
	n.MoveDown()
	n.Activate()
	require.Equal(t, 1, n.Depth())
	require.Equal(t, 0, n.Cursor())

	n.MoveDown()
	n.MoveDown()
	n.Activate()
	require.Equal(t, 2, n.Depth())
	require.Equal(t, 0, n.Cursor())
	require.Equal(t, []string{"two", "two-b"}, n.Breadcrumb())
	require.Equal(t, []Row{
		{Label: "..", Kind: RowUp},
		{Label: "two-b-x", Kind: RowLeaf},
		{Label: "two-b-y", Kind: RowLeaf},
	}, n.Rows())
}

func TestAscendThenRedescendRestoresNode(t *testing.T) {
	tree := deepTree(t)
	n := New(tree)
	n.Descend(1)
	n.Descend(1)
	deep := n.Current()
	path := n.Path()

	n.Activate()
	require.Equal(t, 1, n.Depth())
	// two-b is child 1, shown at row 2 below the root
	n.MoveDown()
	n.MoveDown()
	n.Activate()
	require.Equal(t, deep, n.Current())
	require.Equal(t, path, n.Path())
}

func TestInvariantViolationsPanic(t *testing.T) {
	tree := deepTree(t)

	n := New(tree)
	require.Panics(t, func() { n.Ascend() }, "ascend at root")
	require.Panics(t, func() { n.Descend(0) }, "descend into leaf")
	require.Panics(t, func() { n.Descend(9) }, "descend out of range")

	n.cursor = n.RowCount()
	require.Panics(t, func() { n.MoveDown() })
	require.Panics(t, func() { n.Activate() })

	n.cursor = -1
	require.Panics(t, func() { n.MoveUp() })

	n.cursor = 0
	n.path = nil
	require.Panics(t, func() { n.HandleKey(KeyMoveDown) })
}

func TestRandomWalkKeepsInvariants(t *testing.T) {
	tree := deepTree(t)
	n := New(tree)
	rng := rand.New(rand.NewSource(42))
	keys := []Key{KeyMoveUp, KeyMoveDown, KeyActivate, KeyOther}

	for i := 0; i < 5000; i++ {
		path := n.Path()
		cursor := n.Cursor()
		k := keys[rng.Intn(len(keys))]
		cmd, ok := n.HandleKey(k)

		require.NotEmpty(t, n.Path())
		require.GreaterOrEqual(t, n.Cursor(), 0)
		require.Less(t, n.Cursor(), n.RowCount())
		if n.AtRoot() {
			require.LessOrEqual(t, n.Cursor(), len(tree.Children(tree.Root()))-1)
		}

		if ok {
			require.Equal(t, KeyActivate, k)
			require.Equal(t, path, n.Path(), "leaf activation must not navigate")
			require.Equal(t, cursor, n.Cursor(), "leaf activation must not move the cursor")
			require.NotEmpty(t, cmd)
		}
		if k == KeyActivate && !ok {
			diff := len(n.Path()) - len(path)
			require.Contains(t, []int{-1, 1}, diff)
			require.Equal(t, 0, n.Cursor())
		}
	}
}

func TestKeyAndRowKindStrings(t *testing.T) {
	require.Equal(t, "move-up", KeyMoveUp.String())
	require.Equal(t, "move-down", KeyMoveDown.String())
	require.Equal(t, "activate", KeyActivate.String())
	require.Equal(t, "other", KeyOther.String())
	require.Equal(t, "up", RowUp.String())
	require.Equal(t, "branch", RowBranch.String())
	require.Equal(t, "leaf", RowLeaf.String())
}
