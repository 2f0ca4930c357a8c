package ui

import (
	"strings"

	"github.com/atomicstack/runmenu/internal/nav"
	"github.com/atomicstack/runmenu/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
	minPopupWidth  = 12
	minPopupHeight = 3
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}
	screenW, screenH := m.screenSize()
	boxW, boxH := m.popupSize()
	innerW, innerH := boxW-2, boxH-2

	lines := m.rowLines(innerW)
	if m.showFooter {
		m.help.Width = innerW
		footer := styles.Footer.Render(ansi.Truncate(m.help.ShortHelpView(m.keys.ShortHelp()), innerW, "…"))
		lines = append(lines, padRight(footer, innerW))
	}
	for len(lines) < innerH {
		lines = append(lines, padRight("", innerW))
	}

	body := styles.Frame.BorderTop(false).Render(strings.Join(lines, "\n"))
	box := lipgloss.JoinVertical(lipgloss.Left, topBorder(m.title(), innerW), body)
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

// rowLines renders the rows inside the viewport, padded to the visible height.
func (m *Model) rowLines(width int) []string {
	rows := m.nav.Rows()
	visible := m.visibleRows()
	start := m.viewportOffset
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}
	lines := make([]string, 0, visible)
	for i := start; i < end; i++ {
		lines = append(lines, renderRow(rows[i], i == m.nav.Cursor(), width))
	}
	for len(lines) < visible {
		lines = append(lines, padRight("", width))
	}
	return lines
}

// padRight fills s with spaces up to width cells so every frame line has the
// same width.
func padRight(s string, width int) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func renderRow(row nav.Row, selected bool, width int) string {
	prefix := strings.Repeat(" ", len(theme.HighlightSymbol))
	if selected {
		prefix = theme.HighlightSymbol
	}
	text := ansi.Truncate(prefix+row.Label, width, "…")
	style := rowStyle(row.Kind)
	if !selected {
		return padRight(style.Render(text), width)
	}
	return styles.Selected.Inherit(style).Render(padRight(text, width))
}

func rowStyle(kind nav.RowKind) lipgloss.Style {
	switch kind {
	case nav.RowUp:
		return *styles.UpRow
	case nav.RowBranch:
		return *styles.Branch
	default:
		return *styles.Leaf
	}
}

// topBorder draws the frame's top edge with the title embedded in it.
func topBorder(title string, innerW int) string {
	border := lipgloss.RoundedBorder()
	edge := lipgloss.NewStyle().Foreground(styles.Frame.GetBorderTopForeground())
	label := ""
	if innerW > 3 && title != "" {
		label = ansi.Truncate(" "+title+" ", innerW-1, "…")
	}
	fill := innerW - 1 - ansi.StringWidth(label)
	if label == "" {
		fill = innerW
	}
	if fill < 0 {
		fill = 0
	}
	var b strings.Builder
	b.WriteString(edge.Render(border.TopLeft))
	if label != "" {
		b.WriteString(edge.Render(border.Top))
		b.WriteString(styles.Title.Render(label))
	}
	b.WriteString(edge.Render(strings.Repeat(border.Top, fill)))
	b.WriteString(edge.Render(border.TopRight))
	return b.String()
}

// title joins the menu title with the labels of the entered sub-menus.
func (m *Model) title() string {
	segments := append([]string{m.nav.Tree().Title()}, m.nav.Breadcrumb()...)
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) screenSize() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = fallbackWidth
	}
	if h <= 0 {
		h = fallbackHeight
	}
	return w, h
}

// popupSize returns the outer size of the floating frame, borders included.
func (m *Model) popupSize() (int, int) {
	screenW, screenH := m.screenSize()
	return scaled(screenW, m.widthPercent, minPopupWidth), scaled(screenH, m.heightPercent, minPopupHeight)
}

func scaled(total, percent, minimum int) int {
	n := total * percent / 100
	if n < minimum {
		n = minimum
	}
	if n > total {
		n = total
	}
	return n
}

// visibleRows is the number of menu rows that fit inside the frame.
func (m *Model) visibleRows() int {
	_, boxH := m.popupSize()
	rows := boxH - 2
	if m.showFooter {
		rows--
	}
	if rows < 1 {
		return 1
	}
	return rows
}
