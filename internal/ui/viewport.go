package ui

// syncViewport keeps the cursor row inside the visible window of rows.
func (m *Model) syncViewport() {
	m.viewportOffset = ensureVisible(m.nav.Cursor(), m.viewportOffset, m.nav.RowCount(), m.visibleRows())
}

// ensureVisible returns the viewport offset that keeps cursor on screen when
// only maxVisible of total rows fit. maxVisible <= 0 means unlimited.
func ensureVisible(cursor, offset, total, maxVisible int) int {
	if total == 0 || maxVisible <= 0 || total <= maxVisible {
		return 0
	}
	maxOffset := total - maxVisible
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if cursor < offset {
		offset = cursor
	}
	if upper := offset + maxVisible - 1; cursor > upper {
		offset = cursor - maxVisible + 1
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
