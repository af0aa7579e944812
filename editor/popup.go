package editor

import (
	"strings"

	"github.com/iw2rmb/scriptline/completion"
	graphemeutil "github.com/iw2rmb/scriptline/internal/grapheme"
)

// overlayCompletion draws the open session over rows, anchored at the start
// of the replace range. The popup goes below the anchor line when it fits
// in the visible window, otherwise on whichever side has more room.
// Blank rows are appended when the popup runs past the last line.
func (m *Model) overlayCompletion(rows []screenRow) []screenRow {
	state := m.ctrl.State()
	if state.Status != completion.Open || len(state.Items) == 0 {
		return rows
	}
	viewW, viewH := m.viewport.Width, m.viewport.Height
	if viewW <= 0 || viewH <= 0 {
		return rows
	}

	anchor, ok := m.buf.PosFromOffset(state.Range.Offset)
	if !ok {
		return rows
	}
	top := m.viewport.YOffset
	if anchor.Row < top || anchor.Row >= top+viewH {
		return rows
	}

	below := top + viewH - anchor.Row - 1
	above := anchor.Row - top
	want := minInt(len(state.Items), m.cfg.CompletionMaxVisibleRows)

	var y, n int
	switch {
	case want <= below:
		y, n = anchor.Row+1, want
	case above > below:
		n = minInt(want, above)
		y = anchor.Row - n
	default:
		y, n = anchor.Row+1, below
	}
	if n <= 0 {
		return rows
	}

	first := windowStart(state.Selected, len(state.Items), n)
	items := state.Items[first : first+n]

	width := minInt(popupWidth(items, m.cfg.TabWidth), minInt(m.cfg.CompletionMaxWidth, viewW))
	if width <= 0 {
		return rows
	}

	lineStart := state.Range.Offset - anchor.Col
	x := m.gutterWidth(len(rows)) + graphemeutil.StringWidth(m.buf.Slice(lineStart, state.Range.Offset), m.cfg.TabWidth)
	if x+width > viewW {
		x = maxInt(viewW-width, 0)
	}

	for len(rows) < y+n {
		rows = append(rows, nil)
	}
	for i, it := range items {
		rows[y+i] = spliceRow(rows[y+i], x, m.popupRow(it, first+i == state.Selected, width))
	}
	return rows
}

// windowStart returns the first visible index of a window of size n that
// keeps selected in view.
func windowStart(selected, total, n int) int {
	if total <= n {
		return 0
	}
	start := selected - n + 1
	if start < 0 {
		start = 0
	}
	if start > total-n {
		start = total - n
	}
	return start
}

func popupWidth(items []completion.Item, tabWidth int) int {
	w := 0
	for _, it := range items {
		w = maxInt(w, graphemeutil.StringWidth(popupText(it), tabWidth))
	}
	return w
}

func popupText(it completion.Item) string {
	if it.Detail == "" {
		return " " + it.Label + " "
	}
	return " " + it.Label + "  " + it.Detail + " "
}

// popupRow lays out one popup line exactly width cells wide.
func (m *Model) popupRow(it completion.Item, selected bool, width int) screenRow {
	label := " " + it.Label + " "
	labelKind, detailKind := cellPopupItem, cellPopupDetail
	if selected {
		labelKind, detailKind = cellPopupSelected, cellPopupSelected
	}

	var row screenRow
	used := 0
	put := func(text string, kind cellKind) {
		text = graphemeutil.Truncate(text, width-used, m.cfg.TabWidth)
		if text == "" {
			return
		}
		w := graphemeutil.StringWidth(text, m.cfg.TabWidth)
		row = append(row, cell{text: text, width: w, kind: kind})
		used += w
	}
	put(label, labelKind)
	if it.Detail != "" {
		put(" "+it.Detail+" ", detailKind)
	}
	if used < width {
		row = append(row, cell{text: strings.Repeat(" ", width-used), width: width - used, kind: detailKind})
	}
	return row
}

// spliceRow writes patch over dst starting at visual column x. Wide cells
// cut by either edge become spaces so columns stay aligned.
func spliceRow(dst screenRow, x int, patch screenRow) screenRow {
	end := x + patch.width()
	out := make(screenRow, 0, len(dst)+len(patch)+2)

	col := 0
	i := 0
	for ; i < len(dst) && col+dst[i].width <= x; i++ {
		out = append(out, dst[i])
		col += dst[i].width
	}
	if i < len(dst) && col < x {
		out = append(out, blankCell(x-col, dst[i].kind))
		col = x
	}
	if col < x {
		out = append(out, blankCell(x-col, cellText))
	}
	out = append(out, patch...)

	col = 0
	for _, c := range dst {
		next := col + c.width
		switch {
		case next <= end:
		case col >= end:
			out = append(out, c)
		default:
			out = append(out, blankCell(next-end, c.kind))
		}
		col = next
	}
	return out
}

func blankCell(width int, kind cellKind) cell {
	if kind == cellCursor {
		kind = cellText
	}
	return cell{text: strings.Repeat(" ", width), width: width, kind: kind}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
