package editor

import (
	"fmt"
	"strings"

	graphemeutil "github.com/iw2rmb/scriptline/internal/grapheme"
)

// cell is one grapheme cluster (or tab expansion) on screen.
type cell struct {
	text  string
	width int
	kind  cellKind
}

type screenRow []cell

func (r screenRow) width() int {
	w := 0
	for _, c := range r {
		w += c.width
	}
	return w
}

func (m *Model) renderContent() string {
	rows := m.layoutRows()
	rows = m.overlayCompletion(rows)

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, m.renderRow(r))
	}
	return strings.Join(out, "\n")
}

// layoutRows lays out every logical line, gutter and caret included.
func (m *Model) layoutRows() []screenRow {
	lines := strings.Split(m.buf.Text(), "\n")
	caret, _ := m.buf.PosFromOffset(m.buf.Caret())
	digits := len(fmt.Sprint(len(lines)))

	rows := make([]screenRow, 0, len(lines))
	for i, line := range lines {
		var row screenRow
		if m.cfg.ShowLineNums {
			kind := cellGutter
			if i == caret.Row {
				kind = cellGutterActive
			}
			num := fmt.Sprintf("%*d ", digits, i+1)
			row = append(row, cell{text: num, width: len(num), kind: kind})
		}

		col := 0
		visual := 0
		for _, cluster := range graphemeutil.Split(line) {
			kind := cellText
			if m.focused && i == caret.Row && col == caret.Col {
				kind = cellCursor
			}
			w := graphemeutil.Width(cluster, visual, m.cfg.TabWidth)
			text := cluster
			if cluster == "\t" {
				text = strings.Repeat(" ", w)
			}
			row = append(row, cell{text: text, width: w, kind: kind})
			col += len([]rune(cluster))
			visual += w
		}
		if m.focused && i == caret.Row && caret.Col >= col {
			row = append(row, cell{text: " ", width: 1, kind: cellCursor})
		}
		rows = append(rows, row)
	}
	return rows
}

func (m *Model) gutterWidth(lineCount int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return len(fmt.Sprint(lineCount)) + 1
}

// renderRow styles runs of cells sharing a kind.
func (m *Model) renderRow(r screenRow) string {
	var sb strings.Builder
	for i := 0; i < len(r); {
		j := i
		var run strings.Builder
		for j < len(r) && r[j].kind == r[i].kind {
			run.WriteString(r[j].text)
			j++
		}
		sb.WriteString(m.cfg.Style.forKind(r[i].kind).Render(run.String()))
		i = j
	}
	return sb.String()
}

func (m *Model) renderStatus() string {
	var sb strings.Builder
	sb.WriteString(m.doc.Title())
	if m.doc.IsDirty() {
		sb.WriteString(" [+]")
	}
	if !m.doc.Enabled() {
		sb.WriteString(" (running)")
	}
	status := m.cfg.Style.Status.Render(sb.String())
	if m.err != nil {
		status += " " + m.cfg.Style.StatusError.Render(m.err.Error())
	}
	return status
}
