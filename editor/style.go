package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style

	CompletionItem     lipgloss.Style
	CompletionSelected lipgloss.Style
	CompletionDetail   lipgloss.Style

	Status      lipgloss.Style
	StatusError lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	item := lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252"))
	return Style{
		Gutter:             gutter,
		LineNumActive:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:               lipgloss.NewStyle(),
		Cursor:             lipgloss.NewStyle().Reverse(true),
		CompletionItem:     item,
		CompletionSelected: lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("231")),
		CompletionDetail:   item.Copy().Foreground(lipgloss.Color("244")),
		Status:             lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusError:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

type cellKind uint8

const (
	cellText cellKind = iota
	cellCursor
	cellGutter
	cellGutterActive
	cellPopupItem
	cellPopupSelected
	cellPopupDetail
)

func (st Style) forKind(k cellKind) lipgloss.Style {
	switch k {
	case cellCursor:
		return st.Cursor
	case cellGutter:
		return st.Gutter
	case cellGutterActive:
		return st.LineNumActive
	case cellPopupItem:
		return st.CompletionItem
	case cellPopupSelected:
		return st.CompletionSelected
	case cellPopupDetail:
		return st.CompletionDetail
	default:
		return st.Text
	}
}
