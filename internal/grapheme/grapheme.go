package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the terminal cell width of cluster drawn at visualCol.
// Tabs advance to the next multiple of tabWidth.
func Width(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		return tabWidth - visualCol%tabWidth
	}

	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// StringWidth sums Width over every cluster of text starting at column 0.
func StringWidth(text string, tabWidth int) int {
	col := 0
	for _, c := range Split(text) {
		col += Width(c, col, tabWidth)
	}
	return col
}

// Truncate cuts text to at most width cells. A wide cluster that does not fit
// is replaced by spaces so the result still spans exactly the cut width.
func Truncate(text string, width, tabWidth int) string {
	if width <= 0 {
		return ""
	}
	col := 0
	out := make([]rune, 0, len(text))
	for _, c := range Split(text) {
		w := Width(c, col, tabWidth)
		if col+w > width {
			for ; col < width; col++ {
				out = append(out, ' ')
			}
			break
		}
		out = append(out, []rune(c)...)
		col += w
	}
	return string(out)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	return all(cluster, unicode.IsSpace)
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	return all(cluster, unicode.IsPunct)
}

// IsSymbol reports whether all runes in cluster are Unicode symbols
// (math, currency, modifier).
func IsSymbol(cluster string) bool {
	return all(cluster, unicode.IsSymbol)
}

func all(cluster string, pred func(rune) bool) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !pred(r) {
			return false
		}
	}
	return true
}
