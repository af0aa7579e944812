package buffer

// Pos points into the text by (row, col) in runes. Row and Col are 0-based.
// Hosts use it for rendering; the completion engine works on offsets.
type Pos struct {
	Row int
	Col int
}
