package pysource

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// literalDetector answers whether a caret sits inside a comment or a string
// literal. The last parse is kept since one keystroke queries the same text
// several times.
type literalDetector struct {
	lang *sitter.Language

	text string
	root *sitter.Node
}

func newLiteralDetector() *literalDetector {
	return &literalDetector{lang: python.GetLanguage()}
}

// inside reports whether the rune before caret belongs to a comment or to
// the body of a string. Interpolations inside f-strings count as code.
func (d *literalDetector) inside(text string, caret int) bool {
	if caret <= 0 {
		return false
	}
	root := d.parse(text)
	if root == nil {
		return false
	}
	off := uint32(len(string([]rune(text)[:caret])))

	path := nodePath(root, off-1)
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i].Type() {
		case "interpolation":
			return false
		case "comment":
			return true
		case "string":
			// Right after the closing quote the caret is back in code.
			return off < path[i].EndByte()
		}
	}
	return false
}

func (d *literalDetector) parse(text string) *sitter.Node {
	if d.root != nil && d.text == text {
		return d.root
	}
	root, err := sitter.ParseCtx(context.Background(), []byte(text), d.lang)
	if err != nil {
		return nil
	}
	d.text, d.root = text, root
	return root
}

// nodePath returns the chain of nodes from root down to the smallest node
// containing the byte at off.
func nodePath(root *sitter.Node, off uint32) []*sitter.Node {
	path := []*sitter.Node{root}
	n := root
	for {
		var next *sitter.Node
		for i := 0; i < int(n.ChildCount()); i++ {
			c := n.Child(i)
			if c != nil && c.StartByte() <= off && off < c.EndByte() {
				next = c
				break
			}
		}
		if next == nil {
			return path
		}
		path = append(path, next)
		n = next
	}
}
