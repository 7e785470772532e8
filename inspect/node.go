package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/wippyai/atom-runtime/atom"
)

// Node is one decoded atom.
type Node struct {
	Err      error
	Kind     atom.Kind
	TypeName string
	Label    string
	Value    string
	Children []*Node
	Type     atom.URID
	Offset   uint32
	Size     uint32
}

// Visit calls fn for n and its descendants in depth-first order. Returning
// false from fn skips the node's children.
func (n *Node) Visit(fn func(n *Node, depth int) bool) {
	n.visit(fn, 0)
}

func (n *Node) visit(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.visit(fn, depth+1)
	}
}

// Errors returns the errors recorded anywhere in the tree.
func (n *Node) Errors() []error {
	var errs []error
	n.Visit(func(n *Node, _ int) bool {
		if n.Err != nil {
			errs = append(errs, n.Err)
		}
		return true
	})
	return errs
}

// Count returns the number of nodes in the tree.
func (n *Node) Count() int {
	count := 0
	n.Visit(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Line formats the node without its children.
func (n *Node) Line() string {
	var b strings.Builder
	if n.Label != "" {
		b.WriteString(n.Label)
		b.WriteString(": ")
	}
	b.WriteString(n.TypeName)
	if n.Value != "" {
		b.WriteByte(' ')
		b.WriteString(n.Value)
	}
	if n.Err != nil {
		b.WriteString(" !")
		b.WriteString(n.Err.Error())
	}
	return b.String()
}

// WriteText writes the tree as indented text, one node per line.
func (n *Node) WriteText(w io.Writer) error {
	var err error
	n.Visit(func(n *Node, depth int) bool {
		if err != nil {
			return false
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n.Line())
		return true
	})
	return err
}

func (n *Node) String() string {
	var b strings.Builder
	_ = n.WriteText(&b)
	return b.String()
}
