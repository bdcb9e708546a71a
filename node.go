package gocalc

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

type NodeType int

const (
	NodeNumber NodeType = iota
	NodeBinary
)

// Node is an AST node. A NodeNumber carries v; a NodeBinary carries op and
// exclusively owns left and right.
type Node struct {
	t     NodeType
	v     int64
	op    byte
	left  *Node
	right *Node
}

func NewNumber(v int64) *Node {
	return &Node{t: NodeNumber, v: v}
}

func NewBinary(op byte, left, right *Node) *Node {
	return &Node{t: NodeBinary, op: op, left: left, right: right}
}

func (n *Node) Type() NodeType { return n.t }
func (n *Node) Value() int64   { return n.v }
func (n *Node) Op() byte       { return n.op }
func (n *Node) Left() *Node    { return n.left }
func (n *Node) Right() *Node   { return n.right }

// walk visits every node in pre-order without recursing.
func (n *Node) walk(f func(*Node)) {
	stack := []*Node{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr == nil {
			continue
		}
		f(curr)
		if curr.t == NodeBinary {
			stack = append(stack, curr.right, curr.left)
		}
	}
}

// Leaves returns the number of NodeNumber nodes in the tree.
func (n *Node) Leaves() int {
	count := 0
	n.walk(func(x *Node) {
		if x.t == NodeNumber {
			count++
		}
	})
	return count
}

// Internals returns the number of NodeBinary nodes in the tree.
func (n *Node) Internals() int {
	count := 0
	n.walk(func(x *Node) {
		if x.t == NodeBinary {
			count++
		}
	})
	return count
}

func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	var buf bytes.Buffer
	switch n.t {
	case NodeNumber:
		fmt.Fprint(&buf, n.v)
	case NodeBinary:
		fmt.Fprintf(&buf, "(%c %v %v)", n.op, n.left, n.right)
	default:
		fmt.Fprintf(&buf, "<node %d>", int(n.t))
	}
	return buf.String()
}

// Tree writes a box drawing of the tree to w, one box per node with the
// left subtree above the right one.
func (n *Node) Tree(w io.Writer) error {
	var buf bytes.Buffer
	n.tree(&buf, "", false)
	_, err := w.Write(buf.Bytes())
	return err
}

func (n *Node) tree(buf *bytes.Buffer, prefix string, isLeft bool) {
	branch, rail, indent := "└", " ", "    "
	if isLeft {
		branch, rail, indent = "├", "│", "│   "
	}
	if n == nil || n.t != NodeBinary {
		label := "nil"
		if n != nil {
			label = fmt.Sprintf("%2d", n.v)
		}
		line := strings.Repeat("─", len(label)+2)
		fmt.Fprintf(buf, "%s%s┬%s┐\n", prefix, branch, line)
		fmt.Fprintf(buf, "%s%s│ %s │\n", prefix, rail, label)
		fmt.Fprintf(buf, "%s%s└%s┘\n", prefix, rail, line)
		return
	}
	fmt.Fprintf(buf, "%s%s┬────┐\n", prefix, branch)
	fmt.Fprintf(buf, "%s%s│ %c  │\n", prefix, rail, n.op)
	fmt.Fprintf(buf, "%s%s└──┬─┘\n", prefix, rail)
	n.left.tree(buf, prefix+indent, true)
	n.right.tree(buf, prefix+indent, false)
}
