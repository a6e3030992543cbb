package predictive

import (
	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
)

// Node is a node of a derivation tree. Inner nodes carry the rule they have
// been expanded with, leaves carry the token matched. Epsilon leaves carry
// neither.
type Node struct {
	Symbol   ll.Symbol
	Rule     *ll.Rule
	Token    predict.Token
	Span     predict.Span
	Children []*Node
}

// IsLeaf is a predicate: does n have no children?
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Each walks the tree depth-first, calling f before visiting the children
// of a node.
func (n *Node) Each(f func(node *Node, depth int)) {
	n.each(f, 0)
}

func (n *Node) each(f func(*Node, int), depth int) {
	if n == nil {
		return
	}
	f(n, depth)
	for _, ch := range n.Children {
		ch.each(f, depth+1)
	}
}

// Leaves returns the tokens matched below n, from left to right.
func (n *Node) Leaves() []predict.Token {
	var leaves []predict.Token
	n.Each(func(node *Node, _ int) {
		if node.Token != nil {
			leaves = append(leaves, node.Token)
		}
	})
	return leaves
}

// spans sets the span of inner nodes to cover the spans of their children.
func (n *Node) spans() predict.Span {
	for _, ch := range n.Children {
		n.Span = n.Span.Extend(ch.spans())
	}
	return n.Span
}

func (n *Node) String() string {
	if n.Token != nil {
		return n.Symbol.String() + " " + n.Span.String()
	}
	return n.Symbol.String()
}
