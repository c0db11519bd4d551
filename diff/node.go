package diff

import "github.com/viant/gpmldiff/model"

// SearchNode represents one accepted pair, the chain from a node to its root is the correspondence
type SearchNode struct {
	parent *SearchNode
	Old    *model.Element
	New    *model.Element
	Score  int
	Cost   int
	depth  int
}

// Parent returns previous accepted pair
func (n *SearchNode) Parent() *SearchNode {
	if n == nil {
		return nil
	}
	return n.parent
}

// Len returns number of pairs in the chain
func (n *SearchNode) Len() int {
	if n == nil {
		return 0
	}
	return n.depth
}

// Claimed returns true if the new element is already paired in the chain
func (n *SearchNode) Claimed(element *model.Element) bool {
	for node := n; node != nil; node = node.parent {
		if node.New == element {
			return true
		}
	}
	return false
}

// Pairs returns chain nodes from the latest to the first accepted pair
func (n *SearchNode) Pairs() []*SearchNode {
	result := make([]*SearchNode, 0, n.Len())
	for node := n; node != nil; node = node.parent {
		result = append(result, node)
	}
	return result
}

// NewSearchNode extends the chain
func NewSearchNode(parent *SearchNode, old, new *model.Element, score int, cost CostFunction) *SearchNode {
	return &SearchNode{
		parent: parent,
		Old:    old,
		New:    new,
		Score:  score,
		Cost:   cost.Cost(parent, score),
		depth:  parent.Len() + 1,
	}
}
