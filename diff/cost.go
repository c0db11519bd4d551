package diff

// CostFunction computes cumulative cost of extending a correspondence chain
type CostFunction interface {
	Cost(parent *SearchNode, score int) int
}

// BasicCost accumulates the dissimilarity of every accepted pair
type BasicCost struct{}

func (BasicCost) Cost(parent *SearchNode, score int) int {
	cost := 100 - score
	if parent != nil {
		cost += parent.Cost
	}
	return cost
}
