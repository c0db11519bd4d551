package diff

import (
	"github.com/viant/gpmldiff/model"
	"go.uber.org/zap"
)

// DefaultThreshold is minimum score of an accepted pair
const DefaultThreshold = 60

// Differ compares pathways
type Differ struct {
	similarity SimilarityFunction
	cost       CostFunction
	matcher    Matcher
	threshold  int
	summarizer *Summarizer
	logger     *zap.Logger
}

// Compare finds correspondence between old and new pathway elements
func (d *Differ) Compare(old, new *model.Pathway) *Result {
	match, table := d.Correspond(old.Elements, new.Elements, d.threshold)
	result := &Result{Old: old, New: new, Match: match, Table: table, summarizer: d.summarizer}
	d.logger.Debug("compared pathways",
		zap.Int("old", len(old.Elements)),
		zap.Int("new", len(new.Elements)),
		zap.Int("pairs", match.Len()),
		zap.Int("cost", result.Cost()))
	return result
}

// Correspond pairs element lists accepting scores at or above threshold
func (d *Differ) Correspond(old, new []*model.Element, threshold int) (*SearchNode, *SimTable) {
	table := NewSimTable(old, new, d.similarity)
	match := d.matcher(table, threshold, d.cost)
	return d.pairBlank(match, old, new), table
}

// pairBlank pairs leftover elements of the same type that have nothing to compare, they score 0 but are indistinguishable
func (d *Differ) pairBlank(match *SearchNode, old, new []*model.Element) *SearchNode {
	claimed := map[*model.Element]bool{}
	for node := match; node != nil; node = node.Parent() {
		claimed[node.Old] = true
		claimed[node.New] = true
	}
	for _, oldElement := range old {
		if claimed[oldElement] || len(d.summarizer.Summarize(oldElement)) > 0 {
			continue
		}
		for _, newElement := range new {
			if claimed[newElement] || newElement.ObjectType != oldElement.ObjectType || len(d.summarizer.Summarize(newElement)) > 0 {
				continue
			}
			claimed[newElement] = true
			match = NewSearchNode(match, oldElement, newElement, 100, d.cost)
			break
		}
	}
	return match
}

// Changes returns changed attributes of a pair
func (d *Differ) Changes(old, new *model.Element) []Change {
	return Changes(d.summarizer, old, new)
}

// Threshold returns minimum score of an accepted pair
func (d *Differ) Threshold() int {
	return d.threshold
}

// New creates a differ, by default BetterSim, BasicCost and Greedy search
func New(options ...Option) *Differ {
	result := &Differ{
		cost:       BasicCost{},
		matcher:    Greedy,
		threshold:  DefaultThreshold,
		summarizer: defaultSummarizer,
		logger:     zap.NewNop(),
	}
	for _, option := range options {
		option(result)
	}
	if result.similarity == nil {
		result.similarity = &BetterSim{Summarizer: result.summarizer, Weights: DefaultWeights()}
	}
	return result
}
