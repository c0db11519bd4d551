package diff

import (
	"github.com/viant/gpmldiff/model"
)

// Result represents correspondence between two pathways
type Result struct {
	Old        *model.Pathway
	New        *model.Pathway
	Match      *SearchNode
	Table      *SimTable
	summarizer *Summarizer
}

// Cost returns total cost of the correspondence
func (r *Result) Cost() int {
	if r.Match == nil {
		return 0
	}
	return r.Match.Cost
}

// Pairs returns matched pairs, latest accepted first
func (r *Result) Pairs() []*SearchNode {
	return r.Match.Pairs()
}

// Deleted returns old elements without a counterpart in old document order
func (r *Result) Deleted() []*model.Element {
	paired := map[*model.Element]bool{}
	for node := r.Match; node != nil; node = node.Parent() {
		paired[node.Old] = true
	}
	return unpaired(r.Old, paired)
}

// Inserted returns new elements without a counterpart in new document order
func (r *Result) Inserted() []*model.Element {
	paired := map[*model.Element]bool{}
	for node := r.Match; node != nil; node = node.Parent() {
		paired[node.New] = true
	}
	return unpaired(r.New, paired)
}

// Modified returns pairs with at least one changed attribute
func (r *Result) Modified() []*SearchNode {
	var result []*SearchNode
	for _, node := range r.Pairs() {
		if len(r.changes(node.Old, node.New)) > 0 {
			result = append(result, node)
		}
	}
	return result
}

// Write emits modifications, deletions then insertions, and flushes the outputter
func (r *Result) Write(out Outputter) error {
	for _, node := range r.Pairs() {
		changes := r.changes(node.Old, node.New)
		if len(changes) == 0 {
			continue
		}
		out.ModifyStart(node.Old, node.New)
		for _, change := range changes {
			out.ModifyAttr(change.Property.Tag(), change.Old, change.New)
		}
		out.ModifyEnd()
	}
	for _, element := range r.Deleted() {
		out.Delete(element)
	}
	for _, element := range r.Inserted() {
		out.Insert(element)
	}
	return out.Flush()
}

// Change represents one changed attribute, an absent side is an empty string
type Change struct {
	Property model.Property
	Old      string
	New      string
}

// Changes returns changed attributes of a pair in display order
func Changes(summarizer *Summarizer, old, new *model.Element) []Change {
	if summarizer == nil {
		summarizer = defaultSummarizer
	}
	oldSnapshot, newSnapshot := summarizer.Summarize(old), summarizer.Summarize(new)
	var result []Change
	for _, p := range model.AllProperties() {
		oldValue, oldOk := oldSnapshot[p]
		newValue, newOk := newSnapshot[p]
		if !oldOk && !newOk || oldValue == newValue {
			continue
		}
		result = append(result, Change{Property: p, Old: oldValue, New: newValue})
	}
	return result
}

func (r *Result) changes(old, new *model.Element) []Change {
	return Changes(r.summarizer, old, new)
}

func unpaired(pathway *model.Pathway, paired map[*model.Element]bool) []*model.Element {
	if pathway == nil {
		return nil
	}
	var result []*model.Element
	for _, element := range pathway.Elements {
		if !paired[element] {
			result = append(result, element)
		}
	}
	return result
}
