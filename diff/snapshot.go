package diff

import (
	"github.com/viant/gpmldiff/model"
)

// Snapshot represents comparable element attributes as text
type Snapshot map[model.Property]string

// Keys returns snapshot properties in display order
func (s Snapshot) Keys() []model.Property {
	var result []model.Property
	for _, p := range model.AllProperties() {
		if _, ok := s[p]; ok {
			result = append(result, p)
		}
	}
	return result
}

// Summarizer builds element snapshots
type Summarizer struct {
	excluded map[model.Property]bool
}

// Summarize returns snapshot of set, legal, non excluded attributes
func (s *Summarizer) Summarize(element *model.Element) Snapshot {
	result := Snapshot{}
	for _, p := range element.Properties() {
		if p.IsGlobal() || s.excluded[p] || !element.ObjectType.Allows(p) {
			continue
		}
		result[p] = element.Text(p)
	}
	return result
}

// NewSummarizer creates a summarizer, document sizing attributes are always excluded
func NewSummarizer(excluded ...model.Property) *Summarizer {
	result := &Summarizer{excluded: map[model.Property]bool{}}
	for _, p := range excluded {
		result.excluded[p] = true
	}
	return result
}

var defaultSummarizer = NewSummarizer()

// Summarize returns default element snapshot
func Summarize(element *model.Element) Snapshot {
	return defaultSummarizer.Summarize(element)
}
