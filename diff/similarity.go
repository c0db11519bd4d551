package diff

import (
	"math"
	"strconv"

	"github.com/viant/gpmldiff/model"
)

// SimilarityFunction scores how likely two elements are versions of the same element, from 0 to 100
type SimilarityFunction interface {
	Score(old, new *model.Element) int
}

// BasicSim scores the share of equal attributes
type BasicSim struct {
	Summarizer *Summarizer
}

func (s *BasicSim) Score(old, new *model.Element) int {
	summarizer := s.Summarizer
	if summarizer == nil {
		summarizer = defaultSummarizer
	}
	oldSnapshot, newSnapshot := summarizer.Summarize(old), summarizer.Summarize(new)
	total := len(oldSnapshot) + len(newSnapshot)
	if total == 0 {
		return 0
	}
	equal := 0
	for p, value := range newSnapshot {
		if oldValue, ok := oldSnapshot[p]; ok && oldValue == value {
			equal++
		}
	}
	return 100 * 2 * equal / total
}

// Weights controls BetterSim attribute weights
type Weights struct {
	Identifier int
	Coordinate int
	Attribute  int
	Overrides  map[model.Property]int
}

func (w *Weights) weight(p model.Property) int {
	if value, ok := w.Overrides[p]; ok {
		return value
	}
	switch {
	case p == model.GraphID:
		return w.Identifier
	case p.IsCoordinate():
		return w.Coordinate
	}
	return w.Attribute
}

// DefaultWeights returns default BetterSim weights
func DefaultWeights() Weights {
	return Weights{Identifier: 80, Coordinate: 10, Attribute: 10}
}

// BetterSim scores weighted attribute agreement, coordinates get partial credit by distance
type BetterSim struct {
	Summarizer *Summarizer
	Weights    Weights
}

func (s *BetterSim) Score(old, new *model.Element) int {
	if old.ObjectType != new.ObjectType {
		return 0
	}
	summarizer := s.Summarizer
	if summarizer == nil {
		summarizer = defaultSummarizer
	}
	oldSnapshot, newSnapshot := summarizer.Summarize(old), summarizer.Summarize(new)
	if len(oldSnapshot) > 0 && old.Fingerprint() == new.Fingerprint() {
		return 100
	}
	possible, actual := 0.0, 0.0
	for _, p := range newSnapshot.Keys() {
		if !old.ObjectType.Allows(p) {
			continue
		}
		newValue := newSnapshot[p]
		oldValue, ok := oldSnapshot[p]
		if p == model.GraphID && !ok {
			continue
		}
		w := float64(s.Weights.weight(p))
		possible += w
		if !ok {
			continue
		}
		if p.IsCoordinate() {
			actual += coordinateCredit(w, oldValue, newValue)
			continue
		}
		if oldValue == newValue {
			actual += w
		}
	}
	if possible == 0 {
		return 0
	}
	return int(100 * actual / possible)
}

func coordinateCredit(weight float64, oldValue, newValue string) float64 {
	oldFloat, err := strconv.ParseFloat(oldValue, 64)
	if err != nil {
		return 0
	}
	newFloat, err := strconv.ParseFloat(newValue, 64)
	if err != nil {
		return 0
	}
	delta := math.Abs(newFloat - oldFloat)
	if delta < 1 {
		return weight
	}
	return weight / (1 + math.Log(delta))
}

// NewBetterSim creates BetterSim with default weights
func NewBetterSim() *BetterSim {
	return &BetterSim{Weights: DefaultWeights()}
}
