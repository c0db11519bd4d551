package diff

import (
	"fmt"
	"strings"

	"github.com/viant/gpmldiff/model"
	"gonum.org/v1/gonum/mat"
)

// SimTable holds similarity scores of every old and new element pair
type SimTable struct {
	Old    []*model.Element
	New    []*model.Element
	scores *mat.Dense
}

// Score returns score of old element i and new element j
func (t *SimTable) Score(i, j int) int {
	return int(t.scores.At(i, j))
}

// RowMax returns best new element index and score for old element i, first maximum wins, -1 if there are no new elements
func (t *SimTable) RowMax(i int) (int, int) {
	best, bestScore := -1, -1
	for j := range t.New {
		if score := t.Score(i, j); score > bestScore {
			best, bestScore = j, score
		}
	}
	return best, bestScore
}

// Matrix returns read only view of the scores
func (t *SimTable) Matrix() mat.Matrix {
	if t.scores == nil {
		return nil
	}
	return t.scores
}

// String returns printable table
func (t *SimTable) String() string {
	builder := &strings.Builder{}
	for i, element := range t.Old {
		fmt.Fprintf(builder, "old %d: %v\n", i, element)
	}
	for j, element := range t.New {
		fmt.Fprintf(builder, "new %d: %v\n", j, element)
	}
	if t.scores != nil {
		fmt.Fprintf(builder, "%v\n", mat.Formatted(t.scores, mat.Squeeze()))
	}
	return builder.String()
}

// NewSimTable scores every element pair
func NewSimTable(old, new []*model.Element, similarity SimilarityFunction) *SimTable {
	result := &SimTable{Old: old, New: new}
	if len(old) == 0 || len(new) == 0 {
		return result
	}
	result.scores = mat.NewDense(len(old), len(new), nil)
	for i, oldElement := range old {
		for j, newElement := range new {
			result.scores.Set(i, j, float64(similarity.Score(oldElement, newElement)))
		}
	}
	return result
}
