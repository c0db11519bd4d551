package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/gpmldiff/model"
)

func newElement(t *testing.T, objectType model.ObjectType, attrs map[model.Property]string) *model.Element {
	element := model.NewElement(objectType)
	for p, text := range attrs {
		require.NoError(t, element.SetText(p, text))
	}
	return element
}

func TestSummarize(t *testing.T) {
	info := newElement(t, model.MappInfo, map[model.Property]string{
		model.MapInfoName: "pw",
		model.BoardWidth:  "100",
	})
	assert.Equal(t, Snapshot{model.MapInfoName: "pw"}, Summarize(info))

	node := newElement(t, model.DataNode, map[model.Property]string{
		model.TextLabel: "TP53",
		model.CenterX:   "10.50",
		model.ZOrder:    "3",
	})
	snapshot := Summarize(node)
	assert.Equal(t, []model.Property{model.CenterX, model.TextLabel, model.ZOrder}, snapshot.Keys())
	assert.Equal(t, "10.5", snapshot[model.CenterX])

	assert.Equal(t, Snapshot{model.TextLabel: "TP53", model.CenterX: "10.5"}, NewSummarizer(model.ZOrder).Summarize(node))
	assert.Empty(t, Summarize(model.NewElement(model.Legend)))
}

func TestBasicSim_Score(t *testing.T) {
	a := newElement(t, model.Label, map[model.Property]string{model.TextLabel: "A", model.CenterX: "1", model.CenterY: "2"})
	b := newElement(t, model.Label, map[model.Property]string{model.TextLabel: "B", model.CenterX: "1", model.CenterY: "2"})
	c := newElement(t, model.Label, map[model.Property]string{model.TextLabel: "A"})
	sim := &BasicSim{}
	assert.Equal(t, 100, sim.Score(a, a))
	assert.Equal(t, 66, sim.Score(a, b))
	assert.Equal(t, 50, sim.Score(a, c))
	assert.Equal(t, 0, sim.Score(model.NewElement(model.Label), model.NewElement(model.Label)))
}

func TestBetterSim_Score(t *testing.T) {
	node := newElement(t, model.DataNode, map[model.Property]string{
		model.GraphID:   "n1",
		model.TextLabel: "TP53",
		model.CenterX:   "100",
		model.CenterY:   "100",
	})
	var testCases = []struct {
		description string
		other       *model.Element
		expect      int
	}{
		{description: "identical", other: node.Copy(), expect: 100},
		{description: "different type", other: newElement(t, model.Label, map[model.Property]string{model.GraphID: "n1"}), expect: 0},
		{
			description: "sub unit move keeps full credit",
			other: newElement(t, model.DataNode, map[model.Property]string{
				model.GraphID: "n1", model.TextLabel: "TP53", model.CenterX: "100.5", model.CenterY: "100",
			}),
			expect: 100,
		},
		{
			description: "label change",
			other: newElement(t, model.DataNode, map[model.Property]string{
				model.GraphID: "n1", model.TextLabel: "MDM2", model.CenterX: "100", model.CenterY: "100",
			}),
			expect: 90,
		},
		{
			description: "id change",
			other: newElement(t, model.DataNode, map[model.Property]string{
				model.GraphID: "n2", model.TextLabel: "TP53", model.CenterX: "100", model.CenterY: "100",
			}),
			expect: 27,
		},
		{
			description: "no id on new side",
			other: newElement(t, model.DataNode, map[model.Property]string{
				model.TextLabel: "TP53", model.CenterX: "100", model.CenterY: "100",
			}),
			expect: 100,
		},
		{
			description: "distant move",
			other: newElement(t, model.DataNode, map[model.Property]string{
				model.TextLabel: "TP53", model.CenterX: "100", model.CenterY: "200",
			}),
			expect: 72,
		},
		{description: "empty", other: model.NewElement(model.DataNode), expect: 0},
	}
	sim := NewBetterSim()
	for _, testCase := range testCases {
		score := sim.Score(node, testCase.other)
		assert.Equal(t, testCase.expect, score, testCase.description)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestBetterSim_Overrides(t *testing.T) {
	a := newElement(t, model.Label, map[model.Property]string{model.TextLabel: "A", model.Color: "ff0000"})
	b := newElement(t, model.Label, map[model.Property]string{model.TextLabel: "A", model.Color: "00ff00"})
	assert.Equal(t, 50, NewBetterSim().Score(a, b))
	sim := &BetterSim{Weights: DefaultWeights()}
	sim.Weights.Overrides = map[model.Property]int{model.Color: 0}
	assert.Equal(t, 100, sim.Score(a, b))
}

func TestSimTable(t *testing.T) {
	old := []*model.Element{
		newElement(t, model.Label, map[model.Property]string{model.TextLabel: "A"}),
		newElement(t, model.Label, map[model.Property]string{model.TextLabel: "B"}),
	}
	new := []*model.Element{
		newElement(t, model.Label, map[model.Property]string{model.TextLabel: "B"}),
		newElement(t, model.Shape, map[model.Property]string{model.TextLabel: "A"}),
		newElement(t, model.Label, map[model.Property]string{model.TextLabel: "A"}),
	}
	table := NewSimTable(old, new, NewBetterSim())
	assert.Equal(t, 0, table.Score(0, 0))
	assert.Equal(t, 0, table.Score(0, 1))
	assert.Equal(t, 100, table.Score(0, 2))
	best, score := table.RowMax(1)
	assert.Equal(t, 0, best)
	assert.Equal(t, 100, score)
	rows, cols := table.Matrix().Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Contains(t, table.String(), "old 0: [Label lbl='A']")

	empty := NewSimTable(nil, new, NewBetterSim())
	assert.Nil(t, empty.Matrix())
	assert.Nil(t, Greedy(empty, 60, BasicCost{}))
	assert.Nil(t, Optimal(empty, 60, BasicCost{}))
}
