package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/gpmldiff/config"
	"github.com/viant/gpmldiff/gpml"
	"github.com/viant/gpmldiff/model"
)

const baseDocument = `<?xml version="1.0" encoding="UTF-8"?>
<Pathway xmlns="http://pathvisio.org/GPML/2013a" Name="New Pathway" Data-Source="GenMAPP 2.0" Version="20070724">
  <Graphics BoardWidth="1200.0" BoardHeight="800.0" />
  <Interaction GraphId="aaa">
    <Graphics Color="000000">
      <Point X="116.0" Y="66.0" ArrowHead="Arrow" />
      <Point X="162.0" Y="154.0" />
    </Graphics>
  </Interaction>
  <Shape GraphId="bd1">
    <Graphics FillColor="Transparent" Color="000000" CenterX="260.5" CenterY="146.5" Width="83.0" Height="83.0" Rotation="0.0" ShapeType="Rectangle" />
  </Shape>
  <InfoBox CenterX="0.0" CenterY="0.0" />
</Pathway>
`

const insertedDocument = `<?xml version="1.0" encoding="UTF-8"?>
<Pathway xmlns="http://pathvisio.org/GPML/2013a" Name="New Pathway" Data-Source="GenMAPP 2.0" Version="20070724">
  <Graphics BoardWidth="1200.0" BoardHeight="800.0" />
  <Interaction GraphId="aaa">
    <Graphics Color="000000">
      <Point X="116.0" Y="66.0" ArrowHead="Arrow" />
      <Point X="162.0" Y="154.0" />
    </Graphics>
  </Interaction>
  <Shape GraphId="bd1">
    <Graphics FillColor="Transparent" Color="000000" CenterX="260.5" CenterY="146.5" Width="83.0" Height="83.0" Rotation="0.0" ShapeType="Rectangle" />
  </Shape>
  <Shape>
    <Graphics FillColor="Transparent" Color="000000" CenterX="105.5" CenterY="176.0" Width="82.0" Height="55.0" Rotation="1.5707963267948966" ShapeType="Brace" />
  </Shape>
  <InfoBox CenterX="0.0" CenterY="0.0" />
</Pathway>
`

const deletedDocument = `<?xml version="1.0" encoding="UTF-8"?>
<Pathway xmlns="http://pathvisio.org/GPML/2013a" Name="New Pathway" Data-Source="GenMAPP 2.0" Version="20070724">
  <Graphics BoardWidth="2400.0" BoardHeight="800.0" />
  <Interaction GraphId="aaa">
    <Graphics Color="000000">
      <Point X="116.0" Y="66.0" ArrowHead="Arrow" />
      <Point X="162.0" Y="154.0" />
    </Graphics>
  </Interaction>
  <InfoBox CenterX="0.0" CenterY="0.0" />
</Pathway>
`

const modifiedDocument = `<?xml version="1.0" encoding="UTF-8"?>
<Pathway xmlns="http://pathvisio.org/GPML/2013a" Name="New Pathway" Data-Source="GenMAPP 2.0" Version="20070724">
  <Graphics BoardWidth="1200.0" BoardHeight="800.0" />
  <Interaction GraphId="aaa">
    <Graphics Color="000000">
      <Point X="116.0" Y="66.0" ArrowHead="Arrow" />
      <Point X="198.0" Y="107.0" />
    </Graphics>
  </Interaction>
  <Shape GraphId="bd1">
    <Graphics FillColor="Transparent" Color="000000" CenterX="260.5" CenterY="146.5" Width="83.0" Height="83.0" Rotation="0.0" ShapeType="Oval" />
  </Shape>
  <InfoBox CenterX="0.0" CenterY="0.0" />
</Pathway>
`

// recorder checks event ordering and counts events
type recorder struct {
	t             *testing.T
	deletions     int
	insertions    int
	modifications int
	modified      int
	open          bool
	changed       int
	phase         int // 0 modify, 1 delete, 2 insert
	attrs         []string
	flushed       bool
}

func (r *recorder) Insert(element *model.Element) {
	assert.False(r.t, r.open, "insert inside modify block")
	r.phase = 2
	r.insertions++
}

func (r *recorder) Delete(element *model.Element) {
	assert.False(r.t, r.open, "delete inside modify block")
	assert.LessOrEqual(r.t, r.phase, 1, "delete after insert")
	r.phase = 1
	r.deletions++
}

func (r *recorder) ModifyStart(old, new *model.Element) {
	assert.False(r.t, r.open, "nested modify block")
	assert.Equal(r.t, 0, r.phase, "modification after delete or insert")
	r.open = true
	r.changed = 0
	r.modified++
}

func (r *recorder) ModifyAttr(attr, old, new string) {
	assert.True(r.t, r.open, "attribute outside modify block")
	assert.NotEqual(r.t, old, new)
	r.changed++
	r.modifications++
	r.attrs = append(r.attrs, attr)
}

func (r *recorder) ModifyEnd() {
	assert.True(r.t, r.open, "modify end without start")
	assert.NotZero(r.t, r.changed, "empty modify block")
	r.open = false
}

func (r *recorder) Flush() error {
	assert.False(r.t, r.open, "flush inside modify block")
	r.flushed = true
	return nil
}

func (r *recorder) counts() [4]int {
	return [4]int{r.deletions, r.insertions, r.modifications, r.modified}
}

func parse(t *testing.T, document string) *model.Pathway {
	pathway, err := gpml.Unmarshal([]byte(document))
	require.NoError(t, err)
	return pathway
}

func TestDiffer_Compare(t *testing.T) {
	var testCases = []struct {
		description string
		document    string
		expect      [4]int // deletions, insertions, modifications, modified elements
		attrs       []string
	}{
		{description: "unchanged", document: baseDocument, expect: [4]int{0, 0, 0, 0}},
		{description: "insertion", document: insertedDocument, expect: [4]int{0, 1, 0, 0}},
		{description: "deletion, board size is not compared", document: deletedDocument, expect: [4]int{1, 0, 0, 0}},
		{description: "modification", document: modifiedDocument, expect: [4]int{0, 0, 3, 2}},
	}
	for _, matcher := range []Matcher{Greedy, Optimal} {
		for _, testCase := range testCases {
			old := parse(t, baseDocument)
			out := &recorder{t: t}
			result := New(WithMatcher(matcher)).Compare(old, parse(t, testCase.document))
			require.NoError(t, result.Write(out), testCase.description)
			assert.True(t, out.flushed)
			assert.Equal(t, testCase.expect, out.counts(), testCase.description)
		}
	}
}

func TestResult_Partition(t *testing.T) {
	for _, document := range []string{baseDocument, insertedDocument, deletedDocument, modifiedDocument} {
		old, new := parse(t, baseDocument), parse(t, document)
		result := New().Compare(old, new)
		oldSeen, newSeen := map[*model.Element]int{}, map[*model.Element]int{}
		for _, node := range result.Pairs() {
			oldSeen[node.Old]++
			newSeen[node.New]++
		}
		for _, element := range result.Deleted() {
			oldSeen[element]++
		}
		for _, element := range result.Inserted() {
			newSeen[element]++
		}
		for _, element := range old.Elements {
			assert.Equal(t, 1, oldSeen[element], element.String())
		}
		for _, element := range new.Elements {
			assert.Equal(t, 1, newSeen[element], element.String())
		}
	}
}

func TestResult_Write_ModificationAttrs(t *testing.T) {
	out := &recorder{t: t}
	result := New().Compare(parse(t, baseDocument), parse(t, modifiedDocument))
	require.NoError(t, result.Write(out))
	assert.ElementsMatch(t, []string{"ShapeType", "EndX", "EndY"}, out.attrs)
	assert.Equal(t, 2, len(result.Modified()))
}

func TestResult_LabelChange(t *testing.T) {
	old, new := &model.Pathway{}, &model.Pathway{}
	for i, pathway := range []*model.Pathway{old, new} {
		label := model.NewElement(model.Label)
		require.NoError(t, label.SetText(model.GraphID, "l1"))
		require.NoError(t, label.SetText(model.CenterX, "10"))
		require.NoError(t, label.SetText(model.CenterY, "20"))
		require.NoError(t, label.SetText(model.TextLabel, []string{"A", "B"}[i]))
		pathway.Add(label)
	}
	out := &recorder{t: t}
	require.NoError(t, New().Compare(old, new).Write(out))
	assert.Equal(t, [4]int{0, 0, 1, 1}, out.counts())
	assert.Equal(t, []string{"TextLabel"}, out.attrs)
}

func TestResult_Empty(t *testing.T) {
	empty := &model.Pathway{}
	result := New().Compare(empty, empty)
	out := &recorder{t: t}
	require.NoError(t, result.Write(out))
	assert.Equal(t, [4]int{}, out.counts())
	assert.Equal(t, 0, result.Cost())

	result = New().Compare(empty, parse(t, baseDocument))
	assert.Len(t, result.Inserted(), 4)
	assert.Empty(t, result.Deleted())
}

func TestDiffer_Compare_Blank(t *testing.T) {
	for _, differ := range []*Differ{New(), New(WithSimilarity(&BasicSim{})), New(WithMatcher(Optimal))} {
		old, new := model.New(), model.New()
		out := &recorder{t: t}
		result := differ.Compare(old, new)
		require.NoError(t, result.Write(out))
		assert.Equal(t, [4]int{}, out.counts(), "bare metadata records are the same element")
		assert.Equal(t, 1, result.Match.Len())
	}

	old, new := &model.Pathway{}, &model.Pathway{}
	old.Add(model.NewElement(model.Group))
	new.Add(model.NewElement(model.Legend))
	result := New().Compare(old, new)
	assert.Len(t, result.Deleted(), 1)
	assert.Len(t, result.Inserted(), 1)
}

func TestDiffer_WithConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Excluded = []string{"ShapeType"}
	out := &recorder{t: t}
	result := New(WithConfig(cfg)).Compare(parse(t, baseDocument), parse(t, modifiedDocument))
	require.NoError(t, result.Write(out))
	assert.Equal(t, [4]int{0, 0, 2, 1}, out.counts())

	cfg = config.DefaultConfig()
	cfg.Threshold = 100
	out = &recorder{t: t}
	result = New(WithConfig(cfg)).Compare(parse(t, baseDocument), parse(t, modifiedDocument))
	require.NoError(t, result.Write(out))
	assert.Equal(t, [4]int{2, 2, 0, 0}, out.counts(), "changed elements fall below threshold")
}
