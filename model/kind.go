package model

// Kind identifies how a property value is represented
type Kind int

const (
	KindString Kind = iota
	KindDouble
	KindInteger
	KindBoolean
	KindColor
	KindShapeType
	KindLineType
	KindLineStyle
	KindDataSource
	KindDBID
	KindGeneType
	KindFont
	KindAlign
	KindValign
	KindGroupStyle
	KindOrganism

	kindCount
)

var kindNames = [kindCount]string{
	KindString:     "string",
	KindDouble:     "double",
	KindInteger:    "integer",
	KindBoolean:    "boolean",
	KindColor:      "color",
	KindShapeType:  "shapeType",
	KindLineType:   "lineType",
	KindLineStyle:  "lineStyle",
	KindDataSource: "dataSource",
	KindDBID:       "dbID",
	KindGeneType:   "geneType",
	KindFont:       "font",
	KindAlign:      "align",
	KindValign:     "valign",
	KindGroupStyle: "groupStyle",
	KindOrganism:   "organism",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns all known kinds
func Kinds() []Kind {
	result := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		result = append(result, k)
	}
	return result
}
