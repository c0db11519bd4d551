package model

// ObjectType identifies the kind of pathway element
type ObjectType string

const (
	MappInfo      ObjectType = "MappInfo" // pathway metadata record
	DataNode      ObjectType = "DataNode"
	State         ObjectType = "State"
	Line          ObjectType = "Line" // interaction
	GraphicalLine ObjectType = "GraphicalLine"
	Label         ObjectType = "Label"
	Shape         ObjectType = "Shape"
	Group         ObjectType = "Group"
	InfoBox       ObjectType = "InfoBox"
	Legend        ObjectType = "Legend"
)

var lineProperties = []Property{
	Comments, Color, StartX, StartY, EndX, EndY, StartLineType, EndLineType,
	StartGraphRef, EndGraphRef, LineStyleProperty, LineThickness, GraphID, GroupRef,
	BiopaxRef, ZOrder,
}

var fontProperties = []Property{FontName, FontWeight, FontStyle, FontSize, Valign, Align}

var objectProperties = map[ObjectType][]Property{
	MappInfo: {
		Comments, MapInfoName, Organism, MapInfoDataSource, Version, Author, MaintainedBy,
		Email, LastModified, License, BoardWidth, BoardHeight, BiopaxRef,
	},
	DataNode: join([]Property{
		Comments, Color, CenterX, CenterY, Width, Height, FillColor, ShapeTypeProperty,
		LineStyleProperty, LineThickness, GeneID, SystemCode, GeneType, TextLabel,
		GraphID, GroupRef, BiopaxRef, ZOrder,
	}, fontProperties),
	State: {
		Comments, Color, RelX, RelY, Width, Height, GraphRef, FillColor, ShapeTypeProperty,
		LineStyleProperty, LineThickness, GeneID, SystemCode, ModificationType, TextLabel,
		GraphID, ZOrder,
	},
	Line:          append(append([]Property{}, lineProperties...), GeneID, SystemCode),
	GraphicalLine: lineProperties,
	Label: join([]Property{
		Comments, Color, CenterX, CenterY, Width, Height, FillColor, ShapeTypeProperty,
		LineStyleProperty, LineThickness, TextLabel, Href, GraphID, GroupRef, BiopaxRef, ZOrder,
	}, fontProperties),
	Shape: join([]Property{
		Comments, Color, CenterX, CenterY, Width, Height, FillColor, ShapeTypeProperty,
		Rotation, LineStyleProperty, LineThickness, TextLabel, GraphID, GroupRef, BiopaxRef,
		ZOrder,
	}, fontProperties),
	Group:   {Comments, TextLabel, GraphID, GroupID, GroupRef, GroupStyle, BiopaxRef},
	InfoBox: {CenterX, CenterY},
	Legend:  {CenterX, CenterY},
}

var objectPropertySet = func() map[ObjectType]map[Property]bool {
	result := make(map[ObjectType]map[Property]bool, len(objectProperties))
	for objectType, properties := range objectProperties {
		set := make(map[Property]bool, len(properties))
		for _, p := range properties {
			set[p] = true
		}
		result[objectType] = set
	}
	return result
}()

func join(parts ...[]Property) []Property {
	var result []Property
	for _, part := range parts {
		result = append(result, part...)
	}
	return result
}

// Allows returns true if the property is legal for the object type
func (t ObjectType) Allows(p Property) bool {
	return objectPropertySet[t][p]
}

// Properties returns legal properties for the object type
func (t ObjectType) Properties() []Property {
	return objectProperties[t]
}

// IsLine returns true for line like object types
func (t ObjectType) IsLine() bool {
	return t == Line || t == GraphicalLine
}

// ObjectTypes returns all object types
func ObjectTypes() []ObjectType {
	return []ObjectType{MappInfo, DataNode, State, Line, GraphicalLine, Label, Shape, Group, InfoBox, Legend}
}
