package model

// Property identifies a GPML attribute of a pathway element
type Property int

const (
	Comments Property = iota + 1
	Color
	CenterX
	CenterY
	Width
	Height
	RelX
	RelY
	GraphRef
	FillColor
	ShapeTypeProperty
	Rotation
	StartX
	StartY
	EndX
	EndY
	StartLineType
	EndLineType
	StartGraphRef
	EndGraphRef
	LineStyleProperty
	LineThickness
	GeneID
	SystemCode
	GeneType
	ModificationType
	TextLabel
	FontName
	FontWeight
	FontStyle
	FontSize
	Valign
	Align
	Href
	MapInfoName
	Organism
	MapInfoDataSource
	Version
	Author
	MaintainedBy
	Email
	LastModified
	License
	BoardWidth
	BoardHeight
	GraphID
	GroupID
	GroupRef
	GroupStyle
	BiopaxRef
	ZOrder

	propertyEnd
)

type propertyInfo struct {
	tag        string
	kind       Kind
	coordinate bool // changes element geometry
	global     bool // document level sizing, never compared
}

var propertyInfos = [propertyEnd]propertyInfo{
	Comments:          {tag: "Comments", kind: KindString},
	Color:             {tag: "Color", kind: KindColor},
	CenterX:           {tag: "CenterX", kind: KindDouble, coordinate: true},
	CenterY:           {tag: "CenterY", kind: KindDouble, coordinate: true},
	Width:             {tag: "Width", kind: KindDouble, coordinate: true},
	Height:            {tag: "Height", kind: KindDouble, coordinate: true},
	RelX:              {tag: "RelX", kind: KindDouble, coordinate: true},
	RelY:              {tag: "RelY", kind: KindDouble, coordinate: true},
	GraphRef:          {tag: "GraphRef", kind: KindString},
	FillColor:         {tag: "FillColor", kind: KindColor},
	ShapeTypeProperty: {tag: "ShapeType", kind: KindShapeType},
	Rotation:          {tag: "Rotation", kind: KindDouble, coordinate: true},
	StartX:            {tag: "StartX", kind: KindDouble, coordinate: true},
	StartY:            {tag: "StartY", kind: KindDouble, coordinate: true},
	EndX:              {tag: "EndX", kind: KindDouble, coordinate: true},
	EndY:              {tag: "EndY", kind: KindDouble, coordinate: true},
	StartLineType:     {tag: "StartLineType", kind: KindLineType},
	EndLineType:       {tag: "EndLineType", kind: KindLineType},
	StartGraphRef:     {tag: "StartGraphRef", kind: KindString},
	EndGraphRef:       {tag: "EndGraphRef", kind: KindString},
	LineStyleProperty: {tag: "LineStyle", kind: KindLineStyle},
	LineThickness:     {tag: "LineThickness", kind: KindDouble},
	GeneID:            {tag: "GeneID", kind: KindDBID},
	SystemCode:        {tag: "SystemCode", kind: KindDataSource},
	GeneType:          {tag: "Type", kind: KindGeneType},
	ModificationType:  {tag: "ModificationType", kind: KindString},
	TextLabel:         {tag: "TextLabel", kind: KindString},
	FontName:          {tag: "FontName", kind: KindFont},
	FontWeight:        {tag: "FontWeight", kind: KindBoolean},
	FontStyle:         {tag: "FontStyle", kind: KindBoolean},
	FontSize:          {tag: "FontSize", kind: KindDouble},
	Valign:            {tag: "Valign", kind: KindValign},
	Align:             {tag: "Align", kind: KindAlign},
	Href:              {tag: "Href", kind: KindString},
	MapInfoName:       {tag: "MapInfoName", kind: KindString},
	Organism:          {tag: "Organism", kind: KindOrganism},
	MapInfoDataSource: {tag: "Data-Source", kind: KindString},
	Version:           {tag: "Version", kind: KindString},
	Author:            {tag: "Author", kind: KindString},
	MaintainedBy:      {tag: "Maintained-By", kind: KindString},
	Email:             {tag: "Email", kind: KindString},
	LastModified:      {tag: "Last-Modified", kind: KindString},
	License:           {tag: "License", kind: KindString},
	BoardWidth:        {tag: "BoardWidth", kind: KindDouble, coordinate: true, global: true},
	BoardHeight:       {tag: "BoardHeight", kind: KindDouble, coordinate: true, global: true},
	GraphID:           {tag: "GraphId", kind: KindString},
	GroupID:           {tag: "GroupId", kind: KindString},
	GroupRef:          {tag: "GroupRef", kind: KindString},
	GroupStyle:        {tag: "GroupStyle", kind: KindGroupStyle},
	BiopaxRef:         {tag: "BiopaxRef", kind: KindString},
	ZOrder:            {tag: "ZOrder", kind: KindInteger},
}

var propertyByTag = func() map[string]Property {
	result := make(map[string]Property, propertyEnd)
	for p := Comments; p < propertyEnd; p++ {
		result[propertyInfos[p].tag] = p
	}
	return result
}()

func (p Property) valid() bool { return p >= Comments && p < propertyEnd }

// Tag returns GPML attribute name
func (p Property) Tag() string {
	if !p.valid() {
		return ""
	}
	return propertyInfos[p].tag
}

// Kind returns value kind
func (p Property) Kind() Kind {
	if !p.valid() {
		return kindCount
	}
	return propertyInfos[p].kind
}

// IsCoordinate returns true if the property changes element geometry
func (p Property) IsCoordinate() bool { return p.valid() && propertyInfos[p].coordinate }

// IsGlobal returns true for document level sizing properties
func (p Property) IsGlobal() bool { return p.valid() && propertyInfos[p].global }

func (p Property) String() string { return p.Tag() }

// PropertyByTag returns property for a GPML attribute name
func PropertyByTag(tag string) (Property, bool) {
	p, ok := propertyByTag[tag]
	return p, ok
}

// AllProperties returns every property in display order
func AllProperties() []Property {
	result := make([]Property, 0, propertyEnd-1)
	for p := Comments; p < propertyEnd; p++ {
		result = append(result, p)
	}
	return result
}
