package gpml

import "encoding/xml"

// Object is the XML shape shared by the pathway root and every pathway element.
// Attributes that do not apply to an element are left empty and omitted on output.
type Object struct {
	XMLName xml.Name

	// pathway root attributes
	Name         string `xml:"Name,attr,omitempty"`
	Organism     string `xml:"Organism,attr,omitempty"`
	DataSource   string `xml:"Data-Source,attr,omitempty"`
	Version      string `xml:"Version,attr,omitempty"`
	Author       string `xml:"Author,attr,omitempty"`
	Maintainer   string `xml:"Maintainer,attr,omitempty"`
	Email        string `xml:"Email,attr,omitempty"`
	License      string `xml:"License,attr,omitempty"`
	LastModified string `xml:"Last-Modified,attr,omitempty"`

	// element attributes
	TextLabel string `xml:"TextLabel,attr,omitempty"`
	GraphID   string `xml:"GraphId,attr,omitempty"`
	GroupID   string `xml:"GroupId,attr,omitempty"`
	GroupRef  string `xml:"GroupRef,attr,omitempty"`
	GraphRef  string `xml:"GraphRef,attr,omitempty"`
	Type      string `xml:"Type,attr,omitempty"`
	StateType string `xml:"StateType,attr,omitempty"`
	Href      string `xml:"Href,attr,omitempty"`
	Style     string `xml:"Style,attr,omitempty"`
	CenterX   string `xml:"CenterX,attr,omitempty"` // InfoBox, Legend
	CenterY   string `xml:"CenterY,attr,omitempty"`

	Comments   []*Comment `xml:"Comment"`
	BiopaxRefs []string   `xml:"BiopaxRef"`
	Graphics   *Graphics  `xml:"Graphics"`
	Xref       *Xref      `xml:"Xref"`
	Objects    []*Object  `xml:",any"`
	Biopax     *Biopax    `xml:"Biopax"`
}

// Graphics holds geometry and style attributes
type Graphics struct {
	BoardWidth    string   `xml:"BoardWidth,attr,omitempty"`
	BoardHeight   string   `xml:"BoardHeight,attr,omitempty"`
	CenterX       string   `xml:"CenterX,attr,omitempty"`
	CenterY       string   `xml:"CenterY,attr,omitempty"`
	RelX          string   `xml:"RelX,attr,omitempty"`
	RelY          string   `xml:"RelY,attr,omitempty"`
	Width         string   `xml:"Width,attr,omitempty"`
	Height        string   `xml:"Height,attr,omitempty"`
	Rotation      string   `xml:"Rotation,attr,omitempty"`
	Color         string   `xml:"Color,attr,omitempty"`
	FillColor     string   `xml:"FillColor,attr,omitempty"`
	ShapeType     string   `xml:"ShapeType,attr,omitempty"`
	LineStyle     string   `xml:"LineStyle,attr,omitempty"`
	LineThickness string   `xml:"LineThickness,attr,omitempty"`
	FontName      string   `xml:"FontName,attr,omitempty"`
	FontWeight    string   `xml:"FontWeight,attr,omitempty"`
	FontStyle     string   `xml:"FontStyle,attr,omitempty"`
	FontSize      string   `xml:"FontSize,attr,omitempty"`
	Valign        string   `xml:"Valign,attr,omitempty"`
	Align         string   `xml:"Align,attr,omitempty"`
	ZOrder        string   `xml:"ZOrder,attr,omitempty"`
	Points        []*Point `xml:"Point"`
}

// Point represents a line point, lower case coordinates and Head are GPML 2007 spellings
type Point struct {
	X         string `xml:"X,attr,omitempty"`
	Y         string `xml:"Y,attr,omitempty"`
	LegacyX   string `xml:"x,attr,omitempty"`
	LegacyY   string `xml:"y,attr,omitempty"`
	GraphRef  string `xml:"GraphRef,attr,omitempty"`
	ArrowHead string `xml:"ArrowHead,attr,omitempty"`
	Head      string `xml:"Head,attr,omitempty"`
}

// Xref represents a database reference
type Xref struct {
	Database string `xml:"Database,attr"`
	ID       string `xml:"ID,attr"`
}

// Comment represents a free text comment
type Comment struct {
	Source string `xml:"Source,attr,omitempty"`
	Text   string `xml:",chardata"`
}

// Biopax keeps BioPAX block verbatim
type Biopax struct {
	Inner []byte `xml:",innerxml"`
}

func (p *Point) x() string {
	if p.X != "" {
		return p.X
	}
	return p.LegacyX
}

func (p *Point) y() string {
	if p.Y != "" {
		return p.Y
	}
	return p.LegacyY
}

func (p *Point) arrowHead() string {
	if p.ArrowHead != "" {
		return p.ArrowHead
	}
	return p.Head
}
