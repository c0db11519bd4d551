package gpml

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/viant/gpmldiff/model"
)

var elementNames = map[model.ObjectType]string{
	model.DataNode:      "DataNode",
	model.State:         "State",
	model.Line:          "Interaction",
	model.GraphicalLine: "GraphicalLine",
	model.Label:         "Label",
	model.Shape:         "Shape",
	model.Group:         "Group",
	model.InfoBox:       "InfoBox",
	model.Legend:        "Legend",
	model.MappInfo:      "Pathway",
}

var objectTypes = map[string]model.ObjectType{
	"DataNode":      model.DataNode,
	"State":         model.State,
	"Interaction":   model.Line,
	"Line":          model.Line,
	"GraphicalLine": model.GraphicalLine,
	"Label":         model.Label,
	"Shape":         model.Shape,
	"Group":         model.Group,
	"InfoBox":       model.InfoBox,
	"Legend":        model.Legend,
	"Pathway":       model.MappInfo,
}

// assigner sets textual attributes on an element and keeps the first error
type assigner struct {
	element *model.Element
	err     error
}

func (a *assigner) set(p model.Property, text string) {
	if a.err != nil || text == "" {
		return
	}
	if err := a.element.SetText(p, text); err != nil {
		a.err = err
	}
}

func (a *assigner) flag(p model.Property, text, on string) {
	if text == "" {
		return
	}
	a.set(p, fmt.Sprint(strings.EqualFold(text, on)))
}

// Element converts XML object into a pathway element
func (o *Object) Element() (*model.Element, error) {
	objectType, ok := objectTypes[o.XMLName.Local]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported element %v", ErrInvalidDocument, o.XMLName.Local)
	}
	a := &assigner{element: model.NewElement(objectType)}
	if len(o.Comments) > 0 {
		var texts []string
		for _, comment := range o.Comments {
			texts = append(texts, strings.TrimSpace(comment.Text))
		}
		a.set(model.Comments, strings.Join(texts, "\n"))
	}
	if objectType.Allows(model.BiopaxRef) && len(o.BiopaxRefs) > 0 {
		a.set(model.BiopaxRef, strings.Join(o.BiopaxRefs, " "))
	}
	g := o.Graphics
	if g == nil {
		g = &Graphics{}
	}
	switch objectType {
	case model.MappInfo:
		a.set(model.MapInfoName, o.Name)
		a.set(model.Organism, o.Organism)
		a.set(model.MapInfoDataSource, o.DataSource)
		a.set(model.Version, o.Version)
		a.set(model.Author, o.Author)
		a.set(model.MaintainedBy, o.Maintainer)
		a.set(model.Email, o.Email)
		a.set(model.License, o.License)
		a.set(model.LastModified, o.LastModified)
		a.set(model.BoardWidth, g.BoardWidth)
		a.set(model.BoardHeight, g.BoardHeight)
	case model.InfoBox, model.Legend:
		a.set(model.CenterX, o.CenterX)
		a.set(model.CenterY, o.CenterY)
	case model.Group:
		a.set(model.GroupID, o.GroupID)
		a.set(model.GraphID, o.GraphID)
		a.set(model.GroupRef, o.GroupRef)
		a.set(model.GroupStyle, o.Style)
		a.set(model.TextLabel, o.TextLabel)
	case model.Line, model.GraphicalLine:
		a.set(model.GraphID, o.GraphID)
		a.set(model.GroupRef, o.GroupRef)
		a.set(model.Color, g.Color)
		a.set(model.LineStyleProperty, g.LineStyle)
		a.set(model.LineThickness, g.LineThickness)
		a.set(model.ZOrder, g.ZOrder)
		if count := len(g.Points); count > 0 {
			start := g.Points[0]
			a.set(model.StartX, start.x())
			a.set(model.StartY, start.y())
			a.set(model.StartGraphRef, start.GraphRef)
			a.set(model.StartLineType, start.arrowHead())
			if count > 1 {
				end := g.Points[count-1]
				a.set(model.EndX, end.x())
				a.set(model.EndY, end.y())
				a.set(model.EndGraphRef, end.GraphRef)
				a.set(model.EndLineType, end.arrowHead())
			}
			for _, mid := range g.Points[1:max(1, count-1)] {
				point, err := midPoint(mid)
				if err != nil && a.err == nil {
					a.err = err
				}
				a.element.MidPoints = append(a.element.MidPoints, point)
			}
		}
		if objectType == model.Line {
			o.setXref(a)
		}
	default:
		a.set(model.GraphID, o.GraphID)
		a.set(model.TextLabel, o.TextLabel)
		a.set(model.Color, g.Color)
		a.set(model.FillColor, g.FillColor)
		a.set(model.LineStyleProperty, g.LineStyle)
		a.set(model.LineThickness, g.LineThickness)
		a.set(model.ZOrder, g.ZOrder)
		a.set(model.Width, g.Width)
		a.set(model.Height, g.Height)
		a.set(model.ShapeTypeProperty, g.ShapeType)
		if objectType == model.State {
			a.set(model.GraphRef, o.GraphRef)
			a.set(model.RelX, g.RelX)
			a.set(model.RelY, g.RelY)
			a.set(model.ModificationType, o.StateType)
			o.setXref(a)
			break
		}
		a.set(model.GroupRef, o.GroupRef)
		a.set(model.CenterX, g.CenterX)
		a.set(model.CenterY, g.CenterY)
		if objectType != model.Shape {
			a.set(model.FontName, g.FontName)
			a.flag(model.FontWeight, g.FontWeight, "Bold")
			a.flag(model.FontStyle, g.FontStyle, "Italic")
			a.set(model.FontSize, g.FontSize)
			a.set(model.Valign, g.Valign)
			a.set(model.Align, g.Align)
		}
		switch objectType {
		case model.DataNode:
			a.set(model.GeneType, o.Type)
			o.setXref(a)
		case model.Label:
			a.set(model.Href, o.Href)
		case model.Shape:
			a.set(model.Rotation, g.Rotation)
			if g.ShapeType == "" {
				a.set(model.ShapeTypeProperty, o.Type)
			}
		}
	}
	if a.err != nil {
		return nil, fmt.Errorf("%w: %v %v: %v", ErrInvalidDocument, o.XMLName.Local, o.GraphID, a.err)
	}
	return a.element, nil
}

func (o *Object) setXref(a *assigner) {
	if o.Xref == nil {
		return
	}
	a.set(model.GeneID, o.Xref.ID)
	a.set(model.SystemCode, o.Xref.Database)
}

func midPoint(p *Point) (model.Point, error) {
	result := model.Point{GraphRef: p.GraphRef, ArrowHead: p.arrowHead()}
	x, err := model.ParseValue(model.KindDouble, p.x())
	if err != nil {
		return result, err
	}
	y, err := model.ParseValue(model.KindDouble, p.y())
	if err != nil {
		return result, err
	}
	result.X, _ = model.AsFloat(x)
	result.Y, _ = model.AsFloat(y)
	return result, nil
}

// NewObject converts a pathway element into its XML object, namespace is only set on embedded elements
func NewObject(element *model.Element, namespace string) *Object {
	o := &Object{XMLName: xml.Name{Space: namespace, Local: elementNames[element.ObjectType]}}
	text := element.Text
	if comments := text(model.Comments); comments != "" {
		o.Comments = []*Comment{{Text: comments}}
	}
	if refs := text(model.BiopaxRef); refs != "" {
		o.BiopaxRefs = strings.Fields(refs)
	}
	switch element.ObjectType {
	case model.MappInfo:
		o.Name = text(model.MapInfoName)
		o.Organism = text(model.Organism)
		o.DataSource = text(model.MapInfoDataSource)
		o.Version = text(model.Version)
		o.Author = text(model.Author)
		o.Maintainer = text(model.MaintainedBy)
		o.Email = text(model.Email)
		o.License = text(model.License)
		o.LastModified = text(model.LastModified)
		o.Graphics = &Graphics{BoardWidth: text(model.BoardWidth), BoardHeight: text(model.BoardHeight)}
	case model.InfoBox, model.Legend:
		o.CenterX = text(model.CenterX)
		o.CenterY = text(model.CenterY)
	case model.Group:
		o.GroupID = text(model.GroupID)
		o.GraphID = text(model.GraphID)
		o.GroupRef = text(model.GroupRef)
		o.Style = text(model.GroupStyle)
		o.TextLabel = text(model.TextLabel)
	case model.Line, model.GraphicalLine:
		o.GraphID = text(model.GraphID)
		o.GroupRef = text(model.GroupRef)
		g := &Graphics{
			Color:         text(model.Color),
			LineStyle:     text(model.LineStyleProperty),
			LineThickness: text(model.LineThickness),
			ZOrder:        text(model.ZOrder),
		}
		g.Points = append(g.Points, &Point{
			X:         text(model.StartX),
			Y:         text(model.StartY),
			GraphRef:  text(model.StartGraphRef),
			ArrowHead: text(model.StartLineType),
		})
		for _, mid := range element.MidPoints {
			g.Points = append(g.Points, &Point{
				X:         model.DoubleValue(mid.X).String(),
				Y:         model.DoubleValue(mid.Y).String(),
				GraphRef:  mid.GraphRef,
				ArrowHead: mid.ArrowHead,
			})
		}
		g.Points = append(g.Points, &Point{
			X:         text(model.EndX),
			Y:         text(model.EndY),
			GraphRef:  text(model.EndGraphRef),
			ArrowHead: text(model.EndLineType),
		})
		o.Graphics = g
		if element.ObjectType == model.Line {
			o.Xref = newXref(element)
		}
	default:
		o.GraphID = text(model.GraphID)
		o.TextLabel = text(model.TextLabel)
		g := &Graphics{
			CenterX:       text(model.CenterX),
			CenterY:       text(model.CenterY),
			RelX:          text(model.RelX),
			RelY:          text(model.RelY),
			Width:         text(model.Width),
			Height:        text(model.Height),
			Rotation:      text(model.Rotation),
			Color:         text(model.Color),
			FillColor:     text(model.FillColor),
			ShapeType:     text(model.ShapeTypeProperty),
			LineStyle:     text(model.LineStyleProperty),
			LineThickness: text(model.LineThickness),
			FontName:      text(model.FontName),
			FontWeight:    flagText(element, model.FontWeight, "Bold"),
			FontStyle:     flagText(element, model.FontStyle, "Italic"),
			FontSize:      text(model.FontSize),
			Valign:        text(model.Valign),
			Align:         text(model.Align),
			ZOrder:        text(model.ZOrder),
		}
		o.Graphics = g
		switch element.ObjectType {
		case model.DataNode:
			o.GroupRef = text(model.GroupRef)
			o.Type = text(model.GeneType)
			o.Xref = newXref(element)
		case model.State:
			o.GraphRef = text(model.GraphRef)
			o.StateType = text(model.ModificationType)
			o.Xref = newXref(element)
		case model.Label:
			o.GroupRef = text(model.GroupRef)
			o.Href = text(model.Href)
		case model.Shape:
			o.GroupRef = text(model.GroupRef)
		}
	}
	return o
}

func newXref(element *model.Element) *Xref {
	if !element.Has(model.GeneID) && !element.Has(model.SystemCode) {
		return nil
	}
	return &Xref{Database: element.Text(model.SystemCode), ID: element.Text(model.GeneID)}
}

func flagText(element *model.Element, p model.Property, on string) string {
	v, ok := element.Get(p).(model.BoolValue)
	if !ok {
		return ""
	}
	if v {
		return on
	}
	return "Normal"
}
