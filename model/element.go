package model

import (
	"fmt"
	"strings"
)

// Point represents an intermediate line point, mid points are kept but never compared
type Point struct {
	X         float64
	Y         float64
	GraphRef  string
	ArrowHead string
}

// Element represents one drawable or semantic unit of a pathway
type Element struct {
	ObjectType ObjectType
	MidPoints  []Point
	values     map[Property]Value
}

// NewElement creates an empty element
func NewElement(objectType ObjectType) *Element {
	return &Element{ObjectType: objectType, values: map[Property]Value{}}
}

// Get returns property value or nil
func (e *Element) Get(p Property) Value {
	return e.values[p]
}

// Has returns true if the property is set
func (e *Element) Has(p Property) bool {
	_, ok := e.values[p]
	return ok
}

// Set sets property value
func (e *Element) Set(p Property, v Value) error {
	if !e.ObjectType.Allows(p) {
		return fmt.Errorf("property %v is not legal for %v", p, e.ObjectType)
	}
	if v == nil {
		e.Unset(p)
		return nil
	}
	if !accepts(p.Kind(), v) {
		return fmt.Errorf("value %T is not valid for %v (%v)", v, p, p.Kind())
	}
	if e.values == nil {
		e.values = map[Property]Value{}
	}
	e.values[p] = v
	return nil
}

// SetText parses and sets property value
func (e *Element) SetText(p Property, text string) error {
	v, err := ParseValue(p.Kind(), text)
	if err != nil {
		return fmt.Errorf("failed to set %v: %w", p, err)
	}
	return e.Set(p, v)
}

// Unset removes property value
func (e *Element) Unset(p Property) {
	delete(e.values, p)
}

// Text returns property value as text, or empty string
func (e *Element) Text(p Property) string {
	if v := e.values[p]; v != nil {
		return v.String()
	}
	return ""
}

// Float returns numeric property value
func (e *Element) Float(p Property) (float64, bool) {
	return AsFloat(e.values[p])
}

// Properties returns set properties in display order
func (e *Element) Properties() []Property {
	var result []Property
	for p := Comments; p < propertyEnd; p++ {
		if _, ok := e.values[p]; ok {
			result = append(result, p)
		}
	}
	return result
}

// GraphID returns element graph id
func (e *Element) GraphID() string {
	return e.Text(GraphID)
}

// Copy creates a deep copy of the element
func (e *Element) Copy() *Element {
	result := NewElement(e.ObjectType)
	for p, v := range e.values {
		result.values[p] = v
	}
	if len(e.MidPoints) > 0 {
		result.MidPoints = make([]Point, len(e.MidPoints))
		copy(result.MidPoints, e.MidPoints)
	}
	return result
}

// String returns a short printable summary, i.e. [DataNode id='a1' lbl='Gene']
func (e *Element) String() string {
	builder := &strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(string(e.ObjectType))
	if id := e.GraphID(); id != "" {
		builder.WriteString(" id='")
		builder.WriteString(id)
		builder.WriteString("'")
	}
	switch {
	case e.Has(TextLabel):
		builder.WriteString(" lbl='")
		builder.WriteString(e.Text(TextLabel))
		builder.WriteString("'")
	case e.Has(MapInfoName):
		builder.WriteString(" name='")
		builder.WriteString(e.Text(MapInfoName))
		builder.WriteString("'")
	}
	if e.ObjectType.IsLine() {
		fmt.Fprintf(builder, " %s,%s -> %s,%s", e.Text(StartX), e.Text(StartY), e.Text(EndX), e.Text(EndY))
	} else if x, ok := e.Float(CenterX); ok {
		y, _ := e.Float(CenterY)
		fmt.Fprintf(builder, " @%v,%v", x, y)
	}
	builder.WriteString("]")
	return builder.String()
}
