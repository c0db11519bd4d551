package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedKind is returned when a value can not be represented for a kind
var ErrUnsupportedKind = errors.New("unsupported property kind")

// Value represents a typed property value. The set of implementations is closed.
type Value interface {
	String() string
	Equal(other Value) bool
	value()
}

type (
	// StringValue holds free text and string-like enumerations
	StringValue string
	// DoubleValue holds coordinates, sizes and other real numbers
	DoubleValue float64
	// IntValue holds integer values (z-order)
	IntValue int
	// BoolValue holds flags (bold, italic)
	BoolValue bool
	// ColorValue holds a normalized colour: lower case hex without '#', or a lower case name
	ColorValue string
)

func (v StringValue) String() string { return string(v) }
func (v DoubleValue) String() string { return strconv.FormatFloat(float64(v), 'f', -1, 64) }
func (v IntValue) String() string    { return strconv.Itoa(int(v)) }
func (v BoolValue) String() string   { return strconv.FormatBool(bool(v)) }
func (v ColorValue) String() string  { return string(v) }

func (v StringValue) Equal(other Value) bool {
	o, ok := other.(StringValue)
	return ok && o == v
}

func (v DoubleValue) Equal(other Value) bool {
	o, ok := other.(DoubleValue)
	return ok && o == v
}

func (v IntValue) Equal(other Value) bool {
	o, ok := other.(IntValue)
	return ok && o == v
}

func (v BoolValue) Equal(other Value) bool {
	o, ok := other.(BoolValue)
	return ok && o == v
}

func (v ColorValue) Equal(other Value) bool {
	o, ok := other.(ColorValue)
	return ok && o == v
}

func (StringValue) value() {}
func (DoubleValue) value() {}
func (IntValue) value()    {}
func (BoolValue) value()   {}
func (ColorValue) value()  {}

// AsFloat returns numeric representation of a value
func AsFloat(v Value) (float64, bool) {
	switch actual := v.(type) {
	case DoubleValue:
		return float64(actual), true
	case IntValue:
		return float64(actual), true
	}
	return 0, false
}

// ParseValue converts text into a value of the supplied kind
func ParseValue(kind Kind, text string) (Value, error) {
	switch kind {
	case KindString, KindDBID, KindGeneType, KindFont, KindAlign, KindValign, KindGroupStyle, KindOrganism:
		return StringValue(text), nil
	case KindDouble:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %v value %q: %w", kind, text, err)
		}
		return DoubleValue(f), nil
	case KindInteger:
		i, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("invalid %v value %q: %w", kind, text, err)
		}
		return IntValue(i), nil
	case KindBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("invalid %v value %q: %w", kind, text, err)
		}
		return BoolValue(b), nil
	case KindColor:
		return ParseColor(text)
	case KindShapeType:
		return ParseShapeType(text)
	case KindLineType:
		return ParseLineType(text)
	case KindLineStyle:
		return ParseLineStyle(text)
	case KindDataSource:
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("empty %v value", kind)
		}
		return DataSourceByName(text), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedKind, kind)
}

// accepts reports whether v is a valid representation for kind
func accepts(kind Kind, v Value) bool {
	switch v.(type) {
	case StringValue:
		switch kind {
		case KindString, KindDBID, KindGeneType, KindFont, KindAlign, KindValign, KindGroupStyle, KindOrganism:
			return true
		}
	case DoubleValue:
		return kind == KindDouble
	case IntValue:
		return kind == KindInteger
	case BoolValue:
		return kind == KindBoolean
	case ColorValue:
		return kind == KindColor
	case ShapeType:
		return kind == KindShapeType
	case LineType:
		return kind == KindLineType
	case LineStyle:
		return kind == KindLineStyle
	case DataSource:
		return kind == KindDataSource
	}
	return false
}

// ParseColor normalizes a GPML colour
func ParseColor(text string) (ColorValue, error) {
	text = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(text), "#"))
	if text == "" {
		return "", fmt.Errorf("empty %v value", KindColor)
	}
	return ColorValue(text), nil
}
