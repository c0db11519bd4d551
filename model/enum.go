package model

import (
	"fmt"
	"strings"
)

type (
	// ShapeType represents a GPML shape name
	ShapeType string
	// LineType represents a line ending (arrow head)
	LineType string
	// LineStyle represents a stroke style
	LineStyle string
)

func (v ShapeType) String() string { return string(v) }
func (v LineType) String() string  { return string(v) }
func (v LineStyle) String() string { return string(v) }

func (v ShapeType) Equal(other Value) bool {
	o, ok := other.(ShapeType)
	return ok && o == v
}

func (v LineType) Equal(other Value) bool {
	o, ok := other.(LineType)
	return ok && o == v
}

func (v LineStyle) Equal(other Value) bool {
	o, ok := other.(LineStyle)
	return ok && o == v
}

func (ShapeType) value() {}
func (LineType) value()  {}
func (LineStyle) value() {}

var shapeTypes = canonical(
	"Rectangle", "RoundedRectangle", "Oval", "Triangle", "Pentagon", "Hexagon", "Octagon",
	"Arc", "Brace", "Mitochondria", "Sarcoplasmic Reticulum", "Endoplasmic Reticulum",
	"Golgi Apparatus", "Cell", "Nucleus", "Organelle", "Membrane", "None", "mim-degradation",
)

var lineTypes = canonical(
	"Line", "Arrow", "TBar", "Receptor", "ReceptorSquare", "ReceptorRound", "LigandSquare",
	"LigandRound", "mim-conversion", "mim-stimulation", "mim-catalysis", "mim-inhibition",
	"mim-necessary-stimulation", "mim-binding", "mim-cleavage", "mim-transcription-translation",
	"mim-gap", "mim-branching-left", "mim-branching-right", "mim-modification",
)

var lineStyles = canonical("Solid", "Broken", "Double")

func canonical(names ...string) map[string]string {
	result := make(map[string]string, len(names))
	for _, name := range names {
		result[strings.ToLower(name)] = name
	}
	return result
}

func lookup(kind Kind, registry map[string]string, text string, strict bool) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty %v value", kind)
	}
	if name, ok := registry[strings.ToLower(text)]; ok {
		return name, nil
	}
	if strict {
		return "", fmt.Errorf("unknown %v value %q", kind, text)
	}
	return text, nil
}

// ParseShapeType returns canonical shape name, shapes outside the built-in set are kept verbatim
func ParseShapeType(text string) (ShapeType, error) {
	name, err := lookup(KindShapeType, shapeTypes, text, false)
	return ShapeType(name), err
}

// ParseLineType returns canonical arrow head name
func ParseLineType(text string) (LineType, error) {
	name, err := lookup(KindLineType, lineTypes, text, false)
	return LineType(name), err
}

// ParseLineStyle returns canonical line style
func ParseLineStyle(text string) (LineStyle, error) {
	name, err := lookup(KindLineStyle, lineStyles, text, true)
	return LineStyle(name), err
}
