// Package delta defines XML delta document exchanged between diff output and patch
package delta

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/viant/gpmldiff/gpml"
	"github.com/viant/gpmldiff/model"
)

// ErrInvalidDelta is returned when input is not a valid delta document
var ErrInvalidDelta = errors.New("invalid delta document")

const (
	Insert = "Insert"
	Delete = "Delete"
	Modify = "Modify"
)

// Document represents a delta document
type Document struct {
	XMLName xml.Name `xml:"Delta"`
	Entries []*Entry `xml:",any"`
}

// Entry represents one Insert, Delete or Modify entry with embedded GPML element
type Entry struct {
	XMLName xml.Name
	Path    string       `xml:"path,attr,omitempty"` // single change form
	Old     string       `xml:"old,attr,omitempty"`
	New     string       `xml:"new,attr,omitempty"`
	Element *gpml.Object `xml:",any"`
	Changes []*Change    `xml:"Change"`
}

// Change represents a changed attribute
type Change struct {
	Attr string `xml:"attr,attr"`
	Old  string `xml:"old,attr"`
	New  string `xml:"new,attr"`
}

// Kind returns entry kind
func (e *Entry) Kind() string {
	return e.XMLName.Local
}

// AllChanges returns change children followed by the single change form if present
func (e *Entry) AllChanges() []*Change {
	if e.Path == "" {
		return e.Changes
	}
	return append(append([]*Change{}, e.Changes...), &Change{Attr: e.Path, Old: e.Old, New: e.New})
}

// Add appends an entry embedding the element
func (d *Document) Add(kind string, element *model.Element) *Entry {
	entry := &Entry{XMLName: xml.Name{Local: kind}, Element: gpml.NewObject(element, model.Namespace)}
	d.Entries = append(d.Entries, entry)
	return entry
}

// Encode writes pretty printed delta document
func (d *Document) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(d); err != nil {
		return fmt.Errorf("failed to encode delta: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Decode reads a delta document
func Decode(r io.Reader) (*Document, error) {
	result := &Document{}
	if err := gpml.NewDecoder(r).Decode(result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDelta, err)
	}
	for _, entry := range result.Entries {
		switch entry.Kind() {
		case Insert, Delete, Modify:
		default:
			return nil, fmt.Errorf("%w: unexpected entry %v", ErrInvalidDelta, entry.Kind())
		}
	}
	return result, nil
}

// Unmarshal parses a delta document
func Unmarshal(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}
