package output

import (
	"io"

	"github.com/viant/gpmldiff/delta"
	"github.com/viant/gpmldiff/model"
)

// Delta collects diff events into an XML delta document
type Delta struct {
	writer   io.Writer
	document *delta.Document
	current  *delta.Entry
}

func (d *Delta) Insert(element *model.Element) {
	d.document.Add(delta.Insert, element)
}

func (d *Delta) Delete(element *model.Element) {
	d.document.Add(delta.Delete, element)
}

func (d *Delta) ModifyStart(old, new *model.Element) {
	d.current = d.document.Add(delta.Modify, old)
}

func (d *Delta) ModifyAttr(attr, old, new string) {
	d.current.Changes = append(d.current.Changes, &delta.Change{Attr: attr, Old: old, New: new})
}

func (d *Delta) ModifyEnd() {
	d.current = nil
}

// Document returns collected delta document
func (d *Delta) Document() *delta.Document {
	return d.document
}

// Flush writes pretty printed delta document
func (d *Delta) Flush() error {
	return d.document.Encode(d.writer)
}

func NewDelta(writer io.Writer) *Delta {
	return &Delta{writer: writer, document: &delta.Document{}}
}
