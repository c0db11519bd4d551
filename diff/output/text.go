package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/viant/gpmldiff/model"
)

// Text renders diff events as text lines
type Text struct {
	writer  io.Writer
	buffer  bytes.Buffer
	current *model.Element
	insert  *color.Color
	delete  *color.Color
	modify  *color.Color
}

func (t *Text) Insert(element *model.Element) {
	t.insert.Fprintf(&t.buffer, "insert: %v\n", element)
}

func (t *Text) Delete(element *model.Element) {
	t.delete.Fprintf(&t.buffer, "delete: %v\n", element)
}

func (t *Text) ModifyStart(old, new *model.Element) {
	t.current = old
}

func (t *Text) ModifyAttr(attr, old, new string) {
	t.modify.Fprintf(&t.buffer, "modify: %v[%v: '%v' -> '%v']\n", t.current, attr, old, new)
}

func (t *Text) ModifyEnd() {
	t.current = nil
}

// Flush writes buffered lines
func (t *Text) Flush() error {
	_, err := t.buffer.WriteTo(t.writer)
	if err != nil {
		return fmt.Errorf("failed to write diff: %w", err)
	}
	return nil
}

// NewText creates a text outputter, colored adds ANSI insert green, delete red, modify yellow
func NewText(writer io.Writer, colored bool) *Text {
	result := &Text{
		writer: writer,
		insert: color.New(color.FgGreen),
		delete: color.New(color.FgRed),
		modify: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{result.insert, result.delete, result.modify} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return result
}
