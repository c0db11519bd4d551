package output

import (
	"errors"

	"github.com/viant/gpmldiff/diff"
	"github.com/viant/gpmldiff/model"
)

// Multi fans events out to several outputters
type Multi []diff.Outputter

func (m Multi) Insert(element *model.Element) {
	for _, out := range m {
		out.Insert(element)
	}
}

func (m Multi) Delete(element *model.Element) {
	for _, out := range m {
		out.Delete(element)
	}
}

func (m Multi) ModifyStart(old, new *model.Element) {
	for _, out := range m {
		out.ModifyStart(old, new)
	}
}

func (m Multi) ModifyAttr(attr, old, new string) {
	for _, out := range m {
		out.ModifyAttr(attr, old, new)
	}
}

func (m Multi) ModifyEnd() {
	for _, out := range m {
		out.ModifyEnd()
	}
}

// Flush flushes every outputter and joins errors
func (m Multi) Flush() error {
	var errs []error
	for _, out := range m {
		if err := out.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
