package diff

import "github.com/viant/gpmldiff/model"

// Outputter receives diff events. ModifyStart and ModifyEnd bracket at least one ModifyAttr.
// Event errors are reported by Flush.
type Outputter interface {
	Insert(element *model.Element)
	Delete(element *model.Element)
	ModifyStart(old, new *model.Element)
	ModifyAttr(attr, old, new string)
	ModifyEnd()
	Flush() error
}
