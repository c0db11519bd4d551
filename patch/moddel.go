package patch

import (
	"errors"
	"fmt"

	"github.com/viant/gpmldiff/delta"
	"github.com/viant/gpmldiff/model"
)

// ErrUnsupportedProperty is returned when a change refers to an attribute that can not be set
var ErrUnsupportedProperty = errors.New("unsupported property")

// ModDel represents a recorded modification or deletion of an old element
type ModDel struct {
	Old     *model.Element
	Deleted bool
	Changes []*delta.Change
}

// Build returns a copy of the old element with changes applied, an empty new value unsets the attribute
func (m *ModDel) Build() (*model.Element, error) {
	result := m.Old.Copy()
	for _, change := range m.Changes {
		p, ok := model.PropertyByTag(change.Attr)
		if !ok || !result.ObjectType.Allows(p) {
			return nil, fmt.Errorf("%w: %v on %v", ErrUnsupportedProperty, change.Attr, m.Old)
		}
		if change.New == "" {
			result.Unset(p)
			continue
		}
		if err := result.SetText(p, change.New); err != nil {
			return nil, fmt.Errorf("%w: %v", delta.ErrInvalidDelta, err)
		}
	}
	return result, nil
}

func (m *ModDel) String() string {
	if m.Deleted {
		return "delete " + m.Old.String()
	}
	return fmt.Sprintf("modify %v (%d changes)", m.Old, len(m.Changes))
}
