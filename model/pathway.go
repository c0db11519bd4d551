package model

import (
	"strings"

	"github.com/google/uuid"
)

// Namespace is the GPML namespace written by this package
const Namespace = "http://pathvisio.org/GPML/2013a"

// Pathway represents a GPML document as an ordered list of elements
type Pathway struct {
	Namespace string
	Elements  []*Element
	Biopax    []byte // raw BioPAX block, carried through unchanged
}

// New creates a pathway with an empty metadata record
func New() *Pathway {
	return &Pathway{
		Namespace: Namespace,
		Elements:  []*Element{NewElement(MappInfo)},
	}
}

// Add appends an element
func (p *Pathway) Add(element *Element) {
	p.Elements = append(p.Elements, element)
}

// Index returns element position or -1
func (p *Pathway) Index(element *Element) int {
	for i, candidate := range p.Elements {
		if candidate == element {
			return i
		}
	}
	return -1
}

// Remove removes an element, returns false if the element is not part of the pathway
func (p *Pathway) Remove(element *Element) bool {
	idx := p.Index(element)
	if idx == -1 {
		return false
	}
	p.Elements = append(p.Elements[:idx], p.Elements[idx+1:]...)
	return true
}

// Replace swaps an element in place
func (p *Pathway) Replace(existing, replacement *Element) bool {
	idx := p.Index(existing)
	if idx == -1 {
		return false
	}
	p.Elements[idx] = replacement
	return true
}

// ElementByID returns an element with the supplied graph id
func (p *Pathway) ElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	for _, element := range p.Elements {
		if element.GraphID() == id {
			return element
		}
	}
	return nil
}

// MappInfo returns pathway metadata record
func (p *Pathway) MappInfo() *Element {
	for _, element := range p.Elements {
		if element.ObjectType == MappInfo {
			return element
		}
	}
	return nil
}

// UniqueGraphID returns a graph id not used by any element
func (p *Pathway) UniqueGraphID() string {
	used := map[string]bool{}
	for _, element := range p.Elements {
		if id := element.GraphID(); id != "" {
			used[id] = true
		}
		if id := element.Text(GroupID); id != "" {
			used[id] = true
		}
	}
	for {
		id := "id" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		if !used[id] {
			return id
		}
	}
}

// Copy creates a deep copy of the pathway
func (p *Pathway) Copy() *Pathway {
	result := &Pathway{Namespace: p.Namespace}
	result.Elements = make([]*Element, len(p.Elements))
	for i, element := range p.Elements {
		result.Elements[i] = element.Copy()
	}
	if p.Biopax != nil {
		result.Biopax = append([]byte{}, p.Biopax...)
	}
	return result
}
