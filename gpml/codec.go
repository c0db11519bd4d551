package gpml

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/klauspost/pgzip"
	"github.com/viant/gpmldiff/model"
	"golang.org/x/net/html/charset"
)

// ErrInvalidDocument is returned when input is not a valid GPML document
var ErrInvalidDocument = errors.New("invalid GPML document")

const rootName = "Pathway"

// schema order of pathway children
var writeOrder = map[model.ObjectType]int{
	model.DataNode:      1,
	model.State:         2,
	model.Line:          3,
	model.GraphicalLine: 4,
	model.Label:         5,
	model.Shape:         6,
	model.Group:         7,
	model.InfoBox:       8,
	model.Legend:        9,
}

// NewDecoder returns XML decoder resolving non UTF-8 charsets
func NewDecoder(r io.Reader) *xml.Decoder {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	return decoder
}

// Read reads a pathway, gzip compressed input is detected by magic bytes
func Read(r io.Reader) (*model.Pathway, error) {
	reader := bufio.NewReader(r)
	if magic, _ := reader.Peek(2); len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := pgzip.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		defer gz.Close()
		return decode(gz)
	}
	return decode(reader)
}

// Unmarshal parses a pathway from data
func Unmarshal(data []byte) (*model.Pathway, error) {
	return Read(bytes.NewReader(data))
}

func decode(r io.Reader) (*model.Pathway, error) {
	root := &Object{}
	if err := NewDecoder(r).Decode(root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return root.Pathway()
}

// Pathway converts a decoded root object into a pathway
func (o *Object) Pathway() (*model.Pathway, error) {
	if o.XMLName.Local != rootName {
		return nil, fmt.Errorf("%w: unexpected root element %v", ErrInvalidDocument, o.XMLName.Local)
	}
	info, err := o.Element()
	if err != nil {
		return nil, err
	}
	result := &model.Pathway{Namespace: o.XMLName.Space, Elements: []*model.Element{info}}
	if result.Namespace == "" {
		result.Namespace = model.Namespace
	}
	for _, child := range o.Objects {
		if objectType, ok := objectTypes[child.XMLName.Local]; !ok || objectType == model.MappInfo {
			continue
		}
		element, err := child.Element()
		if err != nil {
			return nil, err
		}
		result.Add(element)
	}
	if o.Biopax != nil {
		result.Biopax = o.Biopax.Inner
	}
	return result, nil
}

// NewRoot converts a pathway into its root XML object
func NewRoot(pathway *model.Pathway) *Object {
	namespace := pathway.Namespace
	if namespace == "" {
		namespace = model.Namespace
	}
	info := pathway.MappInfo()
	if info == nil {
		info = model.NewElement(model.MappInfo)
	}
	root := NewObject(info, namespace)
	var children []*model.Element
	for _, element := range pathway.Elements {
		if element.ObjectType != model.MappInfo {
			children = append(children, element)
		}
	}
	sort.SliceStable(children, func(i, j int) bool {
		return writeOrder[children[i].ObjectType] < writeOrder[children[j].ObjectType]
	})
	for _, child := range children {
		root.Objects = append(root.Objects, NewObject(child, ""))
	}
	if pathway.Biopax != nil {
		root.Biopax = &Biopax{Inner: pathway.Biopax}
	}
	return root
}

// Write writes pretty printed GPML
func Write(w io.Writer, pathway *model.Pathway) error {
	return encode(w, NewRoot(pathway))
}

// Marshal returns pretty printed GPML
func Marshal(pathway *model.Pathway) ([]byte, error) {
	buffer := &bytes.Buffer{}
	err := Write(buffer, pathway)
	return buffer.Bytes(), err
}

// MarshalElement encodes a single element with GPML namespace, suitable for embedding
func MarshalElement(element *model.Element) ([]byte, error) {
	data, err := xml.MarshalIndent(NewObject(element, model.Namespace), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %v: %w", element, err)
	}
	return data, nil
}

// UnmarshalElement decodes a single element
func UnmarshalElement(data []byte) (*model.Element, error) {
	object := &Object{}
	if err := NewDecoder(bytes.NewReader(data)).Decode(object); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return object.Element()
}

func encode(w io.Writer, root *Object) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(root); err != nil {
		return fmt.Errorf("failed to encode pathway: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
