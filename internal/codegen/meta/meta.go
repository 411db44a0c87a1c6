// Package meta holds the intermediate model produced by the scanner and
// consumed by the language generators: a tree of packages, each carrying
// message definitions with ordered fields.
package meta

import "errors"

// ErrMissingName is returned when a message reaches emission without a name.
var ErrMissingName = errors.New("message definition is missing a name")

// Field is one declared member of a message.
type Field struct {
	Name    string  `json:"name"`
	RawType string  `json:"rawType"` // type token as written in the definition file
	Type    TypeRef `json:"type"`
}

// Msg is the parsed form of one definition file.
type Msg struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Package mirrors one directory of the input tree.
type Package struct {
	Name     string     `json:"name"`
	Packages []*Package `json:"packages"`
	Messages []*Msg     `json:"messages"`
}

// NewField builds a field and parses its raw type token.
func NewField(name, rawType string) Field {
	return Field{
		Name:    name,
		RawType: rawType,
		Type:    ParseTypeRef(rawType),
	}
}

// NewMsg returns an empty message with the given name.
func NewMsg(name string) *Msg {
	return &Msg{Name: name, Fields: []Field{}}
}

// AddField appends a field, keeping declaration order.
func (m *Msg) AddField(name, rawType string) {
	m.Fields = append(m.Fields, NewField(name, rawType))
}

// NewPackage returns an empty package with the given name.
func NewPackage(name string) *Package {
	return &Package{
		Name:     name,
		Packages: []*Package{},
		Messages: []*Msg{},
	}
}

func (p *Package) AddPackage(child *Package) {
	p.Packages = append(p.Packages, child)
}

func (p *Package) AddMessage(msg *Msg) {
	p.Messages = append(p.Messages, msg)
}

// HasContent reports whether this package or any package below it holds a message.
func (p *Package) HasContent() bool {
	if len(p.Messages) > 0 {
		return true
	}
	for _, child := range p.Packages {
		if child.HasContent() {
			return true
		}
	}
	return false
}

// MessageCount returns the number of messages in the whole subtree.
func (p *Package) MessageCount() int {
	n := len(p.Messages)
	for _, child := range p.Packages {
		n += child.MessageCount()
	}
	return n
}

// PackageCount returns the number of packages in the subtree, p included.
func (p *Package) PackageCount() int {
	n := 1
	for _, child := range p.Packages {
		n += child.PackageCount()
	}
	return n
}

// Metadata holds all scanned roots, in invocation order.
// Shared between generator orchestrator and language-specific generators.
type Metadata struct {
	Roots []*Package `json:"roots"`
}
