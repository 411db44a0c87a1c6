package rust

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Alia5/rosmsgc/internal/codegen/meta"
)

const tabSize = 4

const structTemplate = `{{.Indent}}pub struct {{.Name}} {
{{- range .Fields}}
{{$.Indent}}    {{.Name}}: {{.Type}},
{{- end}}
{{.Indent}}}
`

var structTmpl = template.Must(template.New("struct").Parse(structTemplate))

type rustField struct {
	Name string
	Type string
}

type rustStruct struct {
	Indent string
	Name   string
	Fields []rustField
}

type rustModule struct {
	Indent  string
	Name    string
	Structs []rustStruct
	Modules []*rustModule
}

func indent(depth int) string {
	return strings.Repeat(" ", depth*tabSize)
}

// msgToStruct projects a message onto a struct declared at depth.
func msgToStruct(msg *meta.Msg, depth int) (rustStruct, error) {
	if msg.Name == "" {
		return rustStruct{}, meta.ErrMissingName
	}

	s := rustStruct{
		Indent: indent(depth),
		Name:   msg.Name,
		Fields: make([]rustField, 0, len(msg.Fields)),
	}
	for _, field := range msg.Fields {
		s.Fields = append(s.Fields, rustField{
			Name: MapFieldName(field.Name),
			Type: MapType(field.Type),
		})
	}
	return s, nil
}

// packageToModule projects a package onto a module declared at depth.
// Packages with no message anywhere below them project to nil.
func packageToModule(pkg *meta.Package, depth int) (*rustModule, error) {
	if !pkg.HasContent() {
		return nil, nil
	}

	mod := &rustModule{
		Indent: indent(depth),
		Name:   pkg.Name,
	}
	for _, msg := range pkg.Messages {
		s, err := msgToStruct(msg, depth+1)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", pkg.Name, err)
		}
		mod.Structs = append(mod.Structs, s)
	}
	for _, child := range pkg.Packages {
		childMod, err := packageToModule(child, depth+1)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", pkg.Name, err)
		}
		if childMod != nil {
			mod.Modules = append(mod.Modules, childMod)
		}
	}
	return mod, nil
}

func (m *rustModule) write(b *strings.Builder) error {
	fmt.Fprintf(b, "%spub mod %s {\n", m.Indent, m.Name)
	for _, s := range m.Structs {
		if err := structTmpl.Execute(b, s); err != nil {
			return fmt.Errorf("execute template: %w", err)
		}
	}
	for _, child := range m.Modules {
		if err := child.write(b); err != nil {
			return err
		}
	}
	fmt.Fprintf(b, "%s}\n", m.Indent)
	return nil
}

// EmitStruct renders a single message as a struct declared at depth.
func EmitStruct(msg *meta.Msg, depth int) (string, error) {
	s, err := msgToStruct(msg, depth)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := structTmpl.Execute(&b, s); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return b.String(), nil
}

// EmitPackage renders pkg and its subtree as nested Rust modules. Branches
// without any message are left out entirely; a tree with no messages at all
// renders as the empty string.
func EmitPackage(pkg *meta.Package) (string, error) {
	mod, err := packageToModule(pkg, 0)
	if err != nil {
		return "", err
	}
	if mod == nil {
		return "", nil
	}

	var b strings.Builder
	if err := mod.write(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
