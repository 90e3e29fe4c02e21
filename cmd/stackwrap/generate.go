/*
   Copyright 2025 The Stackerr Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

// stackerrPath is the import path of the package that defines the Stacker
// contract referenced by every generated file.
const stackerrPath = "stackerr.dev/stackerr"

// model is everything the template needs to emit a delegating wrapper.
type model struct {
	Package string // package of the generated file
	Type    string // wrapper type name
	Field   string // name of the single wrapped field
	Pkg     string // local name of the stackerr import
	Imports []string // rendered import specs
	New     string // constructor expr of the inner type, e.g. "stackerr.New"
	Newf    string
	Empty   string
}

// Generate reads the Go source file declaring typeName and returns the
// generated delegating implementation, gofmt-formatted.
func Generate(filename, typeName string) ([]byte, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return generate(src, filename, typeName)
}

func generate(src []byte, filename, typeName string) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	st, err := findStruct(file, typeName)
	if err != nil {
		return nil, err
	}

	// The whole point of the wrapper is delegation to a single inner
	// value; anything else is a declaration mistake, reported now rather
	// than as a confusing compile error in the generated file.
	switch n := st.Fields.NumFields(); {
	case n == 0:
		return nil, fmt.Errorf("type %s must wrap exactly one field, has none", typeName)
	case n > 1:
		return nil, fmt.Errorf("type %s must wrap exactly one field, has %d", typeName, n)
	}
	field := st.Fields.List[0]
	if len(field.Names) == 0 {
		return nil, fmt.Errorf("type %s: the wrapped field must be named, not embedded", typeName)
	}

	m := &model{
		Package: file.Name.Name,
		Type:    typeName,
		Field:   field.Names[0].Name,
	}
	if err := resolveInner(file, types.ExprString(field.Type), m); err != nil {
		return nil, fmt.Errorf("type %s: %w", typeName, err)
	}

	var buf bytes.Buffer
	if err := wrapperTmpl.Execute(&buf, m); err != nil {
		return nil, err
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code for %s: %w", typeName, err)
	}
	return out, nil
}

func findStruct(file *ast.File, typeName string) (*ast.StructType, error) {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name.Name != typeName {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				return nil, fmt.Errorf("type %s is not a struct", typeName)
			}
			return st, nil
		}
	}
	return nil, fmt.Errorf("type %s not found", typeName)
}

// resolveInner derives the inner type's constructor expressions and the
// imports of the generated file from the field type as written.
func resolveInner(file *ast.File, fieldType string, m *model) error {
	inner := strings.TrimPrefix(fieldType, "*")

	imports := map[string]string{} // path → local name

	if pkg, _, ok := strings.Cut(inner, "."); ok {
		ipath, err := importPath(file, pkg)
		if err != nil {
			return err
		}
		imports[ipath] = pkg
		m.New = pkg + ".New"
		m.Newf = pkg + ".Newf"
		m.Empty = pkg + ".Empty"
	} else {
		// Local wrapper around another local type: its constructors
		// follow the same naming scheme this generator emits.
		m.New = "New" + inner
		m.Newf = "New" + inner + "f"
		m.Empty = "Empty" + inner
	}

	// The generated signatures reference the contract package. Reuse the
	// declaring file's import when it has one, whatever its alias.
	m.Pkg = "stackerr"
	if name, ok := localName(file, stackerrPath); ok {
		m.Pkg = name
	}
	imports[stackerrPath] = m.Pkg

	for ipath, name := range imports {
		if path.Base(ipath) == name {
			m.Imports = append(m.Imports, strconv.Quote(ipath))
		} else {
			m.Imports = append(m.Imports, name+" "+strconv.Quote(ipath))
		}
	}
	sort.Strings(m.Imports)
	return nil
}

// importPath finds the import of the declaring file that the package
// identifier pkg refers to.
func importPath(file *ast.File, pkg string) (string, error) {
	for _, imp := range file.Imports {
		p, _ := strconv.Unquote(imp.Path.Value)
		if imp.Name != nil {
			if imp.Name.Name == pkg {
				return p, nil
			}
			continue
		}
		if path.Base(p) == pkg {
			return p, nil
		}
	}
	return "", fmt.Errorf("cannot resolve import for package %q", pkg)
}

// localName reports the local name under which the declaring file imports
// ipath, if it does.
func localName(file *ast.File, ipath string) (string, bool) {
	for _, imp := range file.Imports {
		p, _ := strconv.Unquote(imp.Path.Value)
		if p != ipath {
			continue
		}
		if imp.Name != nil {
			return imp.Name.Name, true
		}
		return path.Base(p), true
	}
	return "", false
}

var wrapperTmpl = template.Must(template.New("wrapper").Parse(`// Code generated by stackwrap -type {{.Type}}; DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{.}}
{{- end}}
)

// New{{.Type}} returns a {{.Type}} whose chain starts with the given message.
func New{{.Type}}(msg any) {{.Type}} {
	return {{.Type}}{ {{.Field}}: {{.New}}(msg)}
}

// New{{.Type}}f returns a {{.Type}} whose chain starts with a formatted message.
func New{{.Type}}f(format string, args ...any) {{.Type}} {
	return {{.Type}}{ {{.Field}}: {{.Newf}}(format, args...)}
}

// Empty{{.Type}} returns a {{.Type}} with no message.
func Empty{{.Type}}() {{.Type}} {
	return {{.Type}}{ {{.Field}}: {{.Empty}}()}
}

func (e {{.Type}}) Error() string { return e.{{.Field}}.Error() }

func (e {{.Type}}) Unwrap() error { return e.{{.Field}}.Unwrap() }

func (e {{.Type}}) Message() string { return e.{{.Field}}.Message() }

func (e {{.Type}}) Code() ({{.Pkg}}.Code, bool) { return e.{{.Field}}.Code() }

func (e {{.Type}}) WithCode(c {{.Pkg}}.Code) {{.Type}} {
	return {{.Type}}{ {{.Field}}: e.{{.Field}}.WithCode(c)}
}

func (e {{.Type}}) ClearCode() {{.Type}} {
	return {{.Type}}{ {{.Field}}: e.{{.Field}}.ClearCode()}
}

func (e {{.Type}}) URI() (string, bool) { return e.{{.Field}}.URI() }

func (e {{.Type}}) WithURI(uri string) {{.Type}} {
	return {{.Type}}{ {{.Field}}: e.{{.Field}}.WithURI(uri)}
}

func (e {{.Type}}) ClearURI() {{.Type}} {
	return {{.Type}}{ {{.Field}}: e.{{.Field}}.ClearURI()}
}

func (e {{.Type}}) WithMessage(msg any) {{.Type}} {
	return {{.Type}}{ {{.Field}}: e.{{.Field}}.WithMessage(msg)}
}

func (e {{.Type}}) ClearMessage() {{.Type}} {
	return {{.Type}}{ {{.Field}}: e.{{.Field}}.ClearMessage()}
}

func (e {{.Type}}) Stack(msg any) {{.Type}} {
	return {{.Type}}{ {{.Field}}: e.{{.Field}}.Stack(msg)}
}

func (e {{.Type}}) Stackf(format string, args ...any) {{.Type}} {
	return {{.Type}}{ {{.Field}}: e.{{.Field}}.Stackf(format, args...)}
}

var _ {{.Pkg}}.Stacker[{{.Type}}] = {{.Type}}{}
`))
