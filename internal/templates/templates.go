// Package templates resolves named templates from a search directory
// and renders them to files with named bindings.
package templates

import (
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
)

// Environment resolves template names relative to a single search
// root, the descriptor's templates_directory.
type Environment struct {
	root string
}

// NewEnvironment creates an environment rooted at root.
func NewEnvironment(root string) *Environment {
	return &Environment{root: filepath.Clean(root)}
}

// Lookup resolves and compiles the named template. Names are paths
// relative to the environment root; absolute names and names escaping
// the root are rejected. The returned handle is safe to reuse for any
// number of renders.
func (e *Environment) Lookup(name string) (*Template, error) {
	if name == "" {
		return nil, errors.New("template name is required")
	}
	clean := filepath.Clean(name)
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return nil, fmt.Errorf("template name %q escapes the templates directory", name)
	}

	path := filepath.Join(e.root, clean)
	tpl, err := template.New(filepath.Base(clean)).Option("missingkey=error").ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("load template %q: %w", name, err)
	}
	return &Template{name: name, tpl: tpl}, nil
}

// Template is a compiled template resolved from an Environment.
type Template struct {
	name string
	tpl  *template.Template
}

// RenderToFile renders the template with the given bindings and
// writes the output to path, overwriting any existing file. A binding
// referenced by the template but absent from the map is a render
// error.
func (t *Template) RenderToFile(path string, bindings map[string]any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := t.tpl.Execute(f, bindings); err != nil {
		_ = f.Close()
		return fmt.Errorf("render template %q: %w", t.name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
