package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

const templateExt = ".tmpl"

// Engine renders the page templates through a pongo2 template set. Parsed
// templates are cached by path; output is auto-escaped.
type Engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

// NewEngine builds an engine over files. Each loader is consulted in order,
// so overrides placed before the built-in templates win.
func NewEngine(files ...fs.FS) (*Engine, error) {
	var loaders []pongo2.TemplateLoader
	for _, f := range files {
		if f == nil {
			continue
		}
		loaders = append(loaders, pongo2.NewFSLoader(f))
	}
	if len(loaders) == 0 {
		return nil, errors.New("site: need at least one template fs.FS")
	}
	return &Engine{
		set:       pongo2.NewSet("portfolio", loaders...),
		templates: make(map[string]*pongo2.Template),
	}, nil
}

// Render executes the named template with data and writes the result to w.
// Nothing is written when execution fails.
func (e *Engine) Render(w io.Writer, name string, data any) error {
	if e == nil || e.set == nil {
		return errors.New("site: engine is nil")
	}
	path := strings.TrimSpace(name)
	if !strings.HasSuffix(path, templateExt) {
		path += templateExt
	}

	tmpl, err := e.template(path)
	if err != nil {
		return err
	}

	viewContext, err := toContext(data)
	if err != nil {
		return fmt.Errorf("site: convert data: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(viewContext, &buf); err != nil {
		return fmt.Errorf("site: execute template %q: %w", path, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func (e *Engine) template(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("site: load template %q: %w", path, err)
	}
	e.templates[path] = tmpl
	return tmpl, nil
}

// toContext flattens data through JSON so templates see the json tag names
// of the view model.
func toContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	out := pongo2.Context{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
