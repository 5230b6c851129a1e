// Package templates loads the stock source templates and sample scripts and fills
// in their placeholder tokens.
package templates

import (
	"path/filepath"
	"strings"

	"github.com/ruboto/rubotogen/internal/utils/fileops"
)

// Engine renders templates from a Store and writes the results under a destination
type Engine struct {
	store Store
	files *fileops.FileOps
}

// NewEngine creates an engine over store, writing through files
func NewEngine(store Store, files *fileops.FileOps) *Engine {
	if files == nil {
		files = fileops.NewFileOps()
	}
	return &Engine{store: store, files: files}
}

// Store returns the asset store the engine renders from
func (e *Engine) Store() Store {
	return e.store
}

// Files returns the writer used for generated output
func (e *Engine) Files() *fileops.FileOps {
	return e.files
}

// Render loads the template id and applies subs to it
func (e *Engine) Render(id string, subs Substitutions) (string, error) {
	text, err := e.store.Template(id)
	if err != nil {
		return "", err
	}
	return Apply(text, subs), nil
}

// RenderSample loads the sample script id and applies subs to it
func (e *Engine) RenderSample(id string, subs Substitutions) (string, error) {
	text, err := e.store.Sample(id)
	if err != nil {
		return "", err
	}
	return Apply(text, subs), nil
}

// Build renders template id and writes it as name.java in the source directory of
// pkg under dest. Nothing touches the filesystem until rendering has succeeded.
func (e *Engine) Build(id, pkg, name string, subs Substitutions, dest string) (string, error) {
	text, err := e.Render(id, subs)
	if err != nil {
		return "", err
	}
	path, err := e.OutputPath(dest, pkg, name)
	if err != nil {
		return "", err
	}
	if err := e.files.WriteFile(path, text); err != nil {
		return "", err
	}
	return path, nil
}

// OutputPath returns {dest}/src/{package as path}/{name}.java
func (e *Engine) OutputPath(dest, pkg, name string) (string, error) {
	if dest == "" {
		dest = "."
	}
	rel := filepath.Join("src", filepath.FromSlash(strings.ReplaceAll(pkg, ".", "/")), name+templateExt)
	return e.files.PathValidator().Within(dest, rel)
}
