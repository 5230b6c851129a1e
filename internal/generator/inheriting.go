package generator

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ruboto/rubotogen/internal/errors"
	"github.com/ruboto/rubotogen/internal/templates"
)

// scriptPlaceholder is the script name baked into the stock templates and samples
const scriptPlaceholder = "start.rb"

// InheritingParams describes a scripted component backed by one of the core classes
type InheritingParams struct {
	Klass       string // Activity, Service or BroadcastReceiver
	Name        string
	Package     string
	ScriptName  string
	Destination string
	Filename    string // defaults to Name
}

// InheritingResult lists what GenerateInheritingFile wrote
type InheritingResult struct {
	Source     string
	Script     string
	TestScript string
}

// GenerateInheritingFile writes a Java class extending Ruboto<Klass> that runs
// ScriptName, and appends the sample script and its test to the project.
func (g *Generator) GenerateInheritingFile(params InheritingParams) (*InheritingResult, error) {
	if params.Package == "" {
		params.Package = g.config.DefaultPackage
	}
	if params.Filename == "" {
		params.Filename = params.Name
	}
	if params.Destination == "" {
		params.Destination = "."
	}
	target := "Inheriting" + params.Klass
	switch {
	case params.Klass == "":
		return nil, errors.ValidationError("class", "Activity, Service or BroadcastReceiver", "nothing")
	case params.Name == "":
		return nil, errors.ValidationError("name", "a generated type name", "nothing")
	case params.ScriptName == "":
		return nil, errors.ValidationError("script", "a script file name", "nothing")
	}

	sample := "sample_" + underscore(params.Klass)
	source, err := g.engine.Render(target, templates.Substitutions{}.
		Add(templates.TokenPackage, params.Package).
		Add(target, params.Name).
		Add(scriptPlaceholder, params.ScriptName))
	if err != nil {
		return nil, errors.WrapGenerationError(target, string(StageRender), err)
	}
	script, err := g.engine.RenderSample(sample+".rb", templates.Substitutions{}.
		Add(templates.TokenPackage, params.Package).
		Add("Sample"+params.Klass, params.Name).
		Add(scriptPlaceholder, params.ScriptName))
	if err != nil {
		return nil, errors.WrapGenerationError(target, string(StageRender), err)
	}
	testScript, err := g.engine.RenderSample(sample+"_test.rb", templates.Substitutions{}.
		Add(templates.TokenPackage, params.Package).
		Add("Sample"+params.Klass, params.Name))
	if err != nil {
		return nil, errors.WrapGenerationError(target, string(StageRender), err)
	}

	// every path is checked before anything is written
	files := g.engine.Files()
	result := &InheritingResult{}
	if result.Source, err = g.engine.OutputPath(params.Destination, params.Package, params.Filename); err != nil {
		return nil, err
	}
	scripts := filepath.Join("assets", "scripts")
	if result.Script, err = files.PathValidator().Within(params.Destination,
		filepath.Join(scripts, params.ScriptName)); err != nil {
		return nil, err
	}
	if result.TestScript, err = files.PathValidator().Within(params.Destination,
		filepath.Join("test", scripts, strings.TrimSuffix(params.ScriptName, ".rb")+"_test.rb")); err != nil {
		return nil, err
	}

	if err := files.WriteFile(result.Source, source); err != nil {
		return nil, errors.WrapGenerationError(target, string(StageRender), err)
	}
	if err := files.AppendFile(result.Script, script); err != nil {
		return nil, errors.WrapGenerationError(target, string(StageRender), err)
	}
	if err := files.AppendFile(result.TestScript, testScript); err != nil {
		return nil, errors.WrapGenerationError(target, string(StageRender), err)
	}
	g.diag.Verbose("Wrote %s", result.Source)
	return result, nil
}

// underscore converts BroadcastReceiver to broadcast_receiver
func underscore(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
