// Package generator produces Java subclasses and interface implementations whose
// callbacks dispatch into scripts, from the platform API descriptor.
package generator

import (
	"github.com/ruboto/rubotogen/internal/compat"
	"github.com/ruboto/rubotogen/internal/descriptor"
	"github.com/ruboto/rubotogen/internal/errors"
	"github.com/ruboto/rubotogen/internal/models"
	"github.com/ruboto/rubotogen/internal/templates"
	"github.com/ruboto/rubotogen/internal/utils"
)

// Stage names the step of a generation unit an error came from
type Stage string

const (
	StageLookup     Stage = "lookup"
	StageFilter     Stage = "filter"
	StageSynthesize Stage = "synthesize"
	StageRender     Stage = "render"
)

// Config holds the project-wide settings shared by every unit
type Config struct {
	MinSDK         int
	TargetSDK      int
	DefaultPackage string
}

// Generator turns generation requests into files
type Generator struct {
	api    descriptor.Accessor
	engine *templates.Engine
	config Config
	diag   *utils.DiagnosticSystem
}

// NewGenerator creates a generator; diag may be nil to discard output
func NewGenerator(api descriptor.Accessor, engine *templates.Engine, config Config, diag *utils.DiagnosticSystem) *Generator {
	if diag == nil {
		diag = utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	}
	return &Generator{api: api, engine: engine, config: config, diag: diag}
}

// unit carries one request through the stages
type unit struct {
	params   models.GenerationParams
	element  *models.ApiElement
	selected *models.MethodSelectionResult
	subs     templates.Substitutions
	consts   int
}

// GenerateSubclassOrInterface runs LOOKUP, FILTER, SYNTHESIZE and RENDER for one
// class or interface. Any failure aborts the unit before a file is written.
func (g *Generator) GenerateSubclassOrInterface(params models.GenerationParams) (*models.GeneratedFile, error) {
	params = params.WithDefaults(g.config.DefaultPackage)
	u := &unit{params: params}
	target := params.Target()

	if err := params.Validate(); err != nil {
		return nil, errors.WrapGenerationError(target, string(StageLookup), err)
	}

	filter := compat.NewFilter(models.FilterRequest{
		MinSDK:    g.config.MinSDK,
		TargetSDK: g.config.TargetSDK,
		Force:     params.Force,
	}, g.diag)

	steps := []struct {
		stage Stage
		run   func(*unit, *compat.Filter) error
	}{
		{StageLookup, g.lookup},
		{StageFilter, g.filter},
		{StageSynthesize, g.synthesize},
	}
	for _, step := range steps {
		if err := step.run(u, filter); err != nil {
			return nil, errors.WrapGenerationError(target, string(step.stage), err)
		}
	}

	path, err := g.engine.Build(params.Template, params.Package, params.Name, u.subs, params.Destination)
	if err != nil {
		return nil, errors.WrapGenerationError(target, string(StageRender), err)
	}
	g.diag.Verbose("Wrote %s", path)

	return &models.GeneratedFile{
		Target:        target,
		Path:          path,
		Template:      params.Template,
		MethodCount:   len(u.selected.Methods),
		ConstantCount: u.consts,
		Exclusions:    u.selected.Exclusions,
	}, nil
}

func (g *Generator) lookup(u *unit, filter *compat.Filter) error {
	element, err := g.api.FindClassOrInterface(u.params.Target())
	if err != nil {
		return err
	}
	if err := filter.Element(element); err != nil {
		return err
	}
	u.element = element
	return nil
}

func (g *Generator) filter(u *unit, filter *compat.Filter) error {
	g.diag.Progress("Generating methods for %s...", u.params.Name)

	methods, err := g.api.AllMethods(u.element, u.params.MethodBase, u.params.MethodInclude, u.params.MethodExclude, u.params.Implements)
	if err != nil {
		return err
	}
	g.diag.Debug("%d candidate methods for %s", len(methods), u.element.Name)

	selected, err := filter.Methods(methods)
	if err != nil {
		return err
	}
	u.selected = selected

	g.diag.Progress("Done. Methods created: %d", len(selected.Methods))
	return nil
}

func (g *Generator) synthesize(u *unit, _ *compat.Filter) error {
	methods := u.selected.Methods
	isClass := u.element.Kind == models.KindClass

	constants, names := constantsBlock(methods)
	u.consts = len(names)

	action := "implements"
	var ctors string
	if isClass {
		action = "extends"
		ctors = constructorsBlock(g.api.Constructors(u.element), u.params.Name)
	}

	u.subs = templates.Substitutions{}.
		Add(templates.TokenPackage, u.params.Package).
		Add(templates.TokenAction, action).
		Add(templates.TokenAndroidClass, androidClass(u.element, u.params.Implements)).
		Add(templates.TokenRubotoClass, u.params.Name).
		Add(templates.TokenConstants, constants).
		Add(templates.TokenConstantsCount, itoa(len(methods))).
		Add(templates.TokenConstructors, ctors).
		Add(templates.TokenMethods, methodsBlock(methods))
	return nil
}
