package cli

import (
	"fmt"
	"io"

	"github.com/ruboto/rubotogen/internal/descriptor"
	"github.com/ruboto/rubotogen/internal/errors"
	"github.com/ruboto/rubotogen/internal/generator"
	"github.com/ruboto/rubotogen/internal/models"
	"github.com/ruboto/rubotogen/internal/project"
	"github.com/ruboto/rubotogen/internal/templates"
	"github.com/ruboto/rubotogen/internal/utils"
	"github.com/ruboto/rubotogen/internal/utils/fileops"
)

// Options are the per-invocation overrides taken from persistent flags
type Options struct {
	API         string
	Templates   string
	Destination string
	MinSDK      int
	TargetSDK   int
	Verbosity   int
	Quiet       bool

	// Output replaces stdout and stderr when set
	Output io.Writer
}

// Settings are the values a session runs with after every source was consulted
type Settings struct {
	API         string
	Templates   string
	Destination string
	Package     string
	MinSDK      int
	TargetSDK   int
	Manifest    string // path of the manifest that contributed, if any
}

// Session wires the descriptor, template store and generator for one command
type Session struct {
	Config      *Config
	Settings    Settings
	Diagnostics *utils.DiagnosticSystem
	Reporter    *DiagnosticReporter
	Generator   *generator.Generator

	summary GenerationSummary
}

// GenerationSummary contains information about the generation process
type GenerationSummary struct {
	FilesGenerated int
	MethodsCreated int
	Exclusions     int
	GeneratedFiles []string
}

// ResolveSettings applies precedence flag > config > manifest > default
func ResolveSettings(cfg *Config, opts Options) (Settings, error) {
	s := Settings{
		API:         ResolveString(opts.API, cfg.API, "api.xml"),
		Templates:   ResolveString(opts.Templates, cfg.Templates),
		Destination: ResolveString(opts.Destination, cfg.Destination, "."),
	}

	manifest, err := project.FindManifest(s.Destination)
	if err != nil {
		return s, ConfigError("reading project manifest", err)
	}
	if manifest == nil {
		manifest = &project.Manifest{}
	}
	s.Manifest = manifest.Path

	s.Package = ResolveString(cfg.Package, manifest.Package, models.DefaultPackage)
	s.MinSDK = ResolveInt(opts.MinSDK, cfg.MinSDK, manifest.MinSDK)
	if s.MinSDK == 0 {
		return s, ConfigError("resolving SDK range", errors.ConfigurationError("min_sdk",
			"not set; pass --min-sdk, set min_sdk in rubotogen.yaml or declare uses-sdk in AndroidManifest.xml"))
	}
	// Android treats a missing targetSdkVersion as equal to minSdkVersion
	s.TargetSDK = ResolveInt(opts.TargetSDK, cfg.TargetSDK, manifest.TargetSDK, s.MinSDK)

	request := models.FilterRequest{MinSDK: s.MinSDK, TargetSDK: s.TargetSDK}
	if err := request.Validate(); err != nil {
		return s, ConfigError("resolving SDK range", err)
	}
	return s, nil
}

// NewSession resolves settings, loads the API descriptor and builds the generator
func NewSession(cfg *Config, opts Options) (*Session, error) {
	diag := utils.NewDiagnosticSystem(utils.LevelFromFlags(opts.Verbosity, opts.Quiet))
	if opts.Output != nil {
		diag.SetOutput(opts.Output, opts.Output)
	}
	reporter := NewDiagnosticReporter(opts.Verbosity > 0, opts.Output)

	settings, err := ResolveSettings(cfg, opts)
	if err != nil {
		return nil, err
	}
	diag.Verbose("SDK range %d..%d, package %s", settings.MinSDK, settings.TargetSDK, settings.Package)

	doc, err := descriptor.Load(settings.API)
	if err != nil {
		return nil, DescriptorError("loading API descriptor", err)
	}
	diag.Debug("Loaded %d types from %s", len(doc.Types()), settings.API)

	store, err := templates.NewDefaultStore(settings.Templates)
	if err != nil {
		return nil, GeneralError("opening templates", err)
	}
	engine := templates.NewEngine(store, fileops.NewFileOps())

	gen := generator.NewGenerator(doc, engine, generator.Config{
		MinSDK:         settings.MinSDK,
		TargetSDK:      settings.TargetSDK,
		DefaultPackage: settings.Package,
	}, diag)

	return &Session{
		Config:      cfg,
		Settings:    settings,
		Diagnostics: diag,
		Reporter:    reporter,
		Generator:   gen,
		summary:     GenerationSummary{GeneratedFiles: make([]string, 0)},
	}, nil
}

// Record adds generated files to the summary and announces them
func (s *Session) Record(files ...*models.GeneratedFile) {
	for _, f := range files {
		if f == nil {
			continue
		}
		s.summary.FilesGenerated++
		s.summary.MethodsCreated += f.MethodCount
		s.summary.Exclusions += len(f.Exclusions)
		s.summary.GeneratedFiles = append(s.summary.GeneratedFiles, f.Path)
		s.Diagnostics.Wrote(f.Path)
	}
}

// RecordPaths adds files written outside a generation unit
func (s *Session) RecordPaths(paths ...string) {
	for _, p := range paths {
		s.summary.FilesGenerated++
		s.summary.GeneratedFiles = append(s.summary.GeneratedFiles, p)
		s.Diagnostics.Wrote(p)
	}
}

// ReportSuccess lists the written files, warns about excluded methods and prints
// the final statistics
func (s *Session) ReportSuccess() {
	if len(s.summary.GeneratedFiles) > 0 {
		s.Diagnostics.Section("Generated files")
		s.Diagnostics.Indent()
		for _, path := range s.summary.GeneratedFiles {
			s.Diagnostics.List("%s", path)
		}
		s.Diagnostics.Unindent()
	}

	if s.summary.Exclusions > 0 && s.Diagnostics.Level() >= utils.DiagnosticWarn {
		s.Reporter.ReportWarning(fmt.Sprintf(
			"%d method(s) were left out of the generated classes; see the warnings above", s.summary.Exclusions))
	}

	s.Diagnostics.Summary("Generation complete", map[string]interface{}{
		"files":      s.summary.FilesGenerated,
		"methods":    s.summary.MethodsCreated,
		"exclusions": s.summary.Exclusions,
	})
}
