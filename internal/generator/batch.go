package generator

import (
	"strings"

	"github.com/ruboto/rubotogen/internal/errors"
	"github.com/ruboto/rubotogen/internal/models"
)

// SelectAll generates every core class except the explicit-only ones
const SelectAll = "all"

// FailurePolicy decides what a batch does after a unit fails
type FailurePolicy int

const (
	// HaltOnError stops at the first failing unit
	HaltOnError FailurePolicy = iota
	// CollectErrors runs every unit and returns the failures together
	CollectErrors
)

type coreGroup int

const (
	groupListener coreGroup = iota
	groupLifecycle
	groupExplicit
)

type coreEntry struct {
	class string
	group coreGroup
}

// coreCatalog lists the classes the runtime ships prebuilt, in generation order
var coreCatalog = []coreEntry{
	{"android.view.View.OnClickListener", groupListener},
	{"android.widget.AdapterView.OnItemClickListener", groupListener},
	{"android.app.Activity", groupLifecycle},
	{"android.app.Service", groupLifecycle},
	{"android.content.BroadcastReceiver", groupLifecycle},
	{"android.view.View", groupLifecycle},
	{"android.preference.PreferenceActivity", groupExplicit},
	{"android.app.TabActivity", groupExplicit},
}

// lifecycleExcludes are implemented by hand in the core templates
var lifecycleExcludes = []string{"onCreate", "onReceive"}

const (
	listenerPackage = "org.ruboto.callbacks"
	corePackage     = "org.ruboto"
)

// CoreParams selects core classes and carries the overrides shared by the lifecycle ones
type CoreParams struct {
	Selection     string // "all" or a simple class name such as "Activity"
	MethodBase    string
	MethodInclude []string
	MethodExclude []string
	Implements    []string
	Force         bool
	Destination   string
	Policy        FailurePolicy
}

// CoreClassNames returns the simple names accepted as a selection
func CoreClassNames() []string {
	names := make([]string, len(coreCatalog))
	for i, e := range coreCatalog {
		names[i] = simpleName(e.class)
	}
	return names
}

// GenerateCoreClasses builds the Ruboto runtime classes. Listeners always use default
// parameters; the shared overrides only reach the lifecycle and explicit-only classes.
func (g *Generator) GenerateCoreClasses(params CoreParams) ([]*models.GeneratedFile, error) {
	units := coreUnits(params)
	if len(units) == 0 {
		return nil, errors.ValidationError("class", "all or one of "+strings.Join(CoreClassNames(), ", "), params.Selection)
	}

	var files []*models.GeneratedFile
	failures := errors.NewMultipleErrors()
	for _, req := range units {
		g.diag.Info("Generating %s from %s", req.Name, req.Target())
		file, err := g.GenerateSubclassOrInterface(req)
		if err != nil {
			if params.Policy == HaltOnError {
				return files, err
			}
			failures.Add(asGenError(req.Target(), err))
			continue
		}
		files = append(files, file)
	}
	return files, failures.ErrorOrNil()
}

// coreUnits expands a selection into generation requests in catalog order
func coreUnits(params CoreParams) []models.GenerationParams {
	exclude := append(append([]string(nil), params.MethodExclude...), lifecycleExcludes...)

	var units []models.GenerationParams
	for _, entry := range coreCatalog {
		name := simpleName(entry.class)
		selected := params.Selection == name || (params.Selection == SelectAll && entry.group != groupExplicit)
		if !selected {
			continue
		}

		if entry.group == groupListener {
			units = append(units, models.GenerationParams{
				Class:       entry.class,
				Name:        "Ruboto" + name,
				Package:     listenerPackage,
				Destination: params.Destination,
			})
			continue
		}

		template := "Ruboto" + name
		switch {
		case entry.group == groupExplicit:
			template = "RubotoActivity"
		case name == "View":
			template = models.DefaultTemplate
		}
		units = append(units, models.GenerationParams{
			Class:         entry.class,
			Name:          "Ruboto" + name,
			Package:       corePackage,
			Template:      template,
			MethodBase:    params.MethodBase,
			MethodInclude: params.MethodInclude,
			MethodExclude: exclude,
			Implements:    params.Implements,
			Force:         params.Force,
			Destination:   params.Destination,
		})
	}
	return units
}

func asGenError(target string, err error) errors.GenError {
	if ge, ok := err.(errors.GenError); ok {
		return ge
	}
	return errors.WrapGenerationError(target, "batch", err)
}

func simpleName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
