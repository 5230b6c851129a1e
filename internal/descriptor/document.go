// Package descriptor provides read-only access to the API description document:
// the classes and interfaces of the platform, their methods and constructors, and
// the version in which each was added, deprecated or removed.
package descriptor

import (
	"strings"

	"github.com/ruboto/rubotogen/internal/errors"
	"github.com/ruboto/rubotogen/internal/models"
)

// Method groups understood by AllMethods
const (
	BaseAll      = "all"
	BaseOn       = "on"
	BaseAbstract = "abstract"
	BaseNone     = "none"
)

// Accessor is the query surface the generator depends on
type Accessor interface {
	FindClassOrInterface(name string) (*models.ApiElement, error)
	AllMethods(element *models.ApiElement, base string, include, exclude, implements []string) ([]models.ApiElement, error)
	Constructors(element *models.ApiElement) []models.ApiElement
}

// typeEntry is a class or interface together with its declared members
type typeEntry struct {
	element      models.ApiElement
	methods      []models.ApiElement
	constructors []models.ApiElement
}

// Document is an indexed, validated API descriptor
type Document struct {
	source string
	types  map[string]*typeEntry
	order  []string
}

func newDocument(source string) *Document {
	return &Document{
		source: source,
		types:  make(map[string]*typeEntry),
	}
}

// add registers a type, rejecting duplicates
func (d *Document) add(entry *typeEntry) error {
	name := entry.element.Name
	if _, exists := d.types[name]; exists {
		return errors.DescriptorError(errors.SourceLocation{File: d.source}, "duplicate type %s", name)
	}
	d.types[name] = entry
	d.order = append(d.order, name)
	return nil
}

// Source returns the path the document was loaded from, if any
func (d *Document) Source() string {
	return d.source
}

// Types returns every class and interface name in document order
func (d *Document) Types() []string {
	return append([]string(nil), d.order...)
}

// FindClassOrInterface searches both class and interface records by exact name
func (d *Document) FindClassOrInterface(name string) (*models.ApiElement, error) {
	entry, ok := d.types[name]
	if !ok {
		return nil, errors.NotFoundError(name)
	}
	element := entry.element
	return &element, nil
}

// Constructors returns the public and protected constructors of a class; interfaces have none
func (d *Document) Constructors(element *models.ApiElement) []models.ApiElement {
	entry, ok := d.types[element.Name]
	if !ok || entry.element.Kind != models.KindClass {
		return nil
	}
	var ctors []models.ApiElement
	for _, c := range entry.constructors {
		if c.Visibility == "public" || c.Visibility == "protected" {
			ctors = append(ctors, c)
		}
	}
	return ctors
}

// AllMethods resolves base to a starting group of overridable methods, adds the
// methods named in include and removes the ones named in exclude.
// The result is de-duplicated by signature and ordered: the element's own methods,
// then its superclass chain, then its interfaces, then the extra implements entries.
func (d *Document) AllMethods(element *models.ApiElement, base string, include, exclude, implements []string) ([]models.ApiElement, error) {
	extra := make([]string, 0, len(implements))
	for _, name := range implements {
		iface, err := d.FindClassOrInterface(name)
		if err != nil {
			return nil, err
		}
		if iface.Kind != models.KindInterface {
			return nil, errors.ValidationError("implements", "an interface", name+" is a "+iface.Kind.String())
		}
		extra = append(extra, name)
	}

	candidates := d.inherited(element.Name, extra)

	var methods []models.ApiElement
	switch base {
	case BaseAll, "":
		methods = candidates
	case BaseOn:
		methods = filterMethods(candidates, func(m *models.ApiElement) bool {
			return strings.HasPrefix(m.Name, "on")
		})
	case BaseAbstract:
		methods = filterMethods(candidates, func(m *models.ApiElement) bool {
			return m.Abstract
		})
	case BaseNone:
	default:
		return nil, errors.ValidationError("method_base", "one of all, on, abstract, none", base)
	}

	if len(include) > 0 {
		present := make(map[string]bool, len(methods))
		for _, m := range methods {
			present[m.Key()] = true
		}
		wanted := nameSet(include)
		for _, m := range candidates {
			if wanted[m.Name] && !present[m.Key()] {
				methods = append(methods, m)
				present[m.Key()] = true
			}
		}
	}

	if len(exclude) > 0 {
		excluded := nameSet(exclude)
		methods = filterMethods(methods, func(m *models.ApiElement) bool {
			return !excluded[m.Name]
		})
	}

	return methods, nil
}

// inherited walks the hierarchy of name and the extra interfaces and returns every
// overridable method exactly once. The first declaration of a signature shadows
// later ones, so a final override hides the overridable original.
func (d *Document) inherited(name string, extra []string) []models.ApiElement {
	seen := make(map[string]bool)
	visited := make(map[string]bool)
	var methods []models.ApiElement

	collect := func(typeName string) {
		entry, ok := d.types[typeName]
		if !ok || visited[typeName] {
			return
		}
		visited[typeName] = true
		for _, m := range entry.methods {
			if seen[m.Key()] {
				continue
			}
			seen[m.Key()] = true
			if m.IsOverridable() {
				methods = append(methods, m)
			}
		}
	}

	// Superclass chain first, interfaces afterwards
	var interfaces []string
	for current := name; current != ""; {
		entry, ok := d.types[current]
		if !ok || visited[current] {
			break
		}
		collect(current)
		interfaces = append(interfaces, entry.element.Implements...)
		if entry.element.Kind == models.KindInterface {
			break
		}
		current = entry.element.Extends
	}
	if entry, ok := d.types[name]; ok && entry.element.Kind == models.KindInterface && entry.element.Extends != "" {
		interfaces = append(interfaces, entry.element.Extends)
	}

	queue := append(interfaces, extra...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		entry, ok := d.types[next]
		if !ok || visited[next] {
			continue
		}
		collect(next)
		queue = append(queue, entry.element.Implements...)
		if entry.element.Extends != "" {
			queue = append(queue, entry.element.Extends)
		}
	}

	return methods
}

func filterMethods(methods []models.ApiElement, keep func(*models.ApiElement) bool) []models.ApiElement {
	var out []models.ApiElement
	for i := range methods {
		if keep(&methods[i]) {
			out = append(out, methods[i])
		}
	}
	return out
}

func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
