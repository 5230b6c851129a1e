package descriptor

import (
	"gopkg.in/yaml.v3"

	"github.com/ruboto/rubotogen/internal/errors"
	"github.com/ruboto/rubotogen/internal/models"
)

// yamlAPI is the compact descriptor form: members are written as Java signatures
//
//	types:
//	  - name: android.view.View.OnClickListener
//	    kind: interface
//	    methods:
//	      - signature: public abstract void onClick(android.view.View v)
type yamlAPI struct {
	Types []yamlType `yaml:"types"`
}

type yamlType struct {
	Name         string       `yaml:"name"`
	Kind         string       `yaml:"kind"`
	Extends      string       `yaml:"extends"`
	Implements   []string     `yaml:"implements"`
	Abstract     bool         `yaml:"abstract"`
	Final        bool         `yaml:"final"`
	APIAdded     *int         `yaml:"api_added"`
	Deprecated   *int         `yaml:"deprecated"`
	APIRemoved   *int         `yaml:"api_removed"`
	Methods      []yamlMember `yaml:"methods"`
	Constructors []yamlMember `yaml:"constructors"`
}

type yamlMember struct {
	Signature  string `yaml:"signature"`
	APIAdded   *int   `yaml:"api_added"`
	Deprecated *int   `yaml:"deprecated"`
	APIRemoved *int   `yaml:"api_removed"`
}

// parseYAML decodes the compact YAML descriptor
func parseYAML(source string, data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.WrapDescriptorError(source, err)
	}
	var api yamlAPI
	if err := root.Decode(&api); err != nil {
		return nil, errors.WrapDescriptorError(source, err)
	}
	lines := typeLines(&root)

	doc := newDocument(source)
	for i, t := range api.Types {
		loc := errors.SourceLocation{File: source}
		if i < len(lines) {
			loc.Line = lines[i]
		}
		if err := doc.addYAMLType(loc, t); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// typeLines returns the line of each entry in the top-level types sequence
func typeLines(root *yaml.Node) []int {
	if len(root.Content) == 0 {
		return nil
	}
	mapping := root.Content[0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != "types" {
			continue
		}
		var lines []int
		for _, item := range mapping.Content[i+1].Content {
			lines = append(lines, item.Line)
		}
		return lines
	}
	return nil
}

func (d *Document) addYAMLType(loc errors.SourceLocation, t yamlType) error {
	if t.Name == "" {
		return errors.DescriptorError(loc, "type without a name")
	}

	var kind models.Kind
	switch t.Kind {
	case "class", "":
		kind = models.KindClass
	case "interface":
		kind = models.KindInterface
	default:
		return errors.DescriptorError(loc, "%s: unknown kind %q", t.Name, t.Kind)
	}

	element := models.ApiElement{
		Name:         t.Name,
		Kind:         kind,
		Visibility:   "public",
		Abstract:     t.Abstract,
		Final:        t.Final,
		Extends:      t.Extends,
		Implements:   t.Implements,
		APIAdded:     t.APIAdded,
		DeprecatedAt: t.Deprecated,
		APIRemoved:   t.APIRemoved,
	}
	if err := checkVersions(loc, &element); err != nil {
		return err
	}

	entry := &typeEntry{element: element}
	for _, m := range t.Methods {
		member, err := yamlMemberElement(loc, t.Name, m)
		if err != nil {
			return err
		}
		if member.Kind != models.KindMethod {
			return errors.DescriptorError(loc, "%s: %q is not a method signature", t.Name, m.Signature)
		}
		if kind == models.KindInterface {
			member.Abstract = member.Abstract || !member.Static
			if member.Visibility == "package" {
				member.Visibility = "public"
			}
		}
		entry.methods = append(entry.methods, member)
	}
	for _, c := range t.Constructors {
		member, err := yamlMemberElement(loc, t.Name, c)
		if err != nil {
			return err
		}
		if member.Kind != models.KindConstructor {
			return errors.DescriptorError(loc, "%s: %q is not a constructor signature", t.Name, c.Signature)
		}
		entry.constructors = append(entry.constructors, member)
	}
	return d.add(entry)
}

func yamlMemberElement(loc errors.SourceLocation, owner string, m yamlMember) (models.ApiElement, error) {
	sig, err := ParseSignature(m.Signature)
	if err != nil {
		return models.ApiElement{}, errors.Wrapf(errors.DescriptorErrorCode, err, "%s", owner).WithLocation(loc)
	}
	element := sig.member(owner)
	element.APIAdded = m.APIAdded
	element.DeprecatedAt = m.Deprecated
	element.APIRemoved = m.APIRemoved
	if err := checkVersions(loc, &element); err != nil {
		return element, err
	}
	return element, nil
}

func checkVersions(loc errors.SourceLocation, e *models.ApiElement) error {
	for attr, v := range map[string]*int{"api_added": e.APIAdded, "deprecated": e.DeprecatedAt, "api_removed": e.APIRemoved} {
		if v != nil && *v <= 0 {
			return errors.DescriptorError(loc, "%s: %s must be a positive integer, got %d", e.Name, attr, *v)
		}
	}
	return nil
}
