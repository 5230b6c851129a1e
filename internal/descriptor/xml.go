package descriptor

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ruboto/rubotogen/internal/errors"
	"github.com/ruboto/rubotogen/internal/models"
)

// api.xml layout: packages contain classes and interfaces, which contain
// methods and constructors. Nested types are named Outer.Inner within the package.
type xmlAPI struct {
	XMLName  xml.Name     `xml:"api"`
	Packages []xmlPackage `xml:"package"`
}

type xmlPackage struct {
	Name       string    `xml:"name,attr"`
	Classes    []xmlType `xml:"class"`
	Interfaces []xmlType `xml:"interface"`
}

type xmlType struct {
	Name         string      `xml:"name,attr"`
	Extends      string      `xml:"extends,attr"`
	Abstract     string      `xml:"abstract,attr"`
	Static       string      `xml:"static,attr"`
	Final        string      `xml:"final,attr"`
	Visibility   string      `xml:"visibility,attr"`
	APIAdded     string      `xml:"api_added,attr"`
	Deprecated   string      `xml:"deprecated,attr"`
	APIRemoved   string      `xml:"api_removed,attr"`
	Implements   []xmlNamed  `xml:"implements"`
	Methods      []xmlMember `xml:"method"`
	Constructors []xmlMember `xml:"constructor"`
}

type xmlMember struct {
	Name       string     `xml:"name,attr"`
	Return     string     `xml:"return,attr"`
	Abstract   string     `xml:"abstract,attr"`
	Static     string     `xml:"static,attr"`
	Final      string     `xml:"final,attr"`
	Visibility string     `xml:"visibility,attr"`
	APIAdded   string     `xml:"api_added,attr"`
	Deprecated string     `xml:"deprecated,attr"`
	APIRemoved string     `xml:"api_removed,attr"`
	Parameters []xmlParam `xml:"parameter"`
	Exceptions []xmlNamed `xml:"exception"`
}

type xmlParam struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

type xmlNamed struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

func (n xmlNamed) qualified() string {
	if n.Type != "" {
		return n.Type
	}
	return n.Name
}

// parseXML decodes an api.xml document
func parseXML(source string, data []byte) (*Document, error) {
	var api xmlAPI
	decoder := xml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&api); err != nil {
		return nil, errors.WrapDescriptorError(source, err)
	}

	doc := newDocument(source)
	for _, pkg := range api.Packages {
		for _, t := range pkg.Classes {
			if err := doc.addXMLType(source, pkg.Name, t, models.KindClass); err != nil {
				return nil, err
			}
		}
		for _, t := range pkg.Interfaces {
			if err := doc.addXMLType(source, pkg.Name, t, models.KindInterface); err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}

func (d *Document) addXMLType(source, pkg string, t xmlType, kind models.Kind) error {
	name := t.Name
	if pkg != "" {
		name = pkg + "." + t.Name
	}
	loc := errors.SourceLocation{File: source}

	element := models.ApiElement{
		Name:       name,
		Kind:       kind,
		Visibility: visibilityOr(t.Visibility, "public"),
		Extends:    t.Extends,
	}
	var err error
	if element.Abstract, err = xmlBool(loc, name, "abstract", t.Abstract); err != nil {
		return err
	}
	if element.Static, err = xmlBool(loc, name, "static", t.Static); err != nil {
		return err
	}
	if element.Final, err = xmlBool(loc, name, "final", t.Final); err != nil {
		return err
	}
	if err := setVersions(&element, loc, t.APIAdded, t.Deprecated, t.APIRemoved); err != nil {
		return err
	}
	for _, impl := range t.Implements {
		element.Implements = append(element.Implements, impl.qualified())
	}

	entry := &typeEntry{element: element}
	for _, m := range t.Methods {
		member, err := xmlMemberElement(loc, name, m, models.KindMethod)
		if err != nil {
			return err
		}
		if kind == models.KindInterface {
			member.Abstract = member.Abstract || !member.Static
		}
		entry.methods = append(entry.methods, member)
	}
	for _, c := range t.Constructors {
		member, err := xmlMemberElement(loc, name, c, models.KindConstructor)
		if err != nil {
			return err
		}
		entry.constructors = append(entry.constructors, member)
	}
	return d.add(entry)
}

func xmlMemberElement(loc errors.SourceLocation, owner string, m xmlMember, kind models.Kind) (models.ApiElement, error) {
	element := models.ApiElement{
		Name:       m.Name,
		Kind:       kind,
		Owner:      owner,
		ReturnType: m.Return,
		Visibility: visibilityOr(m.Visibility, "public"),
	}
	if kind == models.KindConstructor {
		// Constructors are named after the simple name of the class
		if i := strings.LastIndex(element.Name, "."); i >= 0 {
			element.Name = element.Name[i+1:]
		}
	}
	if kind == models.KindMethod && element.ReturnType == "" {
		element.ReturnType = "void"
	}

	what := owner + "#" + m.Name
	var err error
	if element.Abstract, err = xmlBool(loc, what, "abstract", m.Abstract); err != nil {
		return element, err
	}
	if element.Static, err = xmlBool(loc, what, "static", m.Static); err != nil {
		return element, err
	}
	if element.Final, err = xmlBool(loc, what, "final", m.Final); err != nil {
		return element, err
	}
	if err := setVersions(&element, loc, m.APIAdded, m.Deprecated, m.APIRemoved); err != nil {
		return element, err
	}
	for _, p := range m.Parameters {
		if p.Type == "" {
			return element, errors.DescriptorError(loc, "%s: parameter without a type", what)
		}
		element.Parameters = append(element.Parameters, models.Parameter{Type: p.Type, Name: p.Name})
	}
	for _, e := range m.Exceptions {
		element.Throws = append(element.Throws, e.qualified())
	}
	return element, nil
}

// setVersions validates and assigns the lifecycle attributes.
// api.xml spells an absent deprecation as "not deprecated".
func setVersions(element *models.ApiElement, loc errors.SourceLocation, added, deprecated, removed string) error {
	var err error
	if element.APIAdded, err = optionalVersion(loc, element.Name, "api_added", added); err != nil {
		return err
	}
	if element.DeprecatedAt, err = optionalVersion(loc, element.Name, "deprecated", deprecated); err != nil {
		return err
	}
	if element.APIRemoved, err = optionalVersion(loc, element.Name, "api_removed", removed); err != nil {
		return err
	}
	return nil
}

func optionalVersion(loc errors.SourceLocation, name, attribute, value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "not deprecated" {
		return nil, nil
	}
	v, err := strconv.Atoi(value)
	if err != nil || v <= 0 {
		return nil, errors.DescriptorError(loc, "%s: %s must be a positive integer, got %q", name, attribute, value)
	}
	return &v, nil
}

func xmlBool(loc errors.SourceLocation, name, attribute, value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.DescriptorError(loc, "%s: %s must be true or false, got %q", name, attribute, value)
	}
	return b, nil
}

func visibilityOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
