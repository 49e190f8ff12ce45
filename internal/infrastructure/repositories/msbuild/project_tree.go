package msbuild

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
)

const (
	projectElement       = "Project"
	propertyGroupElement = "PropertyGroup"
	conditionAttribute   = "Condition"
	defaultIndent        = "  "

	// nesting depth of the interesting nodes below the document
	rootDepth     = 1
	groupDepth    = 2
	propertyDepth = 3
)

//nolint:gochecknoglobals // stateless replacer
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Element is a single property inside a PropertyGroup.
type Element struct {
	Name   string
	Value  string
	Exists bool

	selfClosing bool
	tagStart    int
	tagEnd      int
	valueStart  int
	valueEnd    int
	dirty       bool
}

// PropertyGroup is an ordered set of properties with a case-insensitive name index.
type PropertyGroup struct {
	Condition string
	Elements  []*Element

	index   map[string]*Element
	indent  string
	created bool
}

// Get returns the element called name, ignoring case.
func (g *PropertyGroup) Get(name string) (*Element, bool) {
	element, ok := g.index[strings.ToLower(name)]
	return element, ok
}

func (g *PropertyGroup) add(element *Element) {
	g.Elements = append(g.Elements, element)
	key := strings.ToLower(element.Name)
	if _, ok := g.index[key]; !ok {
		g.index[key] = element
	}
}

// ProjectTree is an MSBuild project parsed just enough to edit top-level
// PropertyGroup values in place. Everything it does not edit is rendered back
// byte for byte.
type ProjectTree struct {
	Groups []*PropertyGroup

	text             string
	newline          string
	indent           string
	rootContentStart int
	created          *PropertyGroup
}

// ParseProjectTree walks the XML token stream of text, recording the offsets of
// the root Project element, its PropertyGroup children and their properties.
func ParseProjectTree(text string) (*ProjectTree, error) {
	decoder := xml.NewDecoder(strings.NewReader(text))
	// text is already decoded, whatever the declaration claims
	decoder.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	tree := &ProjectTree{text: text, newline: detectNewline(text)}

	var (
		depth   int
		group   *PropertyGroup
		element *Element
		value   strings.Builder
	)

	for {
		start := int(decoder.InputOffset())
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", entities.ErrInvalidManifest, err)
		}
		end := int(decoder.InputOffset())

		switch tok := token.(type) {
		case xml.StartElement:
			depth++
			selfClosing := strings.HasSuffix(text[start:end], "/>")

			switch {
			case depth == rootDepth:
				if tok.Name.Local != projectElement {
					return nil, fmt.Errorf("%w: root element is %q, expected %q",
						entities.ErrInvalidManifest, tok.Name.Local, projectElement)
				}
				tree.rootContentStart = end
			case depth == groupDepth && tok.Name.Local == propertyGroupElement:
				group = &PropertyGroup{
					Condition: attributeValue(tok, conditionAttribute),
					index:     make(map[string]*Element),
				}
				tree.Groups = append(tree.Groups, group)
			case depth == propertyDepth && group != nil:
				element = &Element{
					Name:        tok.Name.Local,
					Exists:      true,
					selfClosing: selfClosing,
					tagStart:    start,
					valueStart:  end,
				}
				value.Reset()
			}

		case xml.CharData:
			switch {
			case depth == propertyDepth && element != nil:
				value.Write(tok)
			case depth == rootDepth && tree.indent == "" && len(tree.Groups) == 0:
				tree.indent = trailingIndent(string(tok))
			case depth == groupDepth && group != nil && group.indent == "":
				group.indent = trailingIndent(string(tok))
			}

		case xml.EndElement:
			switch {
			case depth == propertyDepth && element != nil:
				element.valueEnd = start
				element.tagEnd = end
				element.Value = value.String()
				group.add(element)
				element = nil
			case depth == groupDepth && group != nil:
				group = nil
			}
			depth--
		}
	}

	if tree.rootContentStart == 0 {
		return nil, fmt.Errorf("%w: missing %q root element", entities.ErrInvalidManifest, projectElement)
	}
	if len(tree.Groups) == 0 {
		return nil, fmt.Errorf("%w: no %q found", entities.ErrInvalidManifest, propertyGroupElement)
	}

	return tree, nil
}

// Find returns the first group, in document order, holding an element called name.
func (t *ProjectTree) Find(name string) (*PropertyGroup, *Element) {
	for _, group := range t.Groups {
		if element, ok := group.Get(name); ok {
			return group, element
		}
	}
	return nil, nil
}

// HasElement reports whether any group holds an element called name.
func (t *ProjectTree) HasElement(name string) bool {
	_, element := t.Find(name)
	return element != nil
}

// EnsureElement returns the element called name, creating an empty placeholder
// in the file's new unconditioned group when no group holds it. The new group is
// created once per file and prepended to the project.
func (t *ProjectTree) EnsureElement(name string) (*Element, bool) {
	if _, element := t.Find(name); element != nil {
		return element, false
	}

	if t.created == nil {
		t.created = &PropertyGroup{index: make(map[string]*Element), created: true}
		t.Groups = append([]*PropertyGroup{t.created}, t.Groups...)
	}

	element := &Element{Name: name, Exists: true}
	t.created.add(element)
	return element, true
}

// Set assigns a new unescaped value to element.
func (t *ProjectTree) Set(element *Element, value string) {
	if element.Value == value {
		return
	}
	element.Value = value
	element.dirty = true
}

// Render splices every change into the original text.
func (t *ProjectTree) Render() string {
	type splice struct {
		start, end int
		text       string
	}

	var splices []splice
	if t.created != nil {
		splices = append(splices, splice{t.rootContentStart, t.rootContentStart, t.renderCreatedGroup()})
	}

	for _, group := range t.Groups {
		if group.created {
			continue
		}
		for _, element := range group.Elements {
			switch {
			case !element.dirty:
			case element.selfClosing:
				splices = append(splices, splice{element.tagStart, element.tagEnd, renderElement(element)})
			default:
				splices = append(splices, splice{element.valueStart, element.valueEnd, textEscaper.Replace(element.Value)})
			}
		}
	}

	if len(splices) == 0 {
		return t.text
	}

	sort.SliceStable(splices, func(i, j int) bool { return splices[i].start < splices[j].start })

	var builder strings.Builder
	cursor := 0
	for _, s := range splices {
		builder.WriteString(t.text[cursor:s.start])
		builder.WriteString(s.text)
		cursor = s.end
	}
	builder.WriteString(t.text[cursor:])

	return builder.String()
}

func (t *ProjectTree) renderCreatedGroup() string {
	indent := t.indent
	if indent == "" {
		indent = defaultIndent
	}
	childIndent := indent + indent
	for _, group := range t.Groups {
		if !group.created && group.indent != "" {
			childIndent = group.indent
			break
		}
	}

	var builder strings.Builder
	builder.WriteString(t.newline + indent + "<" + propertyGroupElement + ">")
	for _, element := range t.created.Elements {
		builder.WriteString(t.newline + childIndent + renderElement(element))
	}
	builder.WriteString(t.newline + indent + "</" + propertyGroupElement + ">")

	return builder.String()
}

func renderElement(element *Element) string {
	return "<" + element.Name + ">" + textEscaper.Replace(element.Value) + "</" + element.Name + ">"
}

func attributeValue(start xml.StartElement, name string) string {
	for _, attr := range start.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

func detectNewline(text string) string {
	if strings.Contains(text, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// trailingIndent returns the whitespace after the last line break of s.
func trailingIndent(s string) string {
	i := strings.LastIndexByte(s, '\n')
	if i < 0 {
		return ""
	}
	tail := s[i+1:]
	if strings.TrimSpace(tail) != "" {
		return ""
	}
	return tail
}
