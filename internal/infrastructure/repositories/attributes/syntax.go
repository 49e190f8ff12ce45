package attributes

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
)

// offsets of each submatch start within an attributePattern index match
const (
	groupPrefix = 2
	groupName   = 4
	groupOpen   = 6
	groupValue  = 8
	groupClose  = 10
)

// qualifier matches an optional namespace in front of an attribute name,
// e.g. "System.Reflection." or "System::Reflection::".
const qualifier = `(?:[\w.:]+[.:])?`

// declarationPrefix matches the opening of a declaration up to an attribute
// name: either the first attribute of the line or one following a comma in a
// multi-attribute block such as [assembly: AssemblyTitle("a"), AssemblyVersion("1.0")].
func declarationPrefix(open, closing string) string {
	return `(?im)^([ \t]*` + open + `[ \t]*assembly[ \t]*:[ \t]*(?:[^` + closing + `\r\n]*,[ \t]*)?)`
}

// syntax describes how one language spells an assembly-level attribute.
type syntax struct {
	// prefix matches the opening of a declaration up to the attribute name,
	// anchored at the start of a line so commented-out declarations are ignored.
	prefix string
	// literal matches a string literal argument.
	literal string
	// declaration renders a complete declaration.
	declaration func(name, literal string) string
	imports     []string
	quote       func(value string) string
	unquote     func(literal string) string
}

//nolint:gochecknoglobals // fixed language table
var syntaxes = map[entities.FileKind]syntax{
	entities.FileKindCSharp: {
		prefix:  declarationPrefix(`\[`, `\]`),
		literal: `"(?:[^"\\\r\n]|\\.)*"`,
		declaration: func(name, literal string) string {
			return fmt.Sprintf("[assembly: %s(%s)]", name, literal)
		},
		imports: []string{"using System.Reflection;", "using System.Runtime.CompilerServices;"},
		quote:   backslashQuote,
		unquote: backslashUnquote,
	},
	entities.FileKindVisualBasic: {
		prefix:  declarationPrefix(`<`, `>`),
		literal: `"(?:[^"\r\n]|"")*"`,
		declaration: func(name, literal string) string {
			return fmt.Sprintf("<Assembly: %s(%s)>", name, literal)
		},
		imports: []string{"Imports System.Reflection"},
		quote: func(value string) string {
			return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
		},
		unquote: func(literal string) string {
			return strings.ReplaceAll(literal[1:len(literal)-1], `""`, `"`)
		},
	},
	entities.FileKindCpp: {
		prefix:  declarationPrefix(`\[`, `\]`),
		literal: `L?"(?:[^"\\\r\n]|\\.)*"`,
		declaration: func(name, literal string) string {
			return fmt.Sprintf("[assembly: %s(%s)];", name, literal)
		},
		imports: []string{"using namespace System::Reflection;"},
		quote:   backslashQuote,
		unquote: func(literal string) string {
			return backslashUnquote(strings.TrimPrefix(literal, "L"))
		},
	},
}

// presencePattern finds any declaration of name, whatever its arguments.
func (s syntax) presencePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(s.prefix + qualifier + regexp.QuoteMeta(name) + `(?:Attribute)?\b`)
}

// attributePattern finds declarations of name with an empty or literal argument.
// Submatches: prefix, name token, opening parenthesis, literal, closing parenthesis.
func (s syntax) attributePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(
		s.prefix + `(` + qualifier + regexp.QuoteMeta(name) + `(?:Attribute)?)([ \t]*\([ \t]*)(` + s.literal + `)?([ \t]*\))`,
	)
}

func backslashQuote(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(value)
	return `"` + escaped + `"`
}

func backslashUnquote(literal string) string {
	inner := literal[1 : len(literal)-1]
	return strings.NewReplacer(`\\`, `\`, `\"`, `"`).Replace(inner)
}
