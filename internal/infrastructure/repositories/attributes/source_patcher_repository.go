package attributes

import (
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	"github.com/rios0rios0/assemblystamp/internal/domain/repositories"
)

const (
	patcherName    = "attributes"
	defaultNewline = "\r\n"
)

// SourcePatcherRepository implements repositories.PatcherRepository for
// assembly attribute files written in C#, Visual Basic or C++/CLI.
// Declarations are located with line-anchored patterns; no syntax tree is built.
type SourcePatcherRepository struct{}

var _ repositories.PatcherRepository = (*SourcePatcherRepository)(nil)

// NewSourcePatcherRepository creates a new attribute patcher.
func NewSourcePatcherRepository() *SourcePatcherRepository {
	return &SourcePatcherRepository{}
}

func (r *SourcePatcherRepository) Name() string { return patcherName }

func (r *SourcePatcherRepository) Supports(kind entities.FileKind) bool {
	_, ok := syntaxes[kind]
	return ok
}

// Patch ensures the mandatory imports, then inserts or rewrites one
// declaration per directive.
func (r *SourcePatcherRepository) Patch(
	text string,
	target entities.ManifestTarget,
	config *entities.RunConfig,
) (*entities.PatchResult, error) {
	lang, ok := syntaxes[target.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrUnsupportedFileKind, target.Path)
	}

	directives := config.DirectivesFor(target.Kind)
	newline := detectNewline(text)

	if config.InsertAttributes && len(directives) > 0 {
		text = ensureImports(text, lang.imports, newline)
	}

	var changes []entities.FieldChange
	for _, directive := range directives {
		patched, change := patchAttribute(text, lang, directive, config.Components, newline)
		text = patched
		if change != nil {
			changes = append(changes, *change)
		}
	}

	return &entities.PatchResult{Text: text, Changes: changes}, nil
}

// patchAttribute applies one directive. The last matching declaration holds the
// existing value used for version merges; every match receives the result.
func patchAttribute(
	text string,
	lang syntax,
	directive entities.FieldDirective,
	components entities.VersionComponents,
	newline string,
) (string, *entities.FieldChange) {
	name := directive.Attribute

	if !lang.presencePattern(name).MatchString(text) {
		if !directive.InsertIfMissing {
			logger.Debugf("[%s] %s not found, skipping", patcherName, name)
			return text, nil
		}

		value := directive.Value
		if directive.IsVersion {
			value = entities.MergeVersion("", false, directive.Value, components)
		}
		declaration := lang.declaration(name, lang.quote(value))
		logger.Infof("Adding --> %s", declaration)
		logger.Infof("%s --> %s", name, value)

		return appendLine(text, declaration, newline), &entities.FieldChange{
			Key: directive.Key, Name: name, Value: value, Inserted: true,
		}
	}

	pattern := lang.attributePattern(name)
	matches := pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		logger.Warnf("[%s] %s is declared without a literal argument, leaving it untouched", patcherName, name)
		return text, nil
	}

	value := directive.Value
	if directive.IsVersion {
		last := matches[len(matches)-1]
		existing, hasExisting := "", false
		if last[groupValue] >= 0 {
			existing, hasExisting = lang.unquote(text[last[groupValue]:last[groupValue+1]]), true
		}
		value = entities.MergeVersion(existing, hasExisting, directive.Value, components)
	}
	logger.Infof("%s --> %s", name, value)

	var builder strings.Builder
	cursor := 0
	for _, match := range matches {
		literal := lang.quote(value)
		if match[groupValue] >= 0 && strings.HasPrefix(text[match[groupValue]:match[groupValue+1]], "L") {
			literal = "L" + literal
		}

		builder.WriteString(text[cursor:match[groupPrefix]])
		builder.WriteString(text[match[groupPrefix]:match[groupOpen+1]])
		builder.WriteString(literal)
		builder.WriteString(text[match[groupClose]:match[groupClose+1]])
		cursor = match[1]
	}
	builder.WriteString(text[cursor:])

	return builder.String(), &entities.FieldChange{Key: directive.Key, Name: name, Value: value}
}

// ensureImports prepends, as one block, every mandatory import not already
// present anywhere in the file (case-insensitive).
func ensureImports(text string, imports []string, newline string) string {
	lowered := strings.ToLower(text)

	var missing []string
	for _, line := range imports {
		if !strings.Contains(lowered, strings.ToLower(line)) {
			logger.Infof("Adding --> %s", line)
			missing = append(missing, line)
		}
	}
	if len(missing) == 0 {
		return text
	}

	return strings.Join(missing, newline) + newline + text
}

// appendLine adds line at the end of text, keeping whether text ended with a newline.
func appendLine(text, line, newline string) string {
	switch {
	case text == "":
		return line + newline
	case strings.HasSuffix(text, "\n"):
		return text + line + newline
	default:
		return text + newline + line
	}
}

func detectNewline(text string) string {
	switch {
	case strings.Contains(text, "\r\n"):
		return "\r\n"
	case strings.Contains(text, "\n"):
		return "\n"
	default:
		return defaultNewline
	}
}
