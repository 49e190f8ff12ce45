package msbuild

import (
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	"github.com/rios0rios0/assemblystamp/internal/domain/repositories"
)

const (
	patcherName = "msbuild"

	// legacyFrameworkElement only appears in old-style (non-SDK) .NET Framework projects.
	legacyFrameworkElement = "TargetFrameworkVersion"
)

// ProjectPatcherRepository implements repositories.PatcherRepository for MSBuild
// project files (.csproj, .vbproj, .fsproj and .props).
type ProjectPatcherRepository struct{}

var _ repositories.PatcherRepository = (*ProjectPatcherRepository)(nil)

// NewProjectPatcherRepository creates a new MSBuild patcher.
func NewProjectPatcherRepository() *ProjectPatcherRepository {
	return &ProjectPatcherRepository{}
}

func (r *ProjectPatcherRepository) Name() string { return patcherName }

func (r *ProjectPatcherRepository) Supports(kind entities.FileKind) bool {
	return kind == entities.FileKindProject
}

// Patch parses text, applies the project directives and renders the result.
// Legacy framework projects are rejected with entities.ErrNotApplicable when
// the run ignores them.
func (r *ProjectPatcherRepository) Patch(
	text string,
	target entities.ManifestTarget,
	config *entities.RunConfig,
) (*entities.PatchResult, error) {
	tree, err := ParseProjectTree(text)
	if err != nil {
		return nil, err
	}

	if config.IgnoreNetFrameworkProjects && tree.HasElement(legacyFrameworkElement) {
		return nil, fmt.Errorf("%w: %s declares %s", entities.ErrNotApplicable, target.Path, legacyFrameworkElement)
	}

	changes := PatchTree(tree, config.DirectivesFor(entities.FileKindProject), config.Components)

	return &entities.PatchResult{Text: tree.Render(), Changes: changes}, nil
}

// PatchTree applies directives to tree in order. The first group holding the
// element wins; missing elements are created only when the directive allows
// insertion. Version fields are merged with the existing value, the rest are
// assigned.
func PatchTree(
	tree *ProjectTree,
	directives []entities.FieldDirective,
	components entities.VersionComponents,
) []entities.FieldChange {
	var changes []entities.FieldChange

	for _, directive := range directives {
		name := directive.NameFor(entities.FileKindProject)
		if directive.IsEmpty() || name == "" {
			continue
		}

		var (
			element  *Element
			inserted bool
		)
		if directive.InsertIfMissing {
			element, inserted = tree.EnsureElement(name)
		} else if _, element = tree.Find(name); element == nil {
			logger.Debugf("[%s] %s not found, skipping", patcherName, name)
			continue
		}

		value := directive.Value
		if directive.IsVersion {
			existing := strings.TrimSpace(element.Value)
			value = entities.MergeVersion(existing, existing != "", directive.Value, components)
		}

		tree.Set(element, value)
		logger.Infof("%s --> %s", name, value)

		changes = append(changes, entities.FieldChange{
			Key:      directive.Key,
			Name:     name,
			Value:    value,
			Inserted: inserted,
		})
	}

	return changes
}
