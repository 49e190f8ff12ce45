package filesystem

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/rios0rios0/assemblystamp/internal/domain/repositories"
)

const excludePrefix = "!"

// GlobFinderRepository implements repositories.FileFinderRepository with
// doublestar patterns ("**" crosses directories). Patterns prefixed with "!"
// exclude files matched by the others.
type GlobFinderRepository struct{}

var _ repositories.FileFinderRepository = (*GlobFinderRepository)(nil)

// NewGlobFinderRepository creates a new finder.
func NewGlobFinderRepository() *GlobFinderRepository {
	return &GlobFinderRepository{}
}

// Find expands patterns below root. Relative patterns are resolved against
// root, absolute ones are used as they are.
func (r *GlobFinderRepository) Find(root string, patterns []string) ([]string, error) {
	includes, excludes := splitPatterns(patterns)

	seen := make(map[string]struct{})
	var result []string

	for _, pattern := range includes {
		matches, err := expand(root, pattern)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}

			excluded, excludeErr := isExcluded(root, match, excludes)
			if excludeErr != nil {
				return nil, excludeErr
			}
			if !excluded {
				result = append(result, match)
			}
		}
	}

	return result, nil
}

func expand(root, pattern string) ([]string, error) {
	if filepath.IsAbs(pattern) {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		return matches, nil
	}

	relative := path.Clean(filepath.ToSlash(pattern))
	matches, err := doublestar.Glob(os.DirFS(root), relative, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	for i, match := range matches {
		matches[i] = filepath.Join(root, filepath.FromSlash(match))
	}
	return matches, nil
}

func isExcluded(root, file string, excludes []string) (bool, error) {
	relative, err := filepath.Rel(root, file)
	if err != nil {
		relative = file
	}
	relative = filepath.ToSlash(relative)

	for _, exclude := range excludes {
		matched, matchErr := doublestar.Match(path.Clean(filepath.ToSlash(exclude)), relative)
		if matchErr != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", exclude, matchErr)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

func splitPatterns(patterns []string) ([]string, []string) {
	var includes, excludes []string
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		switch {
		case pattern == "":
		case strings.HasPrefix(pattern, excludePrefix):
			excludes = append(excludes, strings.TrimPrefix(pattern, excludePrefix))
		default:
			includes = append(includes, pattern)
		}
	}
	return includes, excludes
}
