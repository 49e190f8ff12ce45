package repositories

// FileFinderRepository resolves file name patterns below a root directory.
type FileFinderRepository interface {
	// Find returns the files matching patterns, ordered by the first pattern
	// that matched them and then lexically, without duplicates.
	Find(root string, patterns []string) ([]string, error)
}
