package entities

import (
	"path/filepath"
	"strings"
)

// FileKind identifies the syntax family of a target file.
type FileKind int

const (
	FileKindUnknown FileKind = iota
	FileKindProject
	FileKindCSharp
	FileKindVisualBasic
	FileKindCpp
)

//nolint:gochecknoglobals // fixed extension allow-list
var fileKindsByExtension = map[string]FileKind{
	".csproj": FileKindProject,
	".vbproj": FileKindProject,
	".fsproj": FileKindProject,
	".props":  FileKindProject,
	".cs":     FileKindCSharp,
	".vb":     FileKindVisualBasic,
	".cpp":    FileKindCpp,
}

func (k FileKind) String() string {
	switch k {
	case FileKindProject:
		return "msbuild"
	case FileKindCSharp:
		return "csharp"
	case FileKindVisualBasic:
		return "visualbasic"
	case FileKindCpp:
		return "cpp"
	default:
		return "unknown"
	}
}

// IsSource reports whether the kind is patched through assembly attributes.
func (k FileKind) IsSource() bool {
	return k == FileKindCSharp || k == FileKindVisualBasic || k == FileKindCpp
}

// ClassifyFile maps a path to its FileKind by extension, case-insensitively.
func ClassifyFile(path string) FileKind {
	return fileKindsByExtension[strings.ToLower(filepath.Ext(path))]
}

// ManifestTarget is a discovered file together with its classification.
type ManifestTarget struct {
	Path string
	Kind FileKind
}

// NewManifestTarget classifies path and wraps it in a ManifestTarget.
func NewManifestTarget(path string) ManifestTarget {
	return ManifestTarget{Path: path, Kind: ClassifyFile(path)}
}

// FileContext is the mutable state scoped to the processing of one file.
type FileContext struct {
	Target            ManifestTarget
	DetectedEncoding  string
	EffectiveEncoding string
	WriteBOM          bool
}
