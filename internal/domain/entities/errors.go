package entities

import "errors"

var (
	// ErrSourceDirNotFound aborts the whole run before any file is touched.
	ErrSourceDirNotFound = errors.New("source directory not found")

	// ErrFileNotFound is reported when a discovered path vanished before it was read.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedEncoding is returned by the codec for names it cannot map to a charset.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrLossyDecode is returned when bytes do not survive a decode and re-encode
	// in the resolved encoding, so writing the file back would corrupt it.
	ErrLossyDecode = errors.New("content cannot be decoded losslessly")

	// ErrUnsupportedFileKind is returned when no patcher accepts a file extension.
	ErrUnsupportedFileKind = errors.New("unsupported file kind")

	// ErrInvalidManifest covers malformed XML and project files without the expected structure.
	ErrInvalidManifest = errors.New("invalid project manifest")

	// ErrNotApplicable marks a manifest skipped by policy (legacy framework projects).
	ErrNotApplicable = errors.New("manifest not applicable")
)
