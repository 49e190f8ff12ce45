package repositories

// CodecRepository sniffs and converts text encodings.
type CodecRepository interface {
	// Detect guesses the encoding of data from a bounded leading sample.
	// The returned name is lower case, e.g. "utf-8" or "utf-16le".
	Detect(data []byte) string

	// Canonical returns the lower-case canonical name of an encoding alias,
	// so "utf8" and "UTF-8" compare equal. Unknown names are only lower-cased.
	Canonical(encoding string) string

	// Supports reports whether the encoding name can be decoded and encoded.
	Supports(encoding string) bool

	// Decode converts data to text, dropping a leading byte-order mark.
	Decode(data []byte, encoding string) (string, error)

	// Encode converts text to bytes, writing a byte-order mark when writeBOM is
	// set and the encoding defines one.
	Encode(text string, encoding string, writeBOM bool) ([]byte, error)
}
