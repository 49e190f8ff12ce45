package charset

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gogs/chardet"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	"github.com/rios0rios0/assemblystamp/internal/domain/repositories"
)

const (
	// sniffLimit is how many leading bytes are handed to the detector.
	sniffLimit = 64

	utf8Name    = "utf-8"
	utf16LEName = "utf-16le"
	utf16BEName = "utf-16be"
	utf32LEName = "utf-32le"
	utf32BEName = "utf-32be"
)

// unicodeCodec is an encoding with a byte-order mark.
type unicodeCodec struct {
	encoding encoding.Encoding
	bom      []byte
}

//nolint:gochecknoglobals // fixed codec tables
var (
	unicodeCodecs = map[string]unicodeCodec{
		utf8Name:    {encoding: unicode.UTF8, bom: []byte{0xEF, 0xBB, 0xBF}},
		utf16LEName: {encoding: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), bom: []byte{0xFF, 0xFE}},
		utf16BEName: {encoding: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), bom: []byte{0xFE, 0xFF}},
		utf32LEName: {encoding: utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), bom: []byte{0xFF, 0xFE, 0x00, 0x00}},
		utf32BEName: {encoding: utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), bom: []byte{0x00, 0x00, 0xFE, 0xFF}},
	}

	// aliases covers the iconv-style names accepted on the command line and the
	// non-IANA names reported by the detector.
	aliases = map[string]string{
		"utf8":     utf8Name,
		"ucs2":     utf16LEName,
		"ucs-2":    utf16LEName,
		"utf16le":  utf16LEName,
		"utf-16":   utf16LEName,
		"utf16be":  utf16BEName,
		"utf32le":  utf32LEName,
		"utf-32":   utf32LEName,
		"utf32be":  utf32BEName,
		"latin1":   "iso-8859-1",
		"binary":   "iso-8859-1",
		"ascii":    "windows-1252",
		"gb-18030": "gb18030",
	}

	singleByteCodecs = map[string]encoding.Encoding{
		"iso-8859-1":   charmap.ISO8859_1,
		"windows-1252": charmap.Windows1252,
	}

	// BOMs are checked longest first so UTF-32LE is not taken for UTF-16LE.
	bomOrder = []string{utf32LEName, utf32BEName, utf8Name, utf16LEName, utf16BEName}
)

// ChardetCodecRepository implements repositories.CodecRepository with
// statistical charset sniffing and the x/text codecs.
type ChardetCodecRepository struct {
	detector *chardet.Detector
}

var _ repositories.CodecRepository = (*ChardetCodecRepository)(nil)

// NewChardetCodecRepository creates a codec backed by a text detector.
func NewChardetCodecRepository() *ChardetCodecRepository {
	return &ChardetCodecRepository{detector: chardet.NewTextDetector()}
}

// Detect guesses the encoding from the first bytes of data. A byte-order mark
// always wins; pure 7-bit samples and detector failures report UTF-8.
func (r *ChardetCodecRepository) Detect(data []byte) string {
	sample := data[:min(len(data), sniffLimit)]

	if name := detectBOM(sample); name != "" {
		return name
	}
	if isASCII(sample) {
		return utf8Name
	}

	result, err := r.detector.DetectBest(sample)
	if err != nil || result == nil || result.Charset == "" {
		logger.Debugf("Charset detection inconclusive, assuming %s", utf8Name)
		return utf8Name
	}

	return r.Canonical(result.Charset)
}

// Canonical returns the lower-case canonical name of an encoding alias.
func (r *ChardetCodecRepository) Canonical(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[normalized]; ok {
		return alias
	}
	if _, ok := unicodeCodecs[normalized]; ok {
		return normalized
	}
	if _, ok := singleByteCodecs[normalized]; ok {
		return normalized
	}

	for _, index := range []*ianaindex.Index{ianaindex.MIME, ianaindex.IANA} {
		enc, err := index.Encoding(normalized)
		if err != nil || enc == nil {
			continue
		}
		if canonical, nameErr := index.Name(enc); nameErr == nil {
			return strings.ToLower(canonical)
		}
	}

	return normalized
}

// Supports reports whether the encoding name resolves to a codec.
func (r *ChardetCodecRepository) Supports(name string) bool {
	_, _, err := r.lookup(name)
	return err == nil
}

// Decode converts data to text, dropping a leading byte-order mark of the encoding.
// Bytes that are invalid in the encoding, or that would not be reproduced by
// encoding the text again, fail with entities.ErrLossyDecode.
func (r *ChardetCodecRepository) Decode(data []byte, name string) (string, error) {
	enc, bom, err := r.lookup(name)
	if err != nil {
		return "", err
	}

	if bom != nil {
		data = bytes.TrimPrefix(data, bom)
	}

	if r.Canonical(name) == utf8Name && !utf8.Valid(data) {
		return "", fmt.Errorf("%w: invalid %s byte at offset %d", entities.ErrLossyDecode, utf8Name, invalidUTF8Offset(data))
	}

	text, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode as %s: %w", name, err)
	}

	reencoded, err := enc.NewEncoder().Bytes(text)
	if err != nil || !bytes.Equal(reencoded, data) {
		return "", fmt.Errorf("%w as %s", entities.ErrLossyDecode, name)
	}

	return string(text), nil
}

// Encode converts text to bytes. The byte-order mark is only written for
// Unicode encodings; single-byte charsets have none.
func (r *ChardetCodecRepository) Encode(text string, name string, writeBOM bool) ([]byte, error) {
	enc, bom, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	encoded, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to encode as %s: %w", name, err)
	}

	if !writeBOM {
		return encoded, nil
	}
	if bom == nil {
		logger.Debugf("Encoding %s has no byte order mark, writing without one", name)
		return encoded, nil
	}

	return append(append(make([]byte, 0, len(bom)+len(encoded)), bom...), encoded...), nil
}

// lookup resolves a name to its codec and byte-order mark (nil when none).
func (r *ChardetCodecRepository) lookup(name string) (encoding.Encoding, []byte, error) {
	canonical := r.Canonical(name)

	if codec, ok := unicodeCodecs[canonical]; ok {
		return codec.encoding, codec.bom, nil
	}
	if enc, ok := singleByteCodecs[canonical]; ok {
		return enc, nil, nil
	}
	if enc, err := ianaindex.IANA.Encoding(canonical); err == nil && enc != nil {
		return enc, nil, nil
	}
	if enc, err := htmlindex.Get(canonical); err == nil && enc != nil {
		return enc, nil, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", entities.ErrUnsupportedEncoding, name)
}

func detectBOM(sample []byte) string {
	for _, name := range bomOrder {
		if bytes.HasPrefix(sample, unicodeCodecs[name].bom) {
			return name
		}
	}
	return ""
}

func isASCII(sample []byte) bool {
	for _, b := range sample {
		if b >= 0x80 { //nolint:mnd // 7-bit boundary
			return false
		}
	}
	return true
}

func invalidUTF8Offset(data []byte) int {
	for offset := 0; offset < len(data); {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size == 1 {
			return offset
		}
		offset += size
	}
	return -1
}
